// Package collector is a small HTTP service that accepts telemetry records
// from game clients, stores them as attempt events and exports them as CSV.
package collector

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/undercover/internal/store"
	"github.com/abhisek/undercover/internal/telemetry"
)

// maxBodyBytes bounds an incoming record.
const maxBodyBytes = 64 << 10

// Server serves the collector endpoints.
type Server struct {
	Events store.EventRepo
	Logger *slog.Logger
}

// New creates a Server. A nil logger uses slog.Default.
func New(events store.EventRepo, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Events: events, Logger: logger.With("component", "collector")}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Post("/comments", s.handleCreate)
	r.Get("/comments.csv", s.handleExport)
	return r
}

// ListenAndServe runs the collector on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("collector listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	if err := telemetry.ValidateJSON(raw); err != nil {
		log.Warn("rejected record", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var rec telemetry.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := s.Events.AppendAttemptEvent(r.Context(), attemptFromRecord(rec)); err != nil {
		log.Error("failed to store record", "error", err)
		http.Error(w, "failed to store record", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "stored"})
}

var csvHeader = []string{
	"timestamp", "participantId", "sessionId", "difficulty", "scenarioId",
	"aiType", "selectedTacticId", "correctTacticId", "correct",
	"baseScore", "timeBonus", "reasoningBonus", "streakBonus", "totalScore",
	"timeTakenSeconds", "confidence", "reasoning",
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	attempts, err := s.Events.QueryAttempts(r.Context(), store.QueryOpts{Source: store.SourceCollector})
	if err != nil {
		log.Error("failed to query attempts", "error", err)
		http.Error(w, "failed to query attempts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="comments.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	// Oldest first.
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		_ = cw.Write([]string{
			a.Timestamp.UTC().Format(time.RFC3339),
			a.ParticipantID,
			a.SessionID,
			a.Level,
			a.ScenarioID,
			a.AIType,
			a.SelectedTacticID,
			a.CorrectTacticID,
			strconv.FormatBool(a.Correct),
			strconv.Itoa(a.BaseScore),
			strconv.Itoa(a.TimeBonus),
			strconv.Itoa(a.ReasoningBonus),
			strconv.Itoa(a.StreakBonus),
			strconv.Itoa(a.TotalScore),
			strconv.Itoa(a.TimeTakenSecs),
			strconv.Itoa(a.Confidence),
			a.Reasoning,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Warn("csv export interrupted", "error", err)
	}
}

func attemptFromRecord(rec telemetry.Record) store.AttemptEventData {
	var selected string
	if rec.SelectedTacticID != nil {
		selected = *rec.SelectedTacticID
	}
	return store.AttemptEventData{
		Source:           store.SourceCollector,
		SessionID:        rec.SessionID,
		ParticipantID:    rec.ParticipantID,
		Level:            rec.Difficulty,
		ScenarioID:       rec.ScenarioID,
		AIType:           rec.AIType,
		SelectedTacticID: selected,
		CorrectTacticID:  rec.CorrectTacticID,
		Correct:          rec.Correct,
		BaseScore:        rec.BaseScore,
		TimeBonus:        rec.TimeBonus,
		ReasoningBonus:   rec.ReasoningBonus,
		StreakBonus:      rec.StreakBonus,
		TotalScore:       rec.TotalScore,
		TimeTakenSecs:    rec.TimeTakenSeconds,
		Confidence:       rec.Confidence,
		Reasoning:        rec.Reasoning,
	}
}
