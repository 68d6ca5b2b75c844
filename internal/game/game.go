// Package game wires a play-through to its side effects: the local event
// log and the telemetry dispatcher. Screens hold an *Env and call the
// Recorder after each session transition; nothing here alters session
// state.
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/store"
	"github.com/abhisek/undercover/internal/telemetry"
)

// Dispatcher accepts records for background delivery.
// *telemetry.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(rec telemetry.Record)
}

// Env bundles what the screens need beyond session state.
type Env struct {
	Recorder *Recorder
	Events   store.EventRepo
	Shuffler session.Shuffler
}

// Recorder persists lifecycle and attempt events and dispatches
// telemetry. A nil *Recorder is a valid no-op.
type Recorder struct {
	events        store.EventRepo
	dispatcher    Dispatcher
	participantID string
	logger        *slog.Logger

	newSessionID func() string
	now          func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithSessionIDs overrides the session id generator.
func WithSessionIDs(gen func() string) RecorderOption {
	return func(r *Recorder) { r.newSessionID = gen }
}

// NewRecorder creates a Recorder. events and dispatcher may be nil.
func NewRecorder(events store.EventRepo, dispatcher Dispatcher, participantID string, logger *slog.Logger, opts ...RecorderOption) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		events:        events,
		dispatcher:    dispatcher,
		participantID: participantID,
		logger:        logger.With("component", "game"),
		newSessionID:  uuid.NewString,
		now:           time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// ParticipantID returns the local participant identifier.
func (r *Recorder) ParticipantID() string {
	if r == nil {
		return ""
	}
	return r.participantID
}

// Run tracks one play-through from Start to results or exit.
type Run struct {
	ID      string
	Level   content.Level
	Started time.Time
	Total   int
}

// SessionStarted records a start event for the state returned by
// session.Start and returns the run handle.
func (r *Recorder) SessionStarted(s session.State) Run {
	if r == nil {
		return Run{ID: uuid.NewString(), Level: s.Level, Started: time.Now(), Total: len(s.Scenarios)}
	}
	run := Run{
		ID:      r.newSessionID(),
		Level:   s.Level,
		Started: r.now(),
		Total:   len(s.Scenarios),
	}
	r.append(store.SessionEventData{
		SessionID:      run.ID,
		Action:         store.ActionStart,
		Level:          string(run.Level),
		ScenariosTotal: run.Total,
	})
	return run
}

// AttemptFinished stores the attempt and dispatches its telemetry record.
func (r *Recorder) AttemptFinished(run Run, a session.Attempt) {
	if r == nil {
		return
	}
	rec := telemetry.NewRecord(r.participantID, run.ID, run.Level, a)

	if r.dispatcher != nil {
		r.dispatcher.Dispatch(rec)
	}

	if r.events == nil {
		return
	}
	selected := ""
	if rec.SelectedTacticID != nil {
		selected = *rec.SelectedTacticID
	}
	err := r.events.AppendAttemptEvent(context.Background(), store.AttemptEventData{
		Source:           store.SourceLocal,
		SessionID:        run.ID,
		ParticipantID:    r.participantID,
		Level:            string(run.Level),
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
	})
	if err != nil {
		r.logger.Warn("append attempt event failed", "scenario", rec.ScenarioID, "error", err)
	}
}

// SessionEnded records the end of a run that reached results.
func (r *Recorder) SessionEnded(run Run, s session.State) {
	r.finish(run, s, store.ActionEnd)
}

// SessionAbandoned records a run the player exited early.
func (r *Recorder) SessionAbandoned(run Run, s session.State) {
	r.finish(run, s, store.ActionAbandon)
}

func (r *Recorder) finish(run Run, s session.State, action string) {
	if r == nil {
		return
	}
	rep := s.Report()
	r.append(store.SessionEventData{
		SessionID:         run.ID,
		Action:            action,
		Level:             string(run.Level),
		ScenariosTotal:    run.Total,
		ScenariosAnswered: rep.Total,
		CorrectAnswers:    rep.Correct,
		Score:             rep.Score,
		MaxStreak:         rep.MaxStreak,
		Rank:              rep.Rank,
		DurationSecs:      int(r.now().Sub(run.Started).Seconds()),
	})
}

func (r *Recorder) append(data store.SessionEventData) {
	if r.events == nil {
		return
	}
	if err := r.events.AppendSessionEvent(context.Background(), data); err != nil {
		r.logger.Warn("append session event failed",
			"session", data.SessionID,
			"action", data.Action,
			"error", err)
		return
	}
	r.logger.Debug("session event", "session", data.SessionID, "action", data.Action, "level", data.Level)
}
