package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // exact match when set
	Source    string    // exact match when set (attempts only)
}

// Session event actions.
const (
	ActionStart   = "start"
	ActionEnd     = "end"
	ActionAbandon = "abandon"
)

// Attempt event sources.
const (
	SourceLocal     = "local"
	SourceCollector = "collector"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Action            string // "start", "end" or "abandon"
	Level             string
	ScenariosTotal    int
	ScenariosAnswered int
	CorrectAnswers    int
	Score             int
	MaxStreak         int
	Rank              string
	DurationSecs      int
}

// SessionSummaryRecord is a finished or abandoned session read back from
// the store.
type SessionSummaryRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// Accuracy returns correct answers over answered scenarios, in percent.
func (r SessionSummaryRecord) Accuracy() float64 {
	if r.ScenariosAnswered == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.ScenariosAnswered) * 100
}

// AttemptEventData captures one answered scenario.
type AttemptEventData struct {
	Source           string // "local" or "collector"; defaults to local
	SessionID        string
	ParticipantID    string
	Level            string
	ScenarioID       string
	AIType           string
	SelectedTacticID string // empty when time expired with no selection
	CorrectTacticID  string
	Correct          bool
	BaseScore        int
	TimeBonus        int
	ReasoningBonus   int
	StreakBonus      int
	TotalScore       int
	TimeTakenSecs    int
	Confidence       int
	Reasoning        string
}

// AttemptRecord is an attempt event read back from the store.
type AttemptRecord struct {
	AttemptEventData
	Sequence  int64
	Timestamp time.Time
}

// LevelStats aggregates completed sessions for one tier.
type LevelStats struct {
	Sessions  int
	BestScore int
}

// Stats aggregates the local play history.
type Stats struct {
	SessionsCompleted int
	SessionsAbandoned int
	Attempts          int
	Correct           int
	BestScore         int
	BestStreak        int
	ByLevel           map[string]LevelStats
}

// Accuracy returns correct over attempted, in percent.
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts) * 100
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start, end or abandon.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAttemptEvent records one answered scenario.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// QuerySessionSummaries returns ended and abandoned sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryAttempts returns attempt events, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// Stats aggregates local sessions and attempts.
	Stats(ctx context.Context) (Stats, error)

	// Reset deletes all events. Settings are kept.
	Reset(ctx context.Context) error
}

// SettingsRepo is a small key/value store for local preferences and
// identifiers.
type SettingsRepo interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// SetIfAbsent stores value only when key is missing, and returns the
	// value stored under key afterwards.
	SetIfAbsent(ctx context.Context, key, value string) (string, error)
}
