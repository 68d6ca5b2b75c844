package session

import (
	"github.com/abhisek/undercover/internal/content"
)

// Screen is the top-level state of the game.
type Screen string

const (
	ScreenMenu        Screen = "menu"
	ScreenTraining    Screen = "training"
	ScreenSelectLevel Screen = "selectLevel"
	ScreenPlaying     Screen = "playing"
	ScreenResults     Screen = "results"
)

const (
	// QuestionSeconds is the countdown length for every scenario.
	QuestionSeconds = 60

	MinConfidence     = 1
	MaxConfidence     = 5
	DefaultConfidence = 3
)

// State is the full runtime state of one play-through. Transition
// functions take a State and return the next one; a State value is never
// mutated in place once handed out.
type State struct {
	Screen Screen
	Level  content.Level

	// Scenarios is the shuffled pool for this play-through.
	Scenarios []content.Scenario

	// Index is the position of the current scenario in Scenarios.
	Index int

	Score     int
	Streak    int
	MaxStreak int

	// TimeLeft is the countdown for the current scenario, in seconds.
	TimeLeft int

	// Per-scenario input, reset on Advance.
	Selected   string
	Reasoning  string
	Confidence int

	// Answered is true once the current scenario has been finalized
	// and feedback is showing.
	Answered bool

	// Attempts is the ordered session log.
	Attempts []Attempt

	// Generation changes on every transition that must cancel a
	// pending countdown tick.
	Generation uint64
}

// Attempt is the immutable result of one answered scenario.
type Attempt struct {
	Scenario          content.Scenario
	Selected          string // empty if time expired with no selection
	Correct           bool
	Points            int
	Bonuses           Bonuses
	ElapsedSecs       int
	StreakAtAnswer    int
	Confidence        int
	Reasoning         string
	ReasoningProvided bool
}

// Bonuses breaks down the points awarded for an attempt.
type Bonuses struct {
	Base      int
	Time      int
	Reasoning int
	Streak    int
}

// Total returns the sum of all components.
func (b Bonuses) Total() int {
	return b.Base + b.Time + b.Reasoning + b.Streak
}

// NewState returns the initial state: the menu with nothing in progress.
func NewState() State {
	return State{
		Screen:     ScreenMenu,
		TimeLeft:   QuestionSeconds,
		Confidence: DefaultConfidence,
	}
}

// Current returns the scenario being played, if any.
func (s State) Current() (content.Scenario, bool) {
	if s.Screen != ScreenPlaying || s.Index < 0 || s.Index >= len(s.Scenarios) {
		return content.Scenario{}, false
	}
	return s.Scenarios[s.Index], true
}

// IsLast reports whether the current scenario is the last in the pool.
func (s State) IsLast() bool {
	return s.Index >= len(s.Scenarios)-1
}

// LastAttempt returns the most recent attempt, if any.
func (s State) LastAttempt() (Attempt, bool) {
	if len(s.Attempts) == 0 {
		return Attempt{}, false
	}
	return s.Attempts[len(s.Attempts)-1], true
}

// CanSubmit mirrors the submit guard: something is selected, or time ran out.
func (s State) CanSubmit() bool {
	return s.Screen == ScreenPlaying && !s.Answered && (s.Selected != "" || s.TimeLeft == 0)
}
