package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/undercover/internal/content"
)

// Scoring constants.
const (
	BasePoints = 50

	// TimeBonusDivisor converts remaining seconds into bonus points.
	TimeBonusDivisor = 3

	ReasoningBonusPoints = 10

	// ReasoningMinChars is the trimmed length reasoning must exceed to
	// earn the reasoning bonus.
	ReasoningMinChars = 20

	StreakBonusPerStep = 5
	StreakBonusMin     = 2
)

var (
	// ErrUnknownLevel is returned by Start for a tier that has no pool.
	ErrUnknownLevel = content.ErrUnknownLevel

	ErrNoAnswer          = errors.New("no tactic selected")
	ErrAlreadyAnswered   = errors.New("scenario already answered")
	ErrNotAnswered       = errors.New("scenario not answered yet")
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// Shuffler permutes n elements in place through swap. *rand.Rand from
// math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler draws from the process-wide math/rand/v2 source.
var DefaultShuffler Shuffler = globalShuffler{}

var edges = map[Screen][]Screen{
	ScreenMenu:        {ScreenTraining, ScreenSelectLevel},
	ScreenTraining:    {ScreenMenu, ScreenSelectLevel},
	ScreenSelectLevel: {ScreenMenu},
	ScreenPlaying:     {ScreenMenu},
	ScreenResults:     {ScreenMenu},
}

// Navigate moves between screens that do not start or end a case.
// Landing on the menu discards any session in progress.
func Navigate(s State, to Screen) (State, error) {
	if !slices.Contains(edges[s.Screen], to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Screen, to)
	}
	if to == ScreenMenu {
		next := NewState()
		next.Generation = s.Generation + 1
		return next, nil
	}
	s.Screen = to
	s.Generation++
	return s, nil
}

// Start begins a play-through of the given tier with a freshly
// permuted pool. A nil shuffler uses DefaultShuffler.
func Start(s State, level content.Level, shuffler Shuffler) (State, error) {
	if s.Screen == ScreenPlaying || s.Screen == ScreenTraining {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Screen, ScreenPlaying)
	}
	pool, err := content.Scenarios(level)
	if err != nil {
		return s, fmt.Errorf("start %q: %w", level, ErrUnknownLevel)
	}
	if shuffler == nil {
		shuffler = DefaultShuffler
	}
	shuffler.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	return State{
		Screen:     ScreenPlaying,
		Level:      level,
		Scenarios:  pool,
		TimeLeft:   QuestionSeconds,
		Confidence: DefaultConfidence,
		Generation: s.Generation + 1,
	}, nil
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the scenario is finalized with whatever is selected and the
// resulting attempt is returned.
func Tick(s State) (State, *Attempt) {
	if s.Screen != ScreenPlaying || s.Answered {
		return s, nil
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	if s.TimeLeft > 0 {
		return s, nil
	}
	next, a, err := Submit(s)
	if err != nil {
		return s, nil
	}
	return next, &a
}

// Select records the tactic the player picked. Ignored once answered.
func Select(s State, tacticID string) State {
	if s.Screen != ScreenPlaying || s.Answered {
		return s
	}
	s.Selected = tacticID
	return s
}

// SetReasoning replaces the free-text reasoning. Ignored once answered.
func SetReasoning(s State, text string) State {
	if s.Screen != ScreenPlaying || s.Answered {
		return s
	}
	s.Reasoning = text
	return s
}

// SetConfidence sets the self-rated confidence, clamped to [1,5].
func SetConfidence(s State, level int) State {
	if s.Screen != ScreenPlaying || s.Answered {
		return s
	}
	s.Confidence = max(MinConfidence, min(MaxConfidence, level))
	return s
}

// Score computes the bonuses for an answer and the streak that follows it.
func Score(correct bool, timeLeft int, reasoning string, priorStreak int) (Bonuses, int) {
	if !correct {
		return Bonuses{}, 0
	}
	streak := priorStreak + 1
	b := Bonuses{
		Base: BasePoints,
		Time: max(timeLeft, 0) / TimeBonusDivisor,
	}
	if utf8.RuneCountInString(strings.TrimSpace(reasoning)) > ReasoningMinChars {
		b.Reasoning = ReasoningBonusPoints
	}
	if streak >= StreakBonusMin {
		b.Streak = streak * StreakBonusPerStep
	}
	return b, streak
}

// Submit finalizes the current scenario. It needs a selection unless
// the countdown has expired. The returned attempt is the one appended
// to the session log.
func Submit(s State) (State, Attempt, error) {
	sc, ok := s.Current()
	if !ok {
		return s, Attempt{}, fmt.Errorf("submit: %w", ErrInvalidTransition)
	}
	if s.Answered {
		return s, Attempt{}, ErrAlreadyAnswered
	}
	if s.Selected == "" && s.TimeLeft > 0 {
		return s, Attempt{}, ErrNoAnswer
	}

	correct := s.Selected == sc.CorrectTacticID
	bonuses, streak := Score(correct, s.TimeLeft, s.Reasoning, s.Streak)

	a := Attempt{
		Scenario:          sc,
		Selected:          s.Selected,
		Correct:           correct,
		Points:            bonuses.Total(),
		Bonuses:           bonuses,
		ElapsedSecs:       QuestionSeconds - s.TimeLeft,
		StreakAtAnswer:    streak,
		Confidence:        s.Confidence,
		Reasoning:         s.Reasoning,
		ReasoningProvided: strings.TrimSpace(s.Reasoning) != "",
	}

	s.Score += a.Points
	s.Streak = streak
	s.MaxStreak = max(s.MaxStreak, streak)
	s.Attempts = append(slices.Clip(s.Attempts), a)
	s.Answered = true
	s.Generation++
	return s, a, nil
}

// Advance moves past an answered scenario, to the next one or to results.
func Advance(s State) (State, error) {
	if s.Screen != ScreenPlaying {
		return s, fmt.Errorf("advance: %w", ErrInvalidTransition)
	}
	if !s.Answered {
		return s, ErrNotAnswered
	}
	s.Generation++
	if s.IsLast() {
		s.Screen = ScreenResults
		return s, nil
	}
	s.Index++
	s.TimeLeft = QuestionSeconds
	s.Selected = ""
	s.Reasoning = ""
	s.Confidence = DefaultConfidence
	s.Answered = false
	return s, nil
}
