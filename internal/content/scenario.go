package content

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a difficulty tier. Each level owns a fixed scenario pool.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelExpert       Level = "expert"
)

// ErrUnknownLevel is returned for a level outside the three defined pools.
var ErrUnknownLevel = errors.New("unknown level")

// Levels returns all levels in ascending difficulty.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelExpert}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := scenarios[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return l, nil
}

// LevelInfo describes a level for the level-select screen.
type LevelInfo struct {
	Level Level
	Name  string
	Blurb string
}

// Info returns display information for the level.
func (l Level) Info() LevelInfo {
	switch l {
	case LevelBeginner:
		return LevelInfo{Level: l, Name: "Rookie Investigator", Blurb: "Clear manipulation tactics in simple scenarios"}
	case LevelIntermediate:
		return LevelInfo{Level: l, Name: "Field Agent", Blurb: "Mixed tactics requiring careful analysis"}
	case LevelExpert:
		return LevelInfo{Level: l, Name: "Senior Detective", Blurb: "Subtle manipulation in complex, realistic contexts"}
	default:
		return LevelInfo{Level: l, Name: string(l)}
	}
}

// Scenario is one quiz question: a simulated AI message paired with
// its correct tactic.
type Scenario struct {
	ID              string
	Context         string
	Message         string
	CorrectTacticID string
	Explanation     string
	AIType          string
}

// Scenarios returns a copy of the scenario pool for level.
func Scenarios(level Level) ([]Scenario, error) {
	pool, ok := scenarios[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	out := make([]Scenario, len(pool))
	copy(out, pool)
	return out, nil
}

// ScenarioCount returns the pool size for level, or 0 if unknown.
func ScenarioCount(level Level) int {
	return len(scenarios[level])
}
