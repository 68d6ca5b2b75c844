package content

import (
	"errors"
	"fmt"
)

// Category classifies a tactic as manipulative or legitimate influence.
type Category string

const (
	CategoryManipulative Category = "manipulative"
	CategoryNeutral      Category = "neutral"
)

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{CategoryManipulative, CategoryNeutral}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryManipulative:
		return "Manipulative"
	case CategoryNeutral:
		return "Legitimate"
	default:
		return string(c)
	}
}

// Tactic is a named manipulation or legitimate-influence pattern.
type Tactic struct {
	ID          string
	Name        string
	Description string
	Category    Category
}

// ErrUnknownTactic is returned when a tactic ID is not in the catalog.
var ErrUnknownTactic = errors.New("unknown tactic")

var tacticIndex = buildTacticIndex(tactics)

func buildTacticIndex(ts []Tactic) map[string]Tactic {
	idx := make(map[string]Tactic, len(ts))
	for _, t := range ts {
		idx[t.ID] = t
	}
	return idx
}

// Tactics returns every tactic, manipulative first.
func Tactics() []Tactic {
	out := make([]Tactic, len(tactics))
	copy(out, tactics)
	return out
}

// TacticsByCategory returns the tactics in the given category.
func TacticsByCategory(c Category) []Tactic {
	var out []Tactic
	for _, t := range tactics {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// GetTactic looks up a tactic by ID.
func GetTactic(id string) (Tactic, error) {
	t, ok := tacticIndex[id]
	if !ok {
		return Tactic{}, fmt.Errorf("%w: %q", ErrUnknownTactic, id)
	}
	return t, nil
}

// TacticName returns the display name for id, or id itself when the
// catalog has no such tactic.
func TacticName(id string) string {
	if t, ok := tacticIndex[id]; ok {
		return t.Name
	}
	return id
}

// IsManipulative reports whether id names a manipulative tactic.
func IsManipulative(id string) bool {
	t, ok := tacticIndex[id]
	return ok && t.Category == CategoryManipulative
}
