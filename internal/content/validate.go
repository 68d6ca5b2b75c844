package content

import (
	"fmt"
	"strings"
)

// Validate checks the built-in catalog for structural problems.
func Validate() error {
	return validateCatalog(tactics, scenarios)
}

// validateCatalog performs all structural checks on the given catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(ts []Tactic, pools map[Level][]Scenario) error {
	var errs []string

	tacticIDs := make(map[string]bool, len(ts))
	categories := make(map[Category]bool)
	for _, t := range ts {
		if tacticIDs[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate tactic ID: %q", t.ID))
		}
		tacticIDs[t.ID] = true
		categories[t.Category] = true
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("tactic %q has no name", t.ID))
		}
	}

	for _, c := range AllCategories() {
		if !categories[c] {
			errs = append(errs, fmt.Sprintf("category %q has no tactics", c))
		}
	}

	// Scenario IDs must be unique across pools so pools never overlap.
	scenarioIDs := make(map[string]Level)
	for _, level := range Levels() {
		pool := pools[level]
		if len(pool) == 0 {
			errs = append(errs, fmt.Sprintf("level %q has no scenarios", level))
		}
		for _, s := range pool {
			if prev, dup := scenarioIDs[s.ID]; dup {
				errs = append(errs, fmt.Sprintf("scenario %q appears in both %q and %q", s.ID, prev, level))
			}
			scenarioIDs[s.ID] = level
			if !tacticIDs[s.CorrectTacticID] {
				errs = append(errs, fmt.Sprintf("scenario %q references nonexistent tactic %q", s.ID, s.CorrectTacticID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
