package content

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateCatalog_DetectsDanglingTactic(t *testing.T) {
	pools := map[Level][]Scenario{
		LevelBeginner:     {{ID: "a", CorrectTacticID: "urgency"}},
		LevelIntermediate: {{ID: "b", CorrectTacticID: "sycophancy"}},
		LevelExpert:       {{ID: "c", CorrectTacticID: "sycophancy"}},
	}
	err := validateCatalog(tactics, pools)
	if err == nil {
		t.Fatal("expected error for dangling tactic reference, got nil")
	}
	if !strings.Contains(err.Error(), `"urgency"`) {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateCatalog_DetectsOverlappingPools(t *testing.T) {
	pools := map[Level][]Scenario{
		LevelBeginner:     {{ID: "same", CorrectTacticID: "sycophancy"}},
		LevelIntermediate: {{ID: "same", CorrectTacticID: "sycophancy"}},
		LevelExpert:       {{ID: "c", CorrectTacticID: "sycophancy"}},
	}
	err := validateCatalog(tactics, pools)
	if err == nil {
		t.Fatal("expected error for overlapping pools, got nil")
	}
	if !strings.Contains(err.Error(), "appears in both") {
		t.Errorf("error should mention overlap, got: %v", err)
	}
}

func TestValidateCatalog_DetectsDuplicateTactic(t *testing.T) {
	ts := []Tactic{
		{ID: "x", Name: "X", Category: CategoryManipulative},
		{ID: "x", Name: "X", Category: CategoryNeutral},
	}
	pools := map[Level][]Scenario{
		LevelBeginner:     {{ID: "a", CorrectTacticID: "x"}},
		LevelIntermediate: {{ID: "b", CorrectTacticID: "x"}},
		LevelExpert:       {{ID: "c", CorrectTacticID: "x"}},
	}
	err := validateCatalog(ts, pools)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestValidateCatalog_EmptyPoolAndCategory(t *testing.T) {
	ts := []Tactic{{ID: "x", Name: "X", Category: CategoryManipulative}}
	pools := map[Level][]Scenario{
		LevelBeginner: {{ID: "a", CorrectTacticID: "x"}},
	}
	err := validateCatalog(ts, pools)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	msg := err.Error()
	for _, want := range []string{`level "intermediate" has no scenarios`, `level "expert" has no scenarios`, `category "neutral" has no tactics`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q, got: %v", want, msg)
		}
	}
}

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelBeginner, 4},
		{LevelIntermediate, 5},
		{LevelExpert, 7},
	}
	for _, tt := range tests {
		if got := ScenarioCount(tt.level); got != tt.want {
			t.Errorf("ScenarioCount(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}

	if got := len(TacticsByCategory(CategoryManipulative)); got != 6 {
		t.Errorf("manipulative tactics = %d, want 6", got)
	}
	if got := len(TacticsByCategory(CategoryNeutral)); got != 4 {
		t.Errorf("neutral tactics = %d, want 4", got)
	}
	if got := len(Tactics()); got != 10 {
		t.Errorf("Tactics() = %d, want 10", got)
	}
}

func TestTacticName_FallsBackToRawID(t *testing.T) {
	if got := TacticName("urgency or loss"); got != "Urgency or Loss" {
		t.Errorf("TacticName = %q, want %q", got, "Urgency or Loss")
	}
	if got := TacticName("urgency"); got != "urgency" {
		t.Errorf("TacticName(miss) = %q, want raw id", got)
	}
}

func TestGetTactic(t *testing.T) {
	tc, err := GetTactic("authority")
	if err != nil {
		t.Fatalf("GetTactic: %v", err)
	}
	if tc.Category != CategoryNeutral {
		t.Errorf("Category = %q, want neutral", tc.Category)
	}

	_, err = GetTactic("nope")
	if !errors.Is(err, ErrUnknownTactic) {
		t.Errorf("err = %v, want ErrUnknownTactic", err)
	}
}

func TestIsManipulative(t *testing.T) {
	if !IsManipulative("dark_nudge") {
		t.Error("dark_nudge should be manipulative")
	}
	if IsManipulative("fair_upsell") {
		t.Error("fair_upsell should not be manipulative")
	}
	if IsManipulative("missing") {
		t.Error("unknown IDs should not be manipulative")
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" Expert ")
	if err != nil || l != LevelExpert {
		t.Errorf("ParseLevel = %q, %v; want expert", l, err)
	}
	if _, err := ParseLevel("legendary"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestScenarios_ReturnsCopy(t *testing.T) {
	pool, err := Scenarios(LevelBeginner)
	if err != nil {
		t.Fatalf("Scenarios: %v", err)
	}
	pool[0].Message = "mutated"

	again, _ := Scenarios(LevelBeginner)
	if again[0].Message == "mutated" {
		t.Error("Scenarios should return a copy of the pool")
	}
}

func TestBeginnerStockScenario(t *testing.T) {
	pool, _ := Scenarios(LevelBeginner)
	for _, s := range pool {
		if strings.HasPrefix(s.Message, "Only 2 items left in stock!") {
			if s.CorrectTacticID != "urgency or loss" {
				t.Errorf("CorrectTacticID = %q, want %q", s.CorrectTacticID, "urgency or loss")
			}
			return
		}
	}
	t.Fatal("stock scenario not found in beginner pool")
}
