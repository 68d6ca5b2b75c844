package session

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/undercover/internal/content"
)

// keepOrder leaves the pool in catalog order.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func startBeginner(t *testing.T) State {
	t.Helper()
	s, err := Start(NewState(), content.LevelBeginner, keepOrder{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStart_ResetsSession(t *testing.T) {
	for _, level := range content.Levels() {
		prev := State{
			Screen:     ScreenResults,
			Score:      420,
			Streak:     4,
			MaxStreak:  6,
			Index:      3,
			TimeLeft:   7,
			Selected:   "authority",
			Reasoning:  "old",
			Confidence: 5,
			Answered:   true,
			Attempts:   []Attempt{{Correct: true}},
			Generation: 9,
		}
		s, err := Start(prev, level, nil)
		if err != nil {
			t.Fatalf("Start(%s): %v", level, err)
		}
		if s.Screen != ScreenPlaying {
			t.Errorf("%s: Screen = %s, want playing", level, s.Screen)
		}
		if s.Score != 0 || s.Streak != 0 || s.MaxStreak != 0 || s.Index != 0 {
			t.Errorf("%s: score/streak/max/index = %d/%d/%d/%d, want zeros", level, s.Score, s.Streak, s.MaxStreak, s.Index)
		}
		if s.TimeLeft != QuestionSeconds {
			t.Errorf("%s: TimeLeft = %d, want %d", level, s.TimeLeft, QuestionSeconds)
		}
		if s.Confidence != DefaultConfidence {
			t.Errorf("%s: Confidence = %d, want %d", level, s.Confidence, DefaultConfidence)
		}
		if s.Selected != "" || s.Reasoning != "" || s.Answered || len(s.Attempts) != 0 {
			t.Errorf("%s: transient input not cleared: %+v", level, s)
		}
		if s.Generation <= prev.Generation {
			t.Errorf("%s: Generation = %d, want > %d", level, s.Generation, prev.Generation)
		}
		if len(s.Scenarios) != content.ScenarioCount(level) {
			t.Errorf("%s: len(Scenarios) = %d, want %d", level, len(s.Scenarios), content.ScenarioCount(level))
		}
	}
}

func TestStart_UnknownLevel(t *testing.T) {
	_, err := Start(NewState(), content.Level("legendary"), nil)
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestStart_RejectedWhilePlaying(t *testing.T) {
	s := startBeginner(t)
	if _, err := Start(s, content.LevelExpert, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestStart_ShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	s, err := Start(NewState(), content.LevelExpert, r)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	pool, _ := content.Scenarios(content.LevelExpert)
	seen := make(map[string]int)
	for _, sc := range s.Scenarios {
		seen[sc.ID]++
	}
	for _, sc := range pool {
		if seen[sc.ID] != 1 {
			t.Errorf("scenario %s appears %d times, want 1", sc.ID, seen[sc.ID])
		}
	}
}

func TestScore_CorrectFormula(t *testing.T) {
	tests := []struct {
		name        string
		timeLeft    int
		reasoning   string
		priorStreak int
		want        int
		wantStreak  int
	}{
		{"full time no reasoning", 60, "", 0, 70, 1},
		{"45s remaining", 45, "", 0, 65, 1},
		{"time bonus floors", 44, "", 0, 64, 1},
		{"zero time", 0, "", 0, 50, 1},
		{"short reasoning", 30, "too short", 0, 60, 1},
		{"exactly 20 chars", 30, strings.Repeat("a", 20), 0, 60, 1},
		{"21 chars", 30, strings.Repeat("a", 21), 0, 70, 1},
		{"whitespace trimmed", 30, "   " + strings.Repeat("a", 20) + "   ", 0, 60, 1},
		{"second in a row", 30, "", 1, 50 + 10 + 10, 2},
		{"fifth in a row", 30, "", 4, 50 + 10 + 25, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, streak := Score(true, tt.timeLeft, tt.reasoning, tt.priorStreak)
			if b.Total() != tt.want {
				t.Errorf("points = %d (%+v), want %d", b.Total(), b, tt.want)
			}
			if streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", streak, tt.wantStreak)
			}
		})
	}
}

func TestScore_IncorrectIsZero(t *testing.T) {
	b, streak := Score(false, 60, strings.Repeat("thoughtful ", 10), 7)
	if b.Total() != 0 {
		t.Errorf("points = %d, want 0", b.Total())
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestSubmit_StockScenarioExample(t *testing.T) {
	s := startBeginner(t)
	sc, _ := s.Current()
	if !strings.HasPrefix(sc.Message, "Only 2 items left in stock!") {
		t.Fatalf("first scenario = %q, want the stock scenario", sc.Message)
	}
	s.TimeLeft = 45
	s = Select(s, "urgency or loss")

	next, a, err := Submit(s)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if a.Points != 65 {
		t.Errorf("Points = %d, want 65", a.Points)
	}
	if a.ElapsedSecs != 15 {
		t.Errorf("ElapsedSecs = %d, want 15", a.ElapsedSecs)
	}
	if next.Score != 65 || next.Streak != 1 || next.MaxStreak != 1 {
		t.Errorf("score/streak/max = %d/%d/%d, want 65/1/1", next.Score, next.Streak, next.MaxStreak)
	}
	if !next.Answered {
		t.Error("expected Answered after submit")
	}
	if next.Generation == s.Generation {
		t.Error("expected Generation to change on submit")
	}
	if len(next.Attempts) != 1 {
		t.Errorf("len(Attempts) = %d, want 1", len(next.Attempts))
	}
}

func TestSubmit_IncorrectResetsStreak(t *testing.T) {
	s := startBeginner(t)
	s.Streak = 3
	s.MaxStreak = 3
	s = Select(s, "authority")
	s = SetReasoning(s, "this is a long and careful explanation")

	next, a, err := Submit(s)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if a.Correct || a.Points != 0 {
		t.Errorf("attempt = %+v, want incorrect with 0 points", a)
	}
	if next.Streak != 0 {
		t.Errorf("Streak = %d, want 0", next.Streak)
	}
	if next.MaxStreak != 3 {
		t.Errorf("MaxStreak = %d, want 3", next.MaxStreak)
	}
	if !a.ReasoningProvided {
		t.Error("expected ReasoningProvided")
	}
}

func TestSubmit_Guards(t *testing.T) {
	s := startBeginner(t)
	if _, _, err := Submit(s); !errors.Is(err, ErrNoAnswer) {
		t.Errorf("empty selection: err = %v, want ErrNoAnswer", err)
	}

	s = Select(s, "urgency or loss")
	s, _, err := Submit(s)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, _, err := Submit(s); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("second submit: err = %v, want ErrAlreadyAnswered", err)
	}
	if _, _, err := Submit(NewState()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("menu submit: err = %v, want ErrInvalidTransition", err)
	}
}

func TestSubmit_DoesNotAliasAttempts(t *testing.T) {
	s := startBeginner(t)
	s.Attempts = make([]Attempt, 0, 8)
	s = Select(s, "authority")

	a, _, _ := Submit(s)
	b, _, _ := Submit(Select(s, "urgency or loss"))
	if a.Attempts[0].Selected != "authority" {
		t.Errorf("first branch attempt = %q, want authority", a.Attempts[0].Selected)
	}
	if b.Attempts[0].Selected != "urgency or loss" {
		t.Errorf("second branch attempt = %q, want urgency or loss", b.Attempts[0].Selected)
	}
}

func TestInputIgnoredAfterAnswer(t *testing.T) {
	s := startBeginner(t)
	s = Select(s, "urgency or loss")
	s, _, _ = Submit(s)

	after := SetConfidence(SetReasoning(Select(s, "authority"), "changed"), 1)
	if after.Selected != "urgency or loss" || after.Reasoning != "" || after.Confidence != DefaultConfidence {
		t.Errorf("input changed after answer: %+v", after)
	}
}

func TestSetConfidence_Clamps(t *testing.T) {
	s := startBeginner(t)
	for _, tt := range []struct{ in, want int }{{0, 1}, {-3, 1}, {1, 1}, {4, 4}, {5, 5}, {9, 5}} {
		if got := SetConfidence(s, tt.in).Confidence; got != tt.want {
			t.Errorf("SetConfidence(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTick_CountsDown(t *testing.T) {
	s := startBeginner(t)
	s, a := Tick(s)
	if a != nil {
		t.Fatal("unexpected auto-submit")
	}
	if s.TimeLeft != QuestionSeconds-1 {
		t.Errorf("TimeLeft = %d, want %d", s.TimeLeft, QuestionSeconds-1)
	}
}

func TestTick_AutoSubmitsAtZero(t *testing.T) {
	s := startBeginner(t)
	s.TimeLeft = 1

	next, a := Tick(s)
	if a == nil {
		t.Fatal("expected auto-submit at zero")
	}
	if a.Selected != "" || a.Correct || a.Points != 0 {
		t.Errorf("attempt = %+v, want unanswered and incorrect", *a)
	}
	if a.ElapsedSecs != QuestionSeconds {
		t.Errorf("ElapsedSecs = %d, want %d", a.ElapsedSecs, QuestionSeconds)
	}
	if !next.Answered || next.TimeLeft != 0 {
		t.Errorf("Answered/TimeLeft = %v/%d, want true/0", next.Answered, next.TimeLeft)
	}
}

func TestTick_AutoSubmitKeepsSelection(t *testing.T) {
	s := startBeginner(t)
	s = Select(s, "urgency or loss")
	s.TimeLeft = 1

	_, a := Tick(s)
	if a == nil || !a.Correct || a.Points != 50 {
		t.Errorf("attempt = %+v, want correct with 50 points", a)
	}
}

func TestTick_IgnoredWhenAnsweredOrNotPlaying(t *testing.T) {
	s := startBeginner(t)
	s = Select(s, "authority")
	s, _, _ = Submit(s)
	left := s.TimeLeft
	if s, a := Tick(s); a != nil || s.TimeLeft != left {
		t.Errorf("tick after answer changed state: TimeLeft %d, attempt %v", s.TimeLeft, a)
	}

	menu := NewState()
	if got, a := Tick(menu); a != nil || got.TimeLeft != menu.TimeLeft {
		t.Error("tick on menu changed state")
	}
}

func TestAdvance_ResetsTransientInput(t *testing.T) {
	s := startBeginner(t)
	s = SetConfidence(SetReasoning(Select(s, "urgency or loss"), "pressure to buy quickly here"), 5)
	s.TimeLeft = 20
	s, _, _ = Submit(s)

	next, err := Advance(s)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next.Index != 1 {
		t.Errorf("Index = %d, want 1", next.Index)
	}
	if next.TimeLeft != QuestionSeconds || next.Selected != "" || next.Reasoning != "" ||
		next.Confidence != DefaultConfidence || next.Answered {
		t.Errorf("transient input not reset: %+v", next)
	}
	if next.Streak != 1 {
		t.Errorf("Streak = %d, want 1 (persists)", next.Streak)
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s := startBeginner(t)
	if _, err := Advance(s); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("err = %v, want ErrNotAnswered", err)
	}
}

func TestAdvance_PastLastGoesToResults(t *testing.T) {
	s := startBeginner(t)
	n := len(s.Scenarios)
	for i := 0; i < n; i++ {
		s = Select(s, "authority")
		var err error
		s, _, err = Submit(s)
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		s, err = Advance(s)
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}
	if s.Screen != ScreenResults {
		t.Fatalf("Screen = %s, want results", s.Screen)
	}
	if s.Index != n-1 {
		t.Errorf("Index = %d, want %d", s.Index, n-1)
	}
	if len(s.Attempts) != n {
		t.Errorf("len(Attempts) = %d, want %d", len(s.Attempts), n)
	}
	if _, err := Advance(s); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("advance on results: err = %v, want ErrInvalidTransition", err)
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		from, to Screen
		ok       bool
	}{
		{ScreenMenu, ScreenTraining, true},
		{ScreenMenu, ScreenSelectLevel, true},
		{ScreenTraining, ScreenMenu, true},
		{ScreenTraining, ScreenSelectLevel, true},
		{ScreenSelectLevel, ScreenMenu, true},
		{ScreenPlaying, ScreenMenu, true},
		{ScreenResults, ScreenMenu, true},
		{ScreenMenu, ScreenPlaying, false},
		{ScreenMenu, ScreenResults, false},
		{ScreenSelectLevel, ScreenTraining, false},
		{ScreenResults, ScreenTraining, false},
		{ScreenPlaying, ScreenResults, false},
	}
	for _, tt := range tests {
		s := State{Screen: tt.from}
		got, err := Navigate(s, tt.to)
		if tt.ok {
			if err != nil || got.Screen != tt.to {
				t.Errorf("%s -> %s: got %s, err %v", tt.from, tt.to, got.Screen, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s -> %s: err = %v, want ErrInvalidTransition", tt.from, tt.to, err)
		}
	}
}

func TestNavigate_ExitCaseResetsSession(t *testing.T) {
	s := startBeginner(t)
	s = Select(s, "urgency or loss")
	s, _, _ = Submit(s)

	menu, err := Navigate(s, ScreenMenu)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if menu.Score != 0 || len(menu.Attempts) != 0 || menu.Scenarios != nil {
		t.Errorf("session not reset: %+v", menu)
	}
	if menu.Generation <= s.Generation {
		t.Error("expected Generation to advance on exit")
	}
}
