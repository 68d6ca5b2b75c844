package levels

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screens/play"
	"github.com/abhisek/undercover/internal/session"
)

type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func newScreen(t *testing.T) *LevelsScreen {
	t.Helper()
	s, err := session.Navigate(session.NewState(), session.ScreenSelectLevel)
	if err != nil {
		t.Fatal(err)
	}
	return New(&game.Env{Shuffler: keepOrder{}}, s)
}

func TestQuickPickStartsTier(t *testing.T) {
	s := newScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	p, ok := msg.Screen.(*play.PlayScreen)
	if !ok {
		t.Fatalf("expected play screen, got %T", msg.Screen)
	}
	st := p.State()
	if st.Level != "intermediate" || len(st.Scenarios) != 5 {
		t.Errorf("started %q with %d scenarios", st.Level, len(st.Scenarios))
	}
	if st.Screen != session.ScreenPlaying || st.TimeLeft != session.QuestionSeconds {
		t.Errorf("unexpected state %+v", st)
	}
}

func TestArrowsThenEnter(t *testing.T) {
	s := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", s.cursor)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd().(router.ReplaceScreenMsg)
	if got := msg.Screen.(*play.PlayScreen).State().Level; got != "expert" {
		t.Errorf("level = %q, want expert", got)
	}
}

func TestViewListsTiers(t *testing.T) {
	view := newScreen(t).View(100, 30)
	for _, want := range []string{"Rookie Investigator", "Field Agent", "Senior Detective", "60 seconds each", "4 cases"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
