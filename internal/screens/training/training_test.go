package training

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/session"
)

func newScreen(t *testing.T) *TrainingScreen {
	t.Helper()
	s, err := session.Navigate(session.NewState(), session.ScreenTraining)
	if err != nil {
		t.Fatal(err)
	}
	return New(&game.Env{}, s)
}

func TestStartsOnFirstManipulativeTactic(t *testing.T) {
	s := newScreen(t)
	tac, ok := s.Selected()
	if !ok {
		t.Fatal("expected a selected tactic")
	}
	if tac.Category != content.CategoryManipulative {
		t.Errorf("first tactic category = %q, want manipulative", tac.Category)
	}
}

func TestTabJumpsCategory(t *testing.T) {
	s := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	tac, _ := s.Selected()
	if tac.Category != content.CategoryNeutral {
		t.Errorf("after tab category = %q, want neutral", tac.Category)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	tac, _ = s.Selected()
	if tac.Category != content.CategoryManipulative {
		t.Errorf("tab should wrap back to manipulative, got %q", tac.Category)
	}
}

func TestCursorSkipsHeaders(t *testing.T) {
	s := newScreen(t)
	n := len(content.TacticsByCategory(content.CategoryManipulative))
	for range n {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	tac, ok := s.Selected()
	if !ok || tac.Category != content.CategoryNeutral {
		t.Errorf("cursor should land on first neutral tactic, got %+v", tac)
	}
}

func TestEnterGoesToLevelSelect(t *testing.T) {
	s := newScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Select Level" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
}

func TestViewShowsDescription(t *testing.T) {
	s := newScreen(t)
	tac, _ := s.Selected()
	view := s.View(100, 30)
	if !strings.Contains(view, tac.Name) {
		t.Errorf("view missing %q", tac.Name)
	}
}
