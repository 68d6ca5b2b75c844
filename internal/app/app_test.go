package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/logging"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screens/levels"
	"github.com/abhisek/undercover/internal/screens/play"
	"github.com/abhisek/undercover/internal/session"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(Options{Env: &game.Env{}, Logger: logging.Discard()})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model.(AppModel)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(AppModel), cmd
}

func TestViewRendersHomeFrame(t *testing.T) {
	m := newTestModel(t)
	frame := m.render()
	if !strings.Contains(frame, "AI Undercover") {
		t.Error("header should show the app name")
	}
	if !strings.Contains(frame, "Headquarters") {
		t.Error("header should show the home title")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected minimum size message")
	}
}

func TestEscPopsPlainScreens(t *testing.T) {
	m := newTestModel(t)
	st, err := session.Navigate(session.NewState(), session.ScreenSelectLevel)
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(m, router.PushScreenMsg{Screen: levels.New(&game.Env{}, st)})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the levels screen")
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc at the root should do nothing")
	}
}

func TestEscIsForwardedToInterceptingScreen(t *testing.T) {
	m := newTestModel(t)
	st, err := session.Start(session.NewState(), content.LevelBeginner, nil)
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(m, router.PushScreenMsg{Screen: play.New(nil, st)})

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc during a case must not pop directly")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
	ps, ok := m.router.Active().(*play.PlayScreen)
	if !ok {
		t.Fatal("play screen should stay active")
	}
	if hints := ps.KeyHints(); len(hints) < 2 || hints[1].Key != "Y" {
		t.Error("esc should open the exit confirmation")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}
