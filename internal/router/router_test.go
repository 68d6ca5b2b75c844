package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undercover/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)
	r.Push(&stubScreen{title: "levels"})
	r.Push(&stubScreen{title: "play"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop to root, got %d", r.Depth())
	}
	if r.Active() != root {
		t.Errorf("expected root screen active, got %q", r.Active().Title())
	}
}

func TestPopToRootNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.PopToRoot()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

type echoScreen struct {
	stubScreen
	got []tea.Msg
}

func (e *echoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	e.got = append(e.got, msg)
	return e, nil
}

func TestUpdateForwardsToActive(t *testing.T) {
	e := &echoScreen{stubScreen: stubScreen{title: "echo"}}
	r := New(&stubScreen{title: "home"})
	r.Push(e)

	r.Update("hello")
	r.Update(PopScreenMsg{})

	if len(e.got) != 1 || e.got[0] != "hello" {
		t.Errorf("expected one forwarded message, got %v", e.got)
	}
	if r.Depth() != 1 {
		t.Errorf("navigation messages should not reach the screen")
	}
}

type resumeScreen struct {
	stubScreen
	resumed int
}

func (s *resumeScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPopResumesExposedScreen(t *testing.T) {
	root := &resumeScreen{stubScreen: stubScreen{title: "home"}}
	r := New(root)
	r.Push(&stubScreen{title: "levels"})
	r.Push(&stubScreen{title: "play"})

	r.Pop()
	if root.resumed != 0 {
		t.Errorf("root should not resume while covered, got %d", root.resumed)
	}
	r.PopToRoot()
	if root.resumed != 1 {
		t.Errorf("expected root to resume once, got %d", root.resumed)
	}
}
