package play

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screen"
	"github.com/abhisek/undercover/internal/screens/results"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/ui/components"
	"github.com/abhisek/undercover/internal/ui/layout"
)

type focus int

const (
	focusTactics focus = iota
	focusNotes
)

// PlayScreen runs one play-through: the countdown, tactic picking,
// confidence, notes and per-case feedback.
type PlayScreen struct {
	env     *game.Env
	state   session.State
	run     game.Run
	tactics components.TacticList
	notes   components.TextInput
	focus   focus
	confirm *components.Confirm
	errMsg  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscapeInterceptor = (*PlayScreen)(nil)
var _ screen.HeaderStatsProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for a state returned by session.Start.
func New(env *game.Env, state session.State) *PlayScreen {
	if env == nil {
		env = &game.Env{}
	}
	return &PlayScreen{
		env:     env,
		state:   state,
		tactics: components.NewTacticList(),
		notes: components.NewTextInput(
			"Why this tactic? What signals felt manipulative or safe?",
			components.ReasoningCharLimit,
			session.ReasoningMinChars,
		),
	}
}

// State returns the current session state.
func (s *PlayScreen) State() session.State {
	return s.state
}

func (s *PlayScreen) Init() tea.Cmd {
	s.run = s.env.Recorder.SessionStarted(s.state)
	return tickCmd(s.state.Generation)
}

func (s *PlayScreen) Title() string {
	return caseTitle(s.state)
}

// InterceptsEscape keeps the app from popping a case in progress.
func (s *PlayScreen) InterceptsEscape() bool {
	return true
}

// HeaderStats shows the running score and streak.
func (s *PlayScreen) HeaderStats() layout.HeaderStats {
	return layout.HeaderStats{Score: s.state.Score, Streak: s.state.Streak, Show: true}
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirm != nil:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Y", Description: "Exit Case"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Answered && s.state.IsLast():
		return []layout.KeyHint{
			{Key: "Enter", Description: "View Case Report"},
			{Key: "Esc", Description: "Exit Case"},
		}
	case s.state.Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next Case"},
			{Key: "Esc", Description: "Exit Case"},
		}
	case s.focus == focusNotes:
		return []layout.KeyHint{
			{Key: "Enter/Tab", Description: "Done"},
			{Key: "Ctrl+S", Description: "Log judgment"},
			{Key: "Esc", Description: "Exit Case"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Tactic"},
			{Key: "Enter", Description: "Pick / Log"},
			{Key: "←→ 1-5", Description: "Confidence"},
			{Key: "Tab", Description: "Notes"},
			{Key: "Esc", Description: "Exit Case"},
		}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusNotes && !s.state.Answered {
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.Generation != s.state.Generation {
		return s, nil
	}
	next, auto := session.Tick(s.state)
	s.state = next
	if auto != nil {
		s.answered(*auto)
		return s, nil
	}
	if s.state.Screen != session.ScreenPlaying || s.state.Answered {
		return s, nil
	}
	return s, tickCmd(s.state.Generation)
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirm != nil {
		c, _ := s.confirm.Update(msg)
		s.confirm = &c
		if answered, accepted := c.Done(); answered {
			s.confirm = nil
			if accepted {
				return s, s.exitCase()
			}
		}
		return s, nil
	}

	if key == "esc" {
		c := components.NewConfirm("Exit this case? Progress on this run is lost.", "Exit Case", "Keep Going")
		s.confirm = &c
		return s, nil
	}

	if s.state.Answered {
		switch key {
		case "enter", "n", "space", " ":
			return s, s.advance()
		}
		return s, nil
	}

	if key == "ctrl+s" {
		return s, s.submit()
	}

	if s.focus == focusNotes {
		switch key {
		case "tab", "enter", "shift+tab":
			s.focus = focusTactics
			s.notes.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		s.state = session.SetReasoning(s.state, s.notes.Value())
		return s, cmd
	}

	switch key {
	case "tab":
		s.focus = focusNotes
		return s, s.notes.Focus()
	case "left", "h", "-":
		s.state = session.SetConfidence(s.state, s.state.Confidence-1)
		return s, nil
	case "right", "l", "+", "=":
		s.state = session.SetConfidence(s.state, s.state.Confidence+1)
		return s, nil
	case "1", "2", "3", "4", "5":
		s.state = session.SetConfidence(s.state, int(key[0]-'0'))
		return s, nil
	case "enter":
		if cur := s.tactics.Cursor; s.state.Selected != "" && s.tactics.Tactics[cur].ID == s.state.Selected {
			return s, s.submit()
		}
	}

	s.tactics, _ = s.tactics.Update(msg)
	if s.tactics.Chosen != s.state.Selected {
		s.state = session.Select(s.state, s.tactics.Chosen)
	}
	return s, nil
}

// submit logs the player's judgment for the current case.
func (s *PlayScreen) submit() tea.Cmd {
	next, a, err := session.Submit(s.state)
	if err != nil {
		if errors.Is(err, session.ErrNoAnswer) {
			s.errMsg = "Pick a tactic first."
		}
		return nil
	}
	s.state = next
	s.answered(a)
	return nil
}

// answered records a finalized attempt and switches to feedback.
func (s *PlayScreen) answered(a session.Attempt) {
	s.errMsg = ""
	s.focus = focusTactics
	s.notes.Blur()
	s.tactics = s.tactics.Reveal(a.Scenario.CorrectTacticID)
	s.env.Recorder.AttemptFinished(s.run, a)
}

// advance moves to the next case, or hands off to the results screen.
func (s *PlayScreen) advance() tea.Cmd {
	next, err := session.Advance(s.state)
	if err != nil {
		return nil
	}
	s.state = next

	if s.state.Screen == session.ScreenResults {
		s.env.Recorder.SessionEnded(s.run, s.state)
		res := results.New(s.env, s.state, s.replay)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: res}
		}
	}

	s.tactics = components.NewTacticList()
	s.notes.Reset()
	return tickCmd(s.state.Generation)
}

// replay builds a fresh play screen for results' replay action.
func (s *PlayScreen) replay(state session.State) screen.Screen {
	return New(s.env, state)
}

// exitCase abandons the run and returns to the menu.
func (s *PlayScreen) exitCase() tea.Cmd {
	next, err := session.Navigate(s.state, session.ScreenMenu)
	if err != nil {
		return nil
	}
	s.env.Recorder.SessionAbandoned(s.run, s.state)
	s.state = next
	return func() tea.Msg { return router.PopToRootMsg{} }
}
