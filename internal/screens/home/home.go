package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screen"
	"github.com/abhisek/undercover/internal/screens/history"
	"github.com/abhisek/undercover/internal/screens/levels"
	"github.com/abhisek/undercover/internal/screens/training"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/store"
	"github.com/abhisek/undercover/internal/ui/components"
)

type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env    *game.Env
	menu   components.Menu
	stats  store.Stats
	loaded bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *game.Env) *HomeScreen {
	if env == nil {
		env = &game.Env{}
	}
	h := &HomeScreen{env: env}

	items := []components.MenuItem{
		{Label: "TRAINING", Action: func() tea.Cmd {
			return h.navigate(session.ScreenTraining, func(s session.State) screen.Screen {
				return training.New(env, s)
			})
		}},
		{Label: "START INVESTIGATION", Action: func() tea.Cmd {
			return h.navigate(session.ScreenSelectLevel, func(s session.State) screen.Screen {
				return levels.New(env, s)
			})
		}},
		{Label: "CASE HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(env.Events)}
			}
		}, Disabled: env.Events == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// navigate leaves the menu for to and pushes the screen built from the
// resulting state.
func (h *HomeScreen) navigate(to session.Screen, build func(session.State) screen.Screen) tea.Cmd {
	next, err := session.Navigate(session.NewState(), to)
	if err != nil {
		return nil
	}
	s := build(next)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume refreshes the stats bar after a case closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	events := h.env.Events
	if events == nil {
		h.loaded = true
		return nil
	}
	return func() tea.Msg {
		st, err := events.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err == nil {
			h.stats = msg.Stats
		}
		h.loaded = true
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, h.loaded, cw, compact))
	sections = append(sections, components.ArcadeMenu(h.menu, cw, compact))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Headquarters"
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	switch {
	case h.stats.SessionsCompleted == 0:
		return MascotIdle
	case h.stats.Attempts > 0 && h.stats.Accuracy() >= 90 && h.stats.BestStreak >= 5:
		return MascotCelebrating
	default:
		return MascotSleuthing
	}
}
