package levels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screen"
	"github.com/abhisek/undercover/internal/screens/play"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/ui/components"
	"github.com/abhisek/undercover/internal/ui/layout"
	"github.com/abhisek/undercover/internal/ui/theme"
)

// LevelsScreen lets the player pick a difficulty tier.
type LevelsScreen struct {
	env    *game.Env
	state  session.State
	levels []content.Level
	cursor int
	errMsg string
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates a LevelsScreen for a state on the level-select screen.
func New(env *game.Env, state session.State) *LevelsScreen {
	return &LevelsScreen{env: env, state: state, levels: content.Levels()}
}

func (s *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelsScreen) Title() string {
	return "Select Level"
}

func (s *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose tier"},
		{Key: "1-3", Description: "Quick pick"},
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key := kmsg.String(); key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.levels)-1 {
			s.cursor++
		}
	case "1", "2", "3":
		s.cursor = int(key[0] - '1')
		return s, s.begin()
	case "enter":
		return s, s.begin()
	}
	return s, nil
}

// begin starts the highlighted tier and swaps this screen for play.
func (s *LevelsScreen) begin() tea.Cmd {
	level := s.levels[s.cursor]
	var shuffler session.Shuffler
	if s.env != nil {
		shuffler = s.env.Shuffler
	}
	next, err := session.Start(s.state, level, shuffler)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	p := play.New(s.env, next)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: p}
	}
}

func (s *LevelsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var cards []string
	cards = append(cards, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("CHOOSE YOUR ASSIGNMENT"))

	for i, l := range s.levels {
		cards = append(cards, s.renderCard(i, l, cw))
	}

	if s.errMsg != "" {
		cards = append(cards, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return components.CabinetFrame(strings.Join(cards, "\n"), width, height)
}

func (s *LevelsScreen) renderCard(i int, l content.Level, cw int) string {
	info := l.Info()
	selected := i == s.cursor

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	border := theme.Border
	if selected {
		nameStyle = nameStyle.Foreground(theme.ArcadeYellow)
		border = theme.ArcadeYellow
	}

	meta := fmt.Sprintf("%d cases · %d seconds each", content.ScenarioCount(l), session.QuestionSeconds)
	body := fmt.Sprintf("%s  %s\n%s\n%s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d.", i+1)),
		nameStyle.Render(info.Name),
		lipgloss.NewStyle().Foreground(theme.Text).Render(info.Blurb),
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(meta),
	)
	return components.CaseCard(body, cw, border)
}
