package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screen"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/ui/components"
	"github.com/abhisek/undercover/internal/ui/layout"
	"github.com/abhisek/undercover/internal/ui/theme"
)

// ReplayFunc builds the play screen for a freshly started state.
type ReplayFunc func(session.State) screen.Screen

// ResultsScreen is the case report shown after the last scenario.
type ResultsScreen struct {
	env    *game.Env
	state  session.State
	report session.Report
	replay ReplayFunc
	scroll int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.EscapeInterceptor = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a state on the results screen.
func New(env *game.Env, state session.State, replay ReplayFunc) *ResultsScreen {
	if env == nil {
		env = &game.Env{}
	}
	return &ResultsScreen{
		env:    env,
		state:  state,
		report: state.Report(),
		replay: replay,
	}
}

// Report returns the aggregate shown on screen.
func (s *ResultsScreen) Report() session.Report {
	return s.report
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Case Report"
}

// InterceptsEscape routes Esc through the session so it lands on the menu.
func (s *ResultsScreen) InterceptsEscape() bool {
	return true
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Investigate Another Case"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Return to HQ"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r", "R":
		return s, s.restart()
	case "esc", "enter", "q":
		return s, s.home()
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.state.Attempts)-1 {
			s.scroll++
		}
	}
	return s, nil
}

// restart replays the same tier with a new permutation.
func (s *ResultsScreen) restart() tea.Cmd {
	if s.replay == nil {
		return nil
	}
	next, err := session.Start(s.state, s.state.Level, s.env.Shuffler)
	if err != nil {
		return nil
	}
	p := s.replay(next)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: p}
	}
}

func (s *ResultsScreen) home() tea.Cmd {
	if _, err := session.Navigate(s.state, session.ScreenMenu); err != nil {
		return nil
	}
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.report
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Case Review Complete"))
	b.WriteString("\n")
	b.WriteString(center.Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Investigator Rank: ") +
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(r.Rank)))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("%d", r.Score)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Total Investigation Score"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Accuracy %s%%    Avg Time %ss    Correct %d/%d    Best Streak %d",
		r.AccuracyText(), r.AvgElapsedText(), r.Correct, r.Total, r.MaxStreak)
	b.WriteString(center.Foreground(theme.Text).Render(stats))
	b.WriteString("\n\n")

	b.WriteString(components.CaseCard(researchSummary(r, cw), cw, theme.Border))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(divider)
	b.WriteString("\n")

	for i := s.scroll; i < len(s.state.Attempts); i++ {
		b.WriteString(renderAttempt(i, s.state.Attempts[i], cw))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func researchSummary(r session.Report, cw int) string {
	text := fmt.Sprintf("Research Summary Clue: You wrote reasoning on %d/%d cases, with an average confidence of %s/5.",
		r.WithReasoning, r.Total, r.AvgConfidenceText())
	hc := r.HighConfidence
	if hc.Measured {
		text += fmt.Sprintf(" When you were very confident (5/5), you were correct %s of the time (%d/%d cases).",
			r.CalibrationText(), hc.Correct, hc.Total)
	} else {
		text += " You didn't use very high confidence (5/5) on any case this run, so calibration at that level is " +
			r.CalibrationText() + "."
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(text)
}

func renderAttempt(i int, a session.Attempt, cw int) string {
	mark, fg := "✗", color.Color(theme.Error)
	if a.Correct {
		mark, fg = "✓", theme.Success
	}
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Case %d: %s", i+1, a.Scenario.Context))
	pts := lipgloss.NewStyle().Foreground(fg).Bold(true).Render(fmt.Sprintf("%s %d pts", mark, a.Points))
	gap := max(cw-lipgloss.Width(head)-lipgloss.Width(pts), 1)

	answer := "No answer"
	if a.Selected != "" {
		answer = content.TacticName(a.Selected)
	}
	detail := fmt.Sprintf("Your answer: %s • Correct: %s • Time: %ds • Streak at this case: %d • Confidence: %d/5",
		answer, content.TacticName(a.Scenario.CorrectTacticID), a.ElapsedSecs, a.StreakAtAnswer, a.Confidence)
	if a.ReasoningProvided {
		detail += " • Reasoning provided"
	}

	return head + strings.Repeat(" ", gap) + pts + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(detail)
}
