package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/ui/components"
	"github.com/abhisek/undercover/internal/ui/theme"
)

// Feedback headlines.
const (
	CorrectHeadline   = "Correct – nice catch!"
	IncorrectHeadline = "Not quite – good learning moment."
)

func caseTitle(st session.State) string {
	if len(st.Scenarios) == 0 {
		return "Case File"
	}
	return fmt.Sprintf("Case %d/%d", st.Index+1, len(st.Scenarios))
}

func (s *PlayScreen) View(width, height int) string {
	sc, ok := s.state.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)

	sections := []string{
		s.renderTopBar(cw),
		s.renderProgress(cw),
		renderCaseFile(sc, cw),
	}

	switch {
	case s.confirm != nil:
		sections = append(sections, s.confirm.View(cw))
	case s.state.Answered:
		sections = append(sections, s.renderFeedback(sc, cw))
	default:
		sections = append(sections, s.renderAnswerForm(cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func (s *PlayScreen) renderTopBar(cw int) string {
	info := s.state.Level.Info()
	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("CASE %d/%d", s.state.Index+1, len(s.state.Scenarios))) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+info.Name)

	timer := fmt.Sprintf("⏱ %2ds", s.state.TimeLeft)
	if s.state.Answered {
		timer = "⏱ --"
	}
	right := theme.TimerColor(s.state.TimeLeft).Render(timer)

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (s *PlayScreen) renderProgress(cw int) string {
	total := len(s.state.Scenarios)
	done := s.state.Index
	if s.state.Answered {
		done++
	}
	bar := components.NewProgressBar("", float64(done)/float64(max(total, 1)), false, cw)
	bar.Fill = theme.Success
	return bar.View()
}

func renderCaseFile(sc content.Scenario, cw int) string {
	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.ArcadeCyan).
		Padding(0, 1).
		Render(sc.AIType)
	heading := badge + " " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Case File: "+sc.Context)

	message := lipgloss.NewStyle().
		Foreground(theme.Text).
		Italic(true).
		Width(cw - 6).
		Render("“" + sc.Message + "”")

	return components.CaseCard(heading+"\n\n"+message, cw, theme.Primary)
}

func (s *PlayScreen) renderAnswerForm(cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render("What tactic is this AI using?"))
	b.WriteString("\n")
	b.WriteString(s.tactics.View(cw))
	b.WriteString("\n\n")

	b.WriteString(renderConfidence(s.state.Confidence))
	b.WriteString("\n\n")

	label := "Notes (optional): did this scenario feel realistic?"
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == focusNotes {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	s.notes.SetWidth(cw - 14)
	b.WriteString(s.notes.View())
	b.WriteString("\n\n")

	b.WriteString(components.ArcadeButton("Log Your Judgment", s.state.CanSubmit(), components.ButtonWidth))
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}
	return b.String()
}

func renderConfidence(level int) string {
	var dots strings.Builder
	for i := session.MinConfidence; i <= session.MaxConfidence; i++ {
		if i <= level {
			dots.WriteString("●")
		} else {
			dots.WriteString("○")
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("Confidence ") +
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(dots.String()) +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/5  (1 just guessing · 3 somewhat sure · 5 very sure)", level))
}

func (s *PlayScreen) renderFeedback(sc content.Scenario, cw int) string {
	a, ok := s.state.LastAttempt()
	if !ok {
		return ""
	}

	headline := theme.Incorrect.Render("✗ " + IncorrectHeadline)
	border := theme.Error
	if a.Correct {
		headline = theme.Correct.Render("✓ " + CorrectHeadline)
		border = theme.Success
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		headline,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("+%d points", a.Points)),
		dim.Render(fmt.Sprintf("Speed bonus: %ds left (+%d)", session.QuestionSeconds-a.ElapsedSecs, a.Bonuses.Time)),
	}
	if a.Bonuses.Reasoning > 0 {
		lines = append(lines, dim.Render(fmt.Sprintf("Deep reasoning bonus: +%d", a.Bonuses.Reasoning)))
	}
	if a.Bonuses.Streak > 0 {
		lines = append(lines, dim.Render(fmt.Sprintf("Streak bonus (x%d): +%d", a.StreakAtAnswer, a.Bonuses.Streak)))
	}
	lines = append(lines, dim.Render(fmt.Sprintf("Confidence this case: %d/5", a.Confidence)))

	notes := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Investigator Notes:"),
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(sc.Explanation),
	}
	if !a.Correct {
		chosen := "No answer"
		if a.Selected != "" {
			chosen = content.TacticName(a.Selected)
		}
		notes = append(notes,
			dim.Render("Your answer: "+chosen),
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
				Render("Correct tactic: "+content.TacticName(sc.CorrectTacticID)),
		)
	}

	next := "Next Case ▸"
	if s.state.IsLast() {
		next = "View Case Report"
	}

	return strings.Join([]string{
		components.CaseCard(strings.Join(lines, "\n"), cw, border),
		components.CaseCard(strings.Join(notes, "\n"), cw, theme.Border),
		components.ArcadeButton(next, true, components.ButtonWidth),
	}, "\n")
}
