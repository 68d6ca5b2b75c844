package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screen"
	"github.com/abhisek/undercover/internal/store"
	"github.com/abhisek/undercover/internal/ui/layout"
	"github.com/abhisek/undercover/internal/ui/theme"
)

// sessionLimit caps how many past runs are listed.
const sessionLimit = 50

type historyLoadedMsg struct {
	Sessions    []store.SessionSummaryRecord
	Attempts    map[string][]store.AttemptRecord // sessionID → attempts
	Err         error
	AttemptsErr error // runs loaded but their cases did not
}

// HistoryScreen displays past runs, expandable to their cases.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	attempts  map[string][]store.AttemptRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
	warnMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		all, err := repo.QueryAttempts(ctx, store.QueryOpts{Source: store.SourceLocal})
		if err != nil {
			return historyLoadedMsg{
				Sessions:    sessions,
				Attempts:    map[string][]store.AttemptRecord{},
				AttemptsErr: err,
			}
		}

		bySession := make(map[string][]store.AttemptRecord)
		for i := len(all) - 1; i >= 0; i-- { // oldest first within a run
			a := all[i]
			bySession[a.SessionID] = append(bySession[a.SessionID], a)
		}

		return historyLoadedMsg{Sessions: sessions, Attempts: bySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "Case History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.attempts = msg.Attempts
			if msg.AttemptsErr != nil {
				s.warnMsg = "Case details unavailable: " + msg.AttemptsErr.Error()
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening case files...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No closed cases yet. Start an investigation!")
	}

	var b strings.Builder
	b.WriteString("\n")
	if s.warnMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.warnMsg)))
		b.WriteString("\n\n")
	}

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Local().Format("Jan 02, 2006 15:04")
		durationStr := fmt.Sprintf("%d:%02d", sess.DurationSecs/60, sess.DurationSecs%60)

		level := content.Level(sess.Level).Info().Name
		status := fmt.Sprintf("%d pts  %.0f%%  %s", sess.Score, sess.Accuracy(), sess.Rank)
		if sess.Action == store.ActionAbandon {
			status = fmt.Sprintf("abandoned after %d/%d cases", sess.ScenariosAnswered, sess.ScenariosTotal)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %-20s %s", prefix, dateStr, durationStr, level, status)

		style := lipgloss.NewStyle().Foreground(statusColor(sess))
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAttempts(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAttempts(sessionID string, width int) string {
	attempts := s.attempts[sessionID]
	if len(attempts) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No cases answered")) + "\n"
	}

	var b strings.Builder
	for i, a := range attempts {
		mark, fg := "✗", color.Color(theme.Error)
		if a.Correct {
			mark, fg = "✓", theme.Success
		}
		answer := "No answer"
		if a.SelectedTacticID != "" {
			answer = content.TacticName(a.SelectedTacticID)
		}
		line := fmt.Sprintf("    %s Case %d  %-18s %3d pts  %2ds  conf %d/5",
			mark, i+1, answer, a.TotalScore, a.TimeTakenSecs, a.Confidence)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(fg).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func statusColor(sess store.SessionSummaryRecord) color.Color {
	if sess.Action == store.ActionAbandon {
		return theme.TextDim
	}
	return theme.Text
}
