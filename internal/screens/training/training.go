package training

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/router"
	"github.com/abhisek/undercover/internal/screen"
	"github.com/abhisek/undercover/internal/screens/levels"
	"github.com/abhisek/undercover/internal/session"
	"github.com/abhisek/undercover/internal/ui/components"
	"github.com/abhisek/undercover/internal/ui/layout"
	"github.com/abhisek/undercover/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowTactic
)

type row struct {
	kind     rowKind
	category content.Category
	tactic   *content.Tactic
}

// TrainingScreen is the briefing room: every tactic grouped by category,
// with the highlighted one described in a card below the list.
type TrainingScreen struct {
	env          *game.Env
	state        session.State
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*TrainingScreen)(nil)
var _ screen.KeyHintProvider = (*TrainingScreen)(nil)

// New creates a TrainingScreen for a state already on the training screen.
func New(env *game.Env, state session.State) *TrainingScreen {
	var rows []row
	for _, c := range content.AllCategories() {
		rows = append(rows, row{kind: rowCategoryHeader, category: c})
		tactics := content.TacticsByCategory(c)
		for i := range tactics {
			rows = append(rows, row{kind: rowTactic, category: c, tactic: &tactics[i]})
		}
	}

	s := &TrainingScreen{env: env, state: state, rows: rows}
	for i, r := range s.rows {
		if r.kind == rowTactic {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *TrainingScreen) Init() tea.Cmd {
	return nil
}

func (s *TrainingScreen) Title() string {
	return "Training"
}

// KeyHints returns the key binding hints for the footer.
func (s *TrainingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Start Investigation"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrainingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.jumpCategory(1)
		case "shift+tab":
			s.jumpCategory(-1)
		case "enter":
			return s, s.startInvestigation()
		}
	}
	return s, nil
}

// Selected returns the highlighted tactic.
func (s *TrainingScreen) Selected() (content.Tactic, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].tactic == nil {
		return content.Tactic{}, false
	}
	return *s.rows[s.cursor].tactic, true
}

func (s *TrainingScreen) startInvestigation() tea.Cmd {
	next, err := session.Navigate(s.state, session.ScreenSelectLevel)
	if err != nil {
		return nil
	}
	lv := levels.New(s.env, next)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: lv}
	}
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *TrainingScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTactic {
			s.cursor = next
			return
		}
		next += delta
	}
}

// jumpCategory moves to the first tactic of the next or previous
// category, wrapping around.
func (s *TrainingScreen) jumpCategory(dir int) {
	cats := content.AllCategories()
	cur := 0
	for i, c := range cats {
		if c == s.rows[s.cursor].category {
			cur = i
		}
	}
	target := cats[(cur+dir+len(cats))%len(cats)]
	for i, r := range s.rows {
		if r.kind == rowTactic && r.category == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *TrainingScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *TrainingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	tabs := s.renderTabs()
	detail := s.renderDetail(cw)
	listHeight := height - lipgloss.Height(tabs) - lipgloss.Height(detail) - 2
	if listHeight < 3 {
		listHeight = 3
	}
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category))
		case rowTactic:
			lines = append(lines, s.renderTacticRow(r, i == s.cursor, cw))
		}
	}

	body := strings.Join([]string{tabs, strings.Join(lines, "\n"), detail}, "\n\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *TrainingScreen) renderTabs() string {
	active := s.rows[s.cursor].category
	var tabs []string
	for _, c := range content.AllCategories() {
		label := fmt.Sprintf(" %s (%d) ", content.CategoryDisplayName(c), len(content.TacticsByCategory(c)))
		if c == active {
			tabs = append(tabs, theme.ButtonActive.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (s *TrainingScreen) renderCategoryHeader(c content.Category) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(content.CategoryDisplayName(c)))
}

func (s *TrainingScreen) renderTacticRow(r row, selected bool, cw int) string {
	cursor := "  "
	style := theme.Unselected
	if selected {
		cursor = "▸ "
		style = theme.Selected
	}
	name := fmt.Sprintf("%-*s", max(cw-20, 10), r.tactic.Name)
	return fmt.Sprintf("%s%s %s", cursor, style.Render(name), components.CategoryBadge(r.category))
}

func (s *TrainingScreen) renderDetail(cw int) string {
	t, ok := s.Selected()
	if !ok {
		return ""
	}
	title := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(t.Name)
	desc := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(t.Description)
	return components.CaseCard(title+"\n"+desc, cw, theme.Border)
}
