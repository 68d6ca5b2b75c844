package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/ui/theme"
)

// TacticList is the tactic picker on the play screen. The cursor moves
// freely; Chosen only changes on Update with "enter" or "space".
type TacticList struct {
	Tactics []content.Tactic
	Cursor  int
	Chosen  string

	// Correct is set once the answer is revealed.
	Correct  string
	Revealed bool
}

// NewTacticList creates a picker over the full catalog.
func NewTacticList() TacticList {
	return TacticList{Tactics: content.Tactics()}
}

// Update handles cursor movement and selection.
func (l TacticList) Update(msg tea.Msg) (TacticList, tea.Cmd) {
	if l.Revealed {
		return l, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Tactics)-1 {
			l.Cursor++
		}
	case "enter", "space", " ":
		if l.Cursor >= 0 && l.Cursor < len(l.Tactics) {
			l.Chosen = l.Tactics[l.Cursor].ID
		}
	}
	return l, nil
}

// Reveal freezes the list and marks the correct tactic.
func (l TacticList) Reveal(correct string) TacticList {
	l.Correct = correct
	l.Revealed = true
	return l
}

// View renders the list, one tactic per line, with category badges.
func (l TacticList) View(width int) string {
	badgeWidth := 14
	nameWidth := max(width-badgeWidth-6, 10)

	var lines []string
	for i, t := range l.Tactics {
		cursor := "  "
		if i == l.Cursor && !l.Revealed {
			cursor = "▸ "
		}
		mark := "○"
		if t.ID == l.Chosen {
			mark = "●"
		}

		name := t.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}

		var nameStyle lipgloss.Style
		switch {
		case l.Revealed && t.ID == l.Correct:
			nameStyle = theme.Correct
			mark = "✓"
		case l.Revealed && t.ID == l.Chosen:
			nameStyle = theme.Incorrect
			mark = "✗"
		case l.Revealed:
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		case t.ID == l.Chosen:
			nameStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
		case i == l.Cursor:
			nameStyle = theme.Selected
		default:
			nameStyle = theme.Unselected
		}

		lines = append(lines, fmt.Sprintf("%s%s %s %s",
			cursor,
			mark,
			nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
			CategoryBadge(t.Category),
		))
	}
	return strings.Join(lines, "\n")
}

// CategoryBadge renders the manipulative / legitimate tag for a tactic.
func CategoryBadge(c content.Category) string {
	label := strings.ToUpper(content.CategoryDisplayName(c))
	fg := theme.Secondary
	if c == content.CategoryManipulative {
		fg = theme.Error
	}
	return lipgloss.NewStyle().Foreground(fg).Render("[" + label + "]")
}
