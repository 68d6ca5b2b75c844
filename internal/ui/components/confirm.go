package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/ui/theme"
)

// Confirm is a yes/no prompt. The cursor starts on the safe choice (No).
type Confirm struct {
	Prompt   string
	Yes, No  string
	yes      bool
	answered bool
	accepted bool
}

// NewConfirm creates a prompt with the given button labels.
func NewConfirm(prompt, yes, no string) Confirm {
	return Confirm{Prompt: prompt, Yes: yes, No: no}
}

// Update handles left/right, y/n, enter and esc.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.answered {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "right", "h", "l", "tab":
		c.yes = !c.yes
	case "y":
		c.answered, c.accepted = true, true
	case "n", "esc":
		c.answered, c.accepted = true, false
	case "enter":
		c.answered, c.accepted = true, c.yes
	}
	return c, nil
}

// Done reports whether the user answered, and whether they accepted.
func (c Confirm) Done() (answered, accepted bool) {
	return c.answered, c.accepted
}

// View renders the prompt in a card.
func (c Confirm) View(cw int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		button(c.Yes, c.yes),
		"  ",
		button(c.No, !c.yes),
	)
	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt),
		"",
		buttons,
	}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(body)
}

func button(label string, active bool) string {
	if active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
