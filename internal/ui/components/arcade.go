package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/ui/theme"
)

// ButtonWidth is the fixed width for stacked menu buttons.
const ButtonWidth = 26

// ContentWidth returns the uniform inner width used for all arcade sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// CaseCard is a left-aligned card with a colored border, used for case files.
func CaseCard(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// ArcadeButton renders a styled button matching the home menu style.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ArcadeYellow).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// ArcadeMenu renders the menu as stacked buttons, or as plain lines when
// compact is set and bordered buttons would overflow.
func ArcadeMenu(m Menu, cw int, compact bool) string {
	var lines []string
	for i, item := range m.Items {
		selected := i == m.Selected && !item.Disabled
		switch {
		case compact && selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+item.Label+" "))
		case compact:
			fg := theme.Text
			if item.Disabled {
				fg = theme.TextDim
			}
			lines = append(lines, lipgloss.NewStyle().Foreground(fg).Render("   "+item.Label))
		case item.Disabled:
			lines = append(lines, lipgloss.NewStyle().
				Width(ButtonWidth).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Render(item.Label))
		default:
			lines = append(lines, ArcadeButton(item.Label, selected, ButtonWidth))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
