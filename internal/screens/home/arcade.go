package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/store"
	"github.com/abhisek/undercover/internal/ui/theme"
)

const arcadeTitleFull = `╔═╗╦  ╦ ╦╔╗╔╔╦╗╔═╗╦═╗╔═╗╔═╗╦  ╦╔═╗╦═╗
╠═╣║  ║ ║║║║ ║║║╣ ╠╦╝║  ║ ║╚╗╔╝║╣ ╠╦╝
╩ ╩╩  ╚═╝╝╚╝═╩╝╚═╝╩╚═╚═╝╚═╝ ╚╝ ╚═╝╩╚═`

const arcadeTitleCompact = "A I · U N D E R C O V E R"

const tagline = "Spot the manipulation before it spots you."

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the case-file stats in a bordered box matching content width.
func renderStatsBar(stats store.Stats, loaded bool, cw int, compact bool) string {
	casesStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case !loaded:
		line = dimStyle.Render("opening case files…")
	case stats.SessionsCompleted == 0:
		line = dimStyle.Render("No cases closed yet. Your first assignment awaits.")
	case compact:
		line = fmt.Sprintf("%s %s %s",
			casesStyle.Render(fmt.Sprintf("■%d", stats.SessionsCompleted)),
			bestStyle.Render(fmt.Sprintf("◆%d", stats.BestScore)),
			accStyle.Render(fmt.Sprintf("◎%.0f%%", stats.Accuracy())),
		)
	default:
		line = fmt.Sprintf("%s  %s  %s",
			casesStyle.Render(fmt.Sprintf("■ %d CLOSED", stats.SessionsCompleted)),
			bestStyle.Render(fmt.Sprintf("◆ BEST %d", stats.BestScore)),
			accStyle.Render(fmt.Sprintf("◎ %.0f%% ACCURACY", stats.Accuracy())),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
