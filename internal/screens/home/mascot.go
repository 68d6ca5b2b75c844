package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No cases closed yet
	MascotSleuthing                        // Has a case history
	MascotCelebrating                      // Best rank reached
)

const mascotIdle = ` ▄███▄
┌─────┐
│ ◉ ◉ │
│  ▽  │
└─┬─┬─┘`

const mascotSleuthing = ` ▄███▄
┌─────┐
│ ◉ ◔ │ ⌕
│  ─  │
└─┬─┬─┘`

const mascotCelebrating = ` ▄███▄
┌─────┐
│ ★ ★ │
│  ▿  │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotSleuthing:
		art = mascotSleuthing
		fg = theme.ArcadeCyan
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
