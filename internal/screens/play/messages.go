package play

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickMsg is the one-second countdown tick. It carries the state
// generation it was scheduled under; a tick from an older generation is
// stale and ignored.
type tickMsg struct {
	Generation uint64
}

// tickInterval is the countdown resolution.
var tickInterval = time.Second

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{Generation: gen}
	})
}
