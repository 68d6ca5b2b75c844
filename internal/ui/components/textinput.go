package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undercover/internal/ui/theme"
)

// ReasoningCharLimit caps the investigator notes.
const ReasoningCharLimit = 280

// TextInput wraps bubbles/textinput with case-file styling and a live
// character counter against a bonus threshold.
type TextInput struct {
	Model textinput.Model

	// Threshold is the trimmed length that must be exceeded for the
	// counter to turn green. Zero disables the counter.
	Threshold int
}

// NewTextInput creates a new styled text input. It starts blurred.
func NewTextInput(placeholder string, charLimit, threshold int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "✎ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:     ti,
		Threshold: threshold,
	}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// SetWidth sets the visible width of the field.
func (t *TextInput) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with its counter.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Threshold <= 0 {
		return view
	}
	n := utf8.RuneCountInString(strings.TrimSpace(t.Model.Value()))
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if n > t.Threshold {
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	return view + "  " + style.Render(fmt.Sprintf("%d/%d", n, t.Threshold+1))
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
