package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aruizf/biogen/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with BioGen styling. It is used for
// short-answer questions, so it accepts any text including accents.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	saved    bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with a saved marker once the answer has
// been recorded.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.saved {
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ guardada")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// MarkSaved toggles the saved marker next to the input.
func (t *TextInput) MarkSaved(saved bool) {
	t.saved = saved
}
