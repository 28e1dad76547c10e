package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aruizf/biogen/internal/ui/theme"
)

// OptionLabels are the letters shown next to multiple-choice options.
var OptionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList is a selector for multiple-choice and true/false options.
// Unlike an instant-feedback quiz, the chosen option can be changed at
// any time until the exam is finished, so no correctness is shown here.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int // saved answer index, -1 when unanswered
}

// NewOptionList creates a new option list with no saved answer.
func NewOptionList(options []string, chosen int) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Choose saves the option under the cursor and returns its index.
func (o *OptionList) Choose() int {
	o.Chosen = o.Cursor
	return o.Chosen
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(OptionLabels) {
			label = OptionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		mark := " "
		if i == o.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
