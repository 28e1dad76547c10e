package listing

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aruizf/biogen/internal/quiz"
	"github.com/aruizf/biogen/internal/screen"
	"github.com/aruizf/biogen/internal/ui/layout"
	"github.com/aruizf/biogen/internal/ui/theme"
)

// exportDoneMsg reports the outcome of writing the exam sheet to disk.
type exportDoneMsg struct {
	path string
	err  error
}

// ListScreen shows the whole exam as a printable sheet with the answer
// key at the end, scrollable line by line.
type ListScreen struct {
	session   *quiz.Session
	sessionID string

	lines     []string
	offset    int
	exportMsg string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates a ListScreen over the session's questions.
func New(session *quiz.Session, sessionID string) *ListScreen {
	sheet := BuildSheet(session.Questions)
	return &ListScreen{
		session:   session,
		sessionID: sessionID,
		lines:     strings.Split(sheet, "\n"),
	}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Title() string {
	return "Vista de lista"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Desplazar"},
		{Key: "E", Description: "Exportar a archivo"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			l.exportMsg = "No se pudo exportar: " + msg.err.Error()
		} else {
			l.exportMsg = "Examen exportado a " + msg.path
		}
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.offset > 0 {
				l.offset--
			}
		case "down", "j":
			if l.offset < len(l.lines)-1 {
				l.offset++
			}
		case "pgup":
			l.offset -= 20
			if l.offset < 0 {
				l.offset = 0
			}
		case "pgdown":
			l.offset += 20
			if l.offset > len(l.lines)-1 {
				l.offset = len(l.lines) - 1
			}
		case "e":
			return l, l.export()
		case "esc":
			return l, l.back()
		}
	}
	return l, nil
}

// export writes the plain-text sheet next to the working directory.
func (l *ListScreen) export() tea.Cmd {
	sheet := BuildSheet(l.session.Questions)
	name := fmt.Sprintf("examen-%s.txt", shortID(l.sessionID))
	return func() tea.Msg {
		err := os.WriteFile(name, []byte(sheet), 0o644)
		return exportDoneMsg{path: name, err: err}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// back leaves the list view. With recorded answers the session resumes
// in review, otherwise the exam keeps going.
func (l *ListScreen) back() tea.Cmd {
	l.session.BackFromList()
	session, sessionID := l.session, l.sessionID
	if l.session.Status() == quiz.StatusReview {
		return func() tea.Msg {
			return screen.ShowResultsMsg{Session: session, SessionID: sessionID}
		}
	}
	return func() tea.Msg {
		return screen.ShowExamMsg{Session: session, SessionID: sessionID}
	}
}

func (l *ListScreen) View(width, height int) string {
	visible := height - 2
	if visible < 1 {
		visible = 1
	}

	end := l.offset + visible
	if end > len(l.lines) {
		end = len(l.lines)
	}
	window := l.lines[l.offset:end]

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		Render(strings.Join(window, "\n"))

	status := theme.Hint.Render(fmt.Sprintf("línea %d de %d", l.offset+1, len(l.lines)))
	if l.exportMsg != "" {
		status = lipgloss.NewStyle().Foreground(theme.Secondary).Render(l.exportMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		Render(body + "\n" + status)
}
