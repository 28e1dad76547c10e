package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/router"
	"github.com/aruizf/biogen/internal/screen"
	examscreen "github.com/aruizf/biogen/internal/screens/exam"
	"github.com/aruizf/biogen/internal/screens/home"
	"github.com/aruizf/biogen/internal/screens/listing"
	"github.com/aruizf/biogen/internal/screens/results"
	"github.com/aruizf/biogen/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the screen stack and
// resolves the navigation messages screens emit.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(generator *examgen.Generator, defaultTotal int) AppModel {
	homeScreen := home.New(generator, defaultTotal)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.ShowExamMsg:
		next := examscreen.New(msg.Session, msg.SessionID).WithNotice(msg.Notice)
		return m, m.showAboveHome(next)

	case screen.ShowResultsMsg:
		return m, m.showAboveHome(results.New(msg.Session, msg.SessionID))

	case screen.ShowListingMsg:
		return m, m.showAboveHome(listing.New(msg.Session, msg.SessionID))

	case screen.ShowHomeMsg:
		var cmd tea.Cmd
		for m.router.Depth() > 1 {
			cmd = m.router.Pop()
		}
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// showAboveHome keeps the stack two deep: the home screen at the bottom
// and the current exam phase screen on top.
func (m AppModel) showAboveHome(s screen.Screen) tea.Cmd {
	if m.router.Depth() > 1 {
		return m.router.Replace(s)
	}
	return m.router.Push(s)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	timer := ""
	if active != nil {
		title = active.Title()
		if tp, ok := active.(screen.TimerProvider); ok {
			timer = tp.TimerLabel()
		}
	}

	header := layout.RenderHeader(title, timer, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Salir"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(generator *examgen.Generator, defaultTotal int) error {
	p := tea.NewProgram(newAppModel(generator, defaultTotal))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
