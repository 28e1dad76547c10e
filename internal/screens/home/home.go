package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/llm"
	"github.com/aruizf/biogen/internal/quiz"
	"github.com/aruizf/biogen/internal/screen"
	"github.com/aruizf/biogen/internal/ui/components"
	"github.com/aruizf/biogen/internal/ui/layout"
	"github.com/aruizf/biogen/internal/ui/theme"
)

// examReadyMsg carries a generated exam back to the UI thread.
type examReadyMsg struct {
	questions []examgen.Question
}

// examFailedMsg signals that every generation batch failed.
type examFailedMsg struct {
	err error
}

// HomeScreen is the landing screen: it offers exam sizes and kicks off
// question generation.
type HomeScreen struct {
	generator *examgen.Generator
	session   *quiz.Session
	sessionID string
	menu      components.Menu
	total     int
	errMsg    string
	spinner   int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

type spinnerTickMsg struct{}

// New creates a new HomeScreen. defaultTotal is the question count for
// the full exam option.
func New(generator *examgen.Generator, defaultTotal int) *HomeScreen {
	h := &HomeScreen{
		generator: generator,
		session:   quiz.NewSession(),
	}

	sizes := []struct {
		label string
		total int
	}{
		{fmt.Sprintf("EXAMEN COMPLETO (%d preguntas)", defaultTotal), defaultTotal},
		{"EXAMEN MEDIO (40 preguntas)", 40},
		{"EXAMEN CORTO (20 preguntas)", 20},
	}

	items := make([]components.MenuItem, 0, len(sizes)+1)
	for _, sz := range sizes {
		total := sz.total
		items = append(items, components.MenuItem{
			Label: sz.label,
			Action: func() tea.Cmd {
				return h.startGeneration(total)
			},
			Disabled: generator == nil,
		})
	}
	items = append(items, components.MenuItem{
		Label: "SALIR",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.session.Status() == quiz.StatusGenerating {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Elegir"},
		{Key: "Enter", Description: "Empezar"},
		{Key: "q", Description: "Salir"},
	}
}

// startGeneration moves the session into Generating and launches the
// fan-out on a background command.
func (h *HomeScreen) startGeneration(total int) tea.Cmd {
	if h.session.Status() != quiz.StatusIdle {
		return nil
	}
	h.session.BeginGeneration()
	h.total = total
	h.errMsg = ""
	h.sessionID = uuid.NewString()

	gen := h.generator
	sessionID := h.sessionID
	return tea.Batch(
		func() tea.Msg {
			ctx := llm.WithSessionID(context.Background(), sessionID)
			questions, batches := gen.Generate(ctx, total)
			if len(questions) == 0 {
				return examFailedMsg{err: firstBatchError(batches)}
			}
			return examReadyMsg{questions: questions}
		},
		spinnerTick(),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func firstBatchError(batches []examgen.BatchResult) error {
	for _, b := range batches {
		if b.Err != nil {
			return b.Err
		}
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if h.session.Status() != quiz.StatusGenerating {
			return h, nil
		}
		h.spinner++
		return h, spinnerTick()

	case examReadyMsg:
		if err := h.session.Start(msg.questions); err != nil {
			h.session.GenerationFailed()
			h.errMsg = "No se pudo generar el examen. Inténtalo de nuevo."
			return h, nil
		}
		notice := ""
		if len(msg.questions) < h.total {
			notice = fmt.Sprintf("Se han generado %d de %d preguntas.", len(msg.questions), h.total)
		}
		session, sessionID := h.session, h.sessionID
		return h, func() tea.Msg {
			return screen.ShowExamMsg{Session: session, SessionID: sessionID, Notice: notice}
		}

	case examFailedMsg:
		h.session.GenerationFailed()
		h.errMsg = "No se pudo generar el examen. Inténtalo de nuevo."
		if msg.err != nil {
			h.errMsg += " (" + msg.err.Error() + ")"
		}
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "q" && h.session.Status() != quiz.StatusGenerating {
			return h, tea.Quit
		}
	}

	if h.session.Status() == quiz.StatusGenerating {
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("BioGen 3º ESO")
	subtitle := theme.Subtitle.Width(width).Render(
		"Generador de exámenes de Biología y Geología\nTema: Alimentación y Nutrición")
	sections = append(sections, title, subtitle)

	if h.session.Status() == quiz.StatusGenerating {
		frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := frames[h.spinner%len(frames)]
		generating := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Align(lipgloss.Center).
			Width(width).
			Render(fmt.Sprintf("%s Generando %d preguntas en 4 bloques...", frame, h.total))
		sections = append(sections, "", generating,
			theme.Hint.Width(width).Align(lipgloss.Center).Render("Esto puede tardar un minuto."))
	} else {
		if h.errMsg != "" {
			banner := lipgloss.NewStyle().
				Foreground(theme.Error).
				Bold(true).
				Align(lipgloss.Center).
				Width(width).
				Render("⚠ " + h.errMsg)
			sections = append(sections, "", banner)
		}
		menu := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(h.menu.View())
		sections = append(sections, "", menu)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}
