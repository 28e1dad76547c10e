package exam

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/quiz"
	"github.com/aruizf/biogen/internal/screen"
	"github.com/aruizf/biogen/internal/ui/components"
	"github.com/aruizf/biogen/internal/ui/layout"
	"github.com/aruizf/biogen/internal/ui/theme"
)

// timerTickMsg is sent once per second while the exam runs.
type timerTickMsg time.Time

// ExamScreen presents one question at a time with the countdown running.
type ExamScreen struct {
	session   *quiz.Session
	sessionID string

	options       components.OptionList
	input         components.TextInput
	inputQID      int // question id the input buffer belongs to
	confirmFinish bool
	notice        string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.TimerProvider = (*ExamScreen)(nil)

// New creates an ExamScreen over an already started session.
func New(session *quiz.Session, sessionID string) *ExamScreen {
	e := &ExamScreen{
		session:   session,
		sessionID: sessionID,
		input:     components.NewTextInput("Escribe aquí...", 60),
		inputQID:  -1,
	}
	e.syncQuestion()
	return e
}

// WithNotice sets a transient banner shown above the first question,
// used for partial-generation warnings.
func (e *ExamScreen) WithNotice(notice string) *ExamScreen {
	e.notice = notice
	return e
}

func (e *ExamScreen) Init() tea.Cmd {
	return tea.Batch(tickCmd(), e.input.Init())
}

func (e *ExamScreen) Title() string {
	return fmt.Sprintf("Pregunta %d / %d", e.session.Current+1, len(e.session.Questions))
}

func (e *ExamScreen) TimerLabel() string {
	return layout.FormatClock(e.session.TimeLeft)
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	if e.confirmFinish {
		return []layout.KeyHint{
			{Key: "Y", Description: "Entregar"},
			{Key: "N", Description: "Seguir"},
		}
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "Pregunta"},
		{Key: "Enter", Description: "Guardar respuesta"},
		{Key: "Esc", Description: "Entregar"},
		{Key: "Ctrl+L", Description: "Vista de lista"},
	}
}

// syncQuestion rebuilds the per-question widgets after navigation so
// saved answers show up when revisiting a question.
func (e *ExamScreen) syncQuestion() {
	q, ok := e.session.CurrentQuestion()
	if !ok {
		return
	}

	if q.HasOptions() {
		chosen := -1
		if ans, answered := e.session.Answers[q.ID]; answered && !ans.IsText {
			chosen = ans.Option
		}
		e.options = components.NewOptionList(q.Options, chosen)
		return
	}

	if e.inputQID != q.ID {
		e.input = components.NewTextInput("Escribe aquí...", 60)
		e.inputQID = q.ID
		if ans, answered := e.session.Answers[q.ID]; answered && ans.IsText {
			e.input.SetValue(ans.Text)
			e.input.MarkSaved(true)
		}
	}
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return e.handleTimerTick()
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

// handleTimerTick decrements the countdown and reschedules the tick only
// while the session stays active. A tick arriving after the session left
// Active is dropped without rescheduling.
func (e *ExamScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	timedOut := e.session.Tick()
	if timedOut {
		return e, e.gotoResults()
	}
	if e.session.Status() != quiz.StatusActive {
		return e, nil
	}
	return e, tickCmd()
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if e.session.Status() != quiz.StatusActive {
		return e, nil
	}

	if e.confirmFinish {
		switch msg.String() {
		case "y", "Y", "enter":
			e.session.Finish()
			return e, e.gotoResults()
		case "n", "N", "esc":
			e.confirmFinish = false
		}
		return e, nil
	}

	q, ok := e.session.CurrentQuestion()
	if !ok {
		return e, nil
	}

	// Plain l opens the listing except while a text answer is being typed.
	if q.HasOptions() && msg.String() == "l" {
		return e, e.gotoListing()
	}

	switch msg.String() {
	case "left":
		e.session.Prev()
		e.syncQuestion()
		return e, nil
	case "right":
		e.session.Next()
		e.syncQuestion()
		return e, nil
	case "esc":
		e.confirmFinish = true
		return e, nil
	case "ctrl+l":
		return e, e.gotoListing()
	case "enter":
		e.saveAnswer(q)
		return e, nil
	}

	// Remaining keys go to the active widget.
	var cmd tea.Cmd
	if q.HasOptions() {
		e.options, cmd = e.options.Update(msg)
	} else {
		e.input, cmd = e.input.Update(msg)
		e.input.MarkSaved(false)
	}
	return e, cmd
}

func (e *ExamScreen) saveAnswer(q examgen.Question) {
	if q.HasOptions() {
		e.session.SelectAnswer(q.ID, quiz.OptionAnswer(e.options.Choose()))
		return
	}
	text := strings.TrimSpace(e.input.Value())
	if text == "" {
		return
	}
	e.session.SelectAnswer(q.ID, quiz.TextAnswer(text))
	e.input.MarkSaved(true)
}

// gotoResults swaps this screen for the results screen. Any tick still
// in flight lands on a session that is no longer Active and is ignored.
func (e *ExamScreen) gotoResults() tea.Cmd {
	session, sessionID := e.session, e.sessionID
	return func() tea.Msg {
		return screen.ShowResultsMsg{Session: session, SessionID: sessionID}
	}
}

func (e *ExamScreen) gotoListing() tea.Cmd {
	e.session.ViewList()
	session, sessionID := e.session, e.sessionID
	return func() tea.Msg {
		return screen.ShowListingMsg{Session: session, SessionID: sessionID}
	}
}

func (e *ExamScreen) View(width, height int) string {
	if e.confirmFinish {
		return e.renderConfirm(width, height)
	}

	q, ok := e.session.CurrentQuestion()
	if !ok {
		return theme.Hint.Render("No hay preguntas.")
	}

	cardWidth := width - 8
	if cardWidth > 90 {
		cardWidth = 90
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	var b strings.Builder

	if e.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render("⚠ "+e.notice) + "\n\n")
	}

	answered := len(e.session.Answers)
	progress := components.NewProgressBar(
		fmt.Sprintf("Respondidas %d/%d", answered, len(e.session.Questions)),
		float64(answered)/float64(len(e.session.Questions)),
		false,
		cardWidth,
	)
	b.WriteString(progress.View() + "\n\n")

	category := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(q.Category)
	kind := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  ·  " + questionKindLabel(q.Type))
	b.WriteString(category + kind + "\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cardWidth-4).
		Render(q.Text) + "\n\n")

	if q.HasOptions() {
		b.WriteString(e.options.View())
	} else {
		b.WriteString(theme.Body.Render("Escribe tu respuesta (una sola palabra):") + "\n\n")
		b.WriteString(e.input.View() + "\n")
		b.WriteString(theme.Hint.Render("No te preocupes por las mayúsculas, intentaremos entenderlo."))
	}

	card := theme.Card.Width(cardWidth).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (e *ExamScreen) renderConfirm(width, height int) string {
	answered := len(e.session.Answers)
	unanswered := len(e.session.Questions) - answered

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("¿Entregar el examen?") + "\n\n")
	b.WriteString(theme.Body.Render(
		fmt.Sprintf("Respondidas: %d   Sin responder: %d", answered, unanswered)) + "\n\n")
	b.WriteString(theme.Hint.Render("Y entregar · N seguir"))

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func questionKindLabel(t examgen.QuestionType) string {
	switch t {
	case examgen.TypeMultipleChoice:
		return "Opción múltiple"
	case examgen.TypeTrueFalse:
		return "Verdadero / Falso"
	case examgen.TypeShortAnswer:
		return "Respuesta corta"
	}
	return string(t)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
