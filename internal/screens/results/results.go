package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aruizf/biogen/internal/quiz"
	"github.com/aruizf/biogen/internal/screen"
	"github.com/aruizf/biogen/internal/scoring"
	"github.com/aruizf/biogen/internal/ui/components"
	"github.com/aruizf/biogen/internal/ui/layout"
	"github.com/aruizf/biogen/internal/ui/theme"
)

// ResultsScreen shows the final score and the per-question review.
type ResultsScreen struct {
	session   *quiz.Session
	sessionID string

	stats      scoring.Stats
	review     []scoring.ReviewItem
	showReview bool
	cursor     int // review item under focus
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over a finished session. Scoring is
// computed once here; the session is no longer mutated.
func New(session *quiz.Session, sessionID string) *ResultsScreen {
	opts := scoring.Options{}
	return &ResultsScreen{
		session:   session,
		sessionID: sessionID,
		stats:     scoring.Compute(session.Questions, session.Answers, opts),
		review:    scoring.BuildReview(session.Questions, session.Answers, opts),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Resultados"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.showReview {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Pregunta"},
			{Key: "R", Description: "Ocultar revisión"},
			{Key: "N", Description: "Nuevo examen"},
			{Key: "L", Description: "Vista de lista"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Revisar respuestas"},
		{Key: "N", Description: "Nuevo examen"},
		{Key: "L", Description: "Vista de lista"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		r.showReview = !r.showReview
	case "up", "k":
		if r.showReview && r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.showReview && r.cursor < len(r.review)-1 {
			r.cursor++
		}
	case "n":
		r.session.Reset()
		return r, func() tea.Msg {
			return screen.ShowHomeMsg{}
		}
	case "l", "ctrl+l":
		r.session.ViewList()
		session, sessionID := r.session, r.sessionID
		return r, func() tea.Msg {
			return screen.ShowListingMsg{Session: session, SessionID: sessionID}
		}
	}

	return r, nil
}

// scoreMessage mirrors the report card wording used in class.
func scoreMessage(percent int) string {
	switch {
	case percent >= 90:
		return "¡Excelente trabajo! Dominas el tema."
	case percent >= 70:
		return "¡Muy bien! Tienes buenos conocimientos."
	case percent >= 50:
		return "Aprobado, pero conviene repasar algunos conceptos."
	}
	return "Necesitas estudiar más este tema."
}

func scoreStyle(percent int) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case percent >= 90:
		return style.Foreground(theme.Success)
	case percent >= 70:
		return style.Foreground(theme.Primary)
	case percent >= 50:
		return style.Foreground(theme.Accent)
	}
	return style.Foreground(theme.Error)
}

func (r *ResultsScreen) View(width, height int) string {
	if r.showReview {
		return r.renderReview(width, height)
	}
	return r.renderSummary(width, height)
}

func (r *ResultsScreen) renderSummary(width, height int) string {
	var b strings.Builder

	score := scoreStyle(r.stats.ScorePercent).
		Render(fmt.Sprintf("%d%%", r.stats.ScorePercent))
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("Nota final: ") + score + "\n")
	b.WriteString(theme.Body.Render(scoreMessage(r.stats.ScorePercent)) + "\n\n")

	counts := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✔ Correctas: %d", r.stats.Correct)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("✘ Incorrectas: %d", r.stats.Incorrect)),
		lipgloss.NewStyle().Foreground(theme.Warning).Render(fmt.Sprintf("— Sin responder: %d", r.stats.Unanswered)),
	}
	b.WriteString(strings.Join(counts, "    ") + "\n\n")

	barWidth := 50
	if barWidth > width-20 {
		barWidth = width - 20
	}
	total := float64(r.stats.Total)
	if total == 0 {
		total = 1
	}
	bar := components.NewProgressBar("", float64(r.stats.Correct)/total, true, barWidth)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(theme.Hint.Render("R revisar · N nuevo examen · L vista de lista"))

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (r *ResultsScreen) renderReview(width, height int) string {
	if len(r.review) == 0 {
		return theme.Hint.Render("No hay preguntas que revisar.")
	}

	item := r.review[r.cursor]
	q := item.Question

	cardWidth := width - 8
	if cardWidth > 90 {
		cardWidth = 90
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	var b strings.Builder

	pos := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("#%d de %d", r.cursor+1, len(r.review)))
	b.WriteString(pos + "  " + verdictBadge(item.Verdict) + "\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(q.Category) + "\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cardWidth-4).
		Render(q.Text) + "\n\n")

	if q.HasOptions() {
		for i, opt := range q.Options {
			label := "?"
			if i < len(components.OptionLabels) {
				label = components.OptionLabels[i]
			}
			line := fmt.Sprintf("%s)  %s", label, opt)
			switch {
			case i == q.CorrectIndex:
				b.WriteString(theme.Correct.Render("✔ "+line) + "\n")
			case item.Answered && i == item.UserOption:
				b.WriteString(theme.Incorrect.Render("✘ "+line) + "\n")
			default:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line) + "\n")
			}
		}
	} else {
		user := item.UserAnswer
		if !item.Answered {
			user = "(sin respuesta)"
		}
		b.WriteString(theme.Body.Render("Tu respuesta: ") + renderUserShort(item, user) + "\n")
		b.WriteString(theme.Body.Render("Respuesta correcta: ") + theme.Correct.Render(item.CorrectAnswer) + "\n")
	}

	if q.Explanation != "" {
		b.WriteString("\n" + theme.Hint.Width(cardWidth-4).Render("💡 "+q.Explanation) + "\n")
	}

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func renderUserShort(item scoring.ReviewItem, user string) string {
	switch item.Verdict {
	case scoring.VerdictCorrect:
		return theme.Correct.Render(user)
	case scoring.VerdictUnanswered:
		return theme.Unanswered.Render(user)
	}
	return theme.Incorrect.Render(user)
}

func verdictBadge(v scoring.Verdict) string {
	switch v {
	case scoring.VerdictCorrect:
		return theme.Correct.Render("CORRECTA")
	case scoring.VerdictUnanswered:
		return theme.Unanswered.Render("SIN RESPONDER")
	}
	return theme.Incorrect.Render("INCORRECTA")
}
