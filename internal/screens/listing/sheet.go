package listing

import (
	"fmt"
	"strings"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/ui/components"
)

// BuildSheet renders the whole exam as a plain-text sheet: the numbered
// questions followed by the answer key appendix. The same text is shown
// on screen and written by the export action.
func BuildSheet(questions []examgen.Question) string {
	var b strings.Builder

	b.WriteString("EXAMEN DE BIOLOGÍA Y GEOLOGÍA\n")
	b.WriteString("Tema: Alimentación y Nutrición - 3º ESO\n\n")
	b.WriteString("Nombre: _________________________________________  Fecha: _________\n\n")
	b.WriteString(strings.Repeat("─", 68) + "\n\n")

	for i, q := range questions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Text))

		switch {
		case q.Type == examgen.TypeShortAnswer:
			b.WriteString("   Respuesta: ______________________  (respuesta breve)\n")
		default:
			for j, opt := range q.Options {
				label := "?"
				if j < len(components.OptionLabels) {
					label = components.OptionLabels[j]
				}
				b.WriteString(fmt.Sprintf("   %s) %s\n", label, opt))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 68) + "\n\n")
	b.WriteString("HOJA DE RESPUESTAS CORRECTAS\n\n")

	for i, q := range questions {
		b.WriteString(fmt.Sprintf("%3d: %s\n", i+1, correctAnswerText(q)))
	}

	return b.String()
}

func correctAnswerText(q examgen.Question) string {
	if q.Type == examgen.TypeShortAnswer {
		return q.CorrectAnswer
	}
	if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
		if q.CorrectIndex < len(components.OptionLabels) {
			return components.OptionLabels[q.CorrectIndex]
		}
	}
	return "?"
}
