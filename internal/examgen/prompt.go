package examgen

import (
	"fmt"
	"strings"
)

// Subtopics are the four fixed thematic blocks of the exam. Each one is
// requested as an independent generation batch.
var Subtopics = []string{
	"Nutrientes (Glúcidos, Lípidos, Proteínas, Vitaminas, Sales, Agua) y Energía",
	"Anatomía y Fisiología del Aparato Digestivo (Órganos, procesos de digestión)",
	"Dieta Equilibrada, Rueda de alimentos, Metabolismo y Hábitos Saludables",
	"Enfermedades relacionadas con la alimentación, conservación y manipulación de alimentos",
}

const systemPrompt = `Eres un profesor de Biología y Geología de 3º ESO que prepara exámenes sobre Alimentación y Nutrición.

Reglas:
- Genera exactamente el número de preguntas solicitado sobre el bloque temático indicado.
- Las preguntas deben ser claras, autocontenidas y adecuadas para alumnos de 14-15 años.
- Cada pregunta lleva una breve explicación de la respuesta correcta.
- Para "multiple_choice": 4 opciones, exactamente 1 correcta. Los distractores deben reflejar errores habituales.
- Para "true_false": las opciones son exactamente ["Verdadero", "Falso"].
- Para "short_answer": el alumno escribe una única palabra clave; deja las opciones vacías.
- Idioma: Español.`

// buildBatchPrompt constructs the user prompt for one sub-topic batch.
// The type mix mirrors the printed exams the tool imitates: roughly 60%
// test questions, 20% true/false and 20% short answer.
func buildBatchPrompt(topic string, batchSize int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Genera %d preguntas para un examen de 3º ESO (Biología) sobre: %q.\n\n", batchSize, topic)
	b.WriteString("Debes mezclar los siguientes tipos de preguntas:\n")
	b.WriteString("1. \"multiple_choice\" (aprox 60%): 4 opciones, 1 correcta.\n")
	b.WriteString("2. \"true_false\" (aprox 20%): Opciones [\"Verdadero\", \"Falso\"].\n")
	b.WriteString("3. \"short_answer\" (aprox 20%): El alumno debe escribir una única palabra clave.\n\n")
	b.WriteString("Idioma: Español. Nivel: 14-15 años.")

	return b.String()
}
