package examgen

import "github.com/aruizf/biogen/internal/llm"

// ExamSchema constrains the JSON returned for one sub-topic batch.
var ExamSchema = &llm.Schema{
	Name:        "exam-questions",
	Description: "Un bloque de preguntas de examen con su corrección",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "true_false", "short_answer"},
							"description": "El tipo de pregunta.",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "El enunciado de la pregunta.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Opciones de respuesta (solo para multiple_choice o true_false). Dejar vacío si es short_answer.",
						},
						"correctIndex": map[string]any{
							"type":        "integer",
							"description": "Índice correcto (para multiple_choice/true_false).",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "La respuesta correcta en texto (solo para short_answer, una única palabra).",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Breve explicación.",
						},
					},
					"required": []any{"type", "text", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
