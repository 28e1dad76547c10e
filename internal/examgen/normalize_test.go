package examgen

import "testing"

func TestSanitize_ShortAnswerForcesEmptyOptions(t *testing.T) {
	raw := rawQuestion{
		Type:          "short_answer",
		Text:          "¿Qué monosacárido es la principal fuente de energía celular?",
		Options:       []string{"Glucosa", "Fructosa"}, // service noise
		CorrectAnswer: "  Glucosa  ",
		Explanation:   "La glucosa es el combustible principal de la célula.",
	}

	q, err := sanitize(raw, 2003, "Nutrientes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Options) != 0 {
		t.Fatalf("short_answer must not carry options, got %v", q.Options)
	}
	if q.CorrectAnswer != "Glucosa" {
		t.Fatalf("expected trimmed answer, got %q", q.CorrectAnswer)
	}
	if q.ID != 2003 || q.Category != "Nutrientes" {
		t.Fatalf("id/category not assigned: %+v", q)
	}
}

func TestSanitize_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  rawQuestion
	}{
		{"unknown type", rawQuestion{Type: "essay", Text: "x", Explanation: "y"}},
		{"empty text", rawQuestion{Type: "true_false", Text: "  ", Explanation: "y", Options: []string{"Verdadero", "Falso"}}},
		{"empty explanation", rawQuestion{Type: "true_false", Text: "x", Options: []string{"Verdadero", "Falso"}}},
		{"mc without options", rawQuestion{Type: "multiple_choice", Text: "x", Explanation: "y"}},
		{"index out of range", rawQuestion{Type: "multiple_choice", Text: "x", Explanation: "y", Options: []string{"a", "b"}, CorrectIndex: 2}},
		{"negative index", rawQuestion{Type: "true_false", Text: "x", Explanation: "y", Options: []string{"Verdadero", "Falso"}, CorrectIndex: -1}},
		{"short answer without keyword", rawQuestion{Type: "short_answer", Text: "x", Explanation: "y", CorrectAnswer: "   "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sanitize(tc.raw, 0, "t"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNormalizeBatch_DroppedQuestionsKeepNeighborIDs(t *testing.T) {
	raws := []rawQuestion{
		{Type: "true_false", Text: "a", Explanation: "e", Options: []string{"Verdadero", "Falso"}, CorrectIndex: 0},
		{Type: "essay", Text: "bad", Explanation: "e"},
		{Type: "true_false", Text: "c", Explanation: "e", Options: []string{"Verdadero", "Falso"}, CorrectIndex: 1},
	}

	questions, dropped := normalizeBatch(1, "Dieta", raws)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", dropped)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != 1000 || questions[1].ID != 1002 {
		t.Fatalf("ids must track raw positions, got %d and %d", questions[0].ID, questions[1].ID)
	}
}
