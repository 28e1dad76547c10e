package examgen

import (
	"fmt"
	"strings"
)

// rawQuestion is one question exactly as the service returned it.
type rawQuestion struct {
	Type          string   `json:"type"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correctIndex"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// normalizeBatch post-processes one batch: assigns stable ids, attaches
// the category and drops questions that fail the structural checks.
// Ids are batchIndex*1000 + raw position, so dropping a question never
// shifts the ids of its neighbors.
func normalizeBatch(batchIndex int, topic string, raws []rawQuestion) ([]Question, int) {
	questions := make([]Question, 0, len(raws))
	dropped := 0

	for pos, raw := range raws {
		q, err := sanitize(raw, batchIndex*1000+pos, topic)
		if err != nil {
			dropped++
			continue
		}
		questions = append(questions, q)
	}

	return questions, dropped
}

// sanitize validates one raw question and converts it to the domain type.
func sanitize(raw rawQuestion, id int, topic string) (Question, error) {
	qtype := QuestionType(raw.Type)
	switch qtype {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer:
	default:
		return Question{}, fmt.Errorf("unknown question type %q", raw.Type)
	}

	if strings.TrimSpace(raw.Text) == "" {
		return Question{}, fmt.Errorf("empty question text")
	}
	if strings.TrimSpace(raw.Explanation) == "" {
		return Question{}, fmt.Errorf("empty explanation")
	}

	q := Question{
		ID:          id,
		Category:    topic,
		Type:        qtype,
		Text:        raw.Text,
		Explanation: raw.Explanation,
	}

	if qtype == TypeShortAnswer {
		// Options are forced empty regardless of what the service
		// returned; the answer keyword is trimmed.
		q.CorrectAnswer = strings.TrimSpace(raw.CorrectAnswer)
		if q.CorrectAnswer == "" {
			return Question{}, fmt.Errorf("short_answer without correctAnswer")
		}
		return q, nil
	}

	if len(raw.Options) == 0 {
		return Question{}, fmt.Errorf("%s without options", qtype)
	}
	if raw.CorrectIndex < 0 || raw.CorrectIndex >= len(raw.Options) {
		return Question{}, fmt.Errorf("correctIndex %d out of range [0,%d)", raw.CorrectIndex, len(raw.Options))
	}

	q.Options = raw.Options
	q.CorrectIndex = raw.CorrectIndex
	return q, nil
}
