package scoring

import (
	"math"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/quiz"
)

// Stats aggregates the verdicts for a whole exam.
type Stats struct {
	Total      int
	Correct    int
	Incorrect  int
	Unanswered int

	// ScorePercent is round(100 * correct / total), 0 for an empty exam.
	ScorePercent int
}

// Compute derives the aggregate stats from the final question list and
// answer map.
func Compute(questions []examgen.Question, answers map[int]quiz.Answer, opts Options) Stats {
	stats := Stats{Total: len(questions)}

	for _, q := range questions {
		switch Classify(q, answers, opts) {
		case VerdictCorrect:
			stats.Correct++
		case VerdictUnanswered:
			stats.Unanswered++
		}
	}
	stats.Incorrect = stats.Total - stats.Correct - stats.Unanswered

	if stats.Total > 0 {
		stats.ScorePercent = int(math.Round(100 * float64(stats.Correct) / float64(stats.Total)))
	}

	return stats
}

// ReviewItem is one question's review line: the verdict plus display
// strings for the student's answer and the correct one.
type ReviewItem struct {
	Question examgen.Question
	Verdict  Verdict

	// Answered reports whether an answer was recorded.
	Answered bool

	// UserAnswer is the literal recorded answer for display: the chosen
	// option's text, or the typed short answer. Empty when unanswered.
	UserAnswer string

	// UserOption is the chosen option index, -1 when unanswered or when
	// the question is a short answer.
	UserOption int

	// CorrectAnswer is the correct option's text or the expected keyword.
	CorrectAnswer string
}

// BuildReview materializes the per-question review for the whole exam.
// It is a read-only projection over the session, recomputed on demand.
func BuildReview(questions []examgen.Question, answers map[int]quiz.Answer, opts Options) []ReviewItem {
	items := make([]ReviewItem, 0, len(questions))

	for _, q := range questions {
		item := ReviewItem{
			Question:   q,
			Verdict:    Classify(q, answers, opts),
			UserOption: -1,
		}

		if ans, ok := answers[q.ID]; ok {
			item.Answered = true
			if q.Type == examgen.TypeShortAnswer {
				item.UserAnswer = ans.Text
			} else if ans.Option >= 0 && ans.Option < len(q.Options) {
				item.UserAnswer = q.Options[ans.Option]
				item.UserOption = ans.Option
			}
		}

		if q.Type == examgen.TypeShortAnswer {
			item.CorrectAnswer = q.CorrectAnswer
		} else if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			item.CorrectAnswer = q.Options[q.CorrectIndex]
		}

		items = append(items, item)
	}

	return items
}
