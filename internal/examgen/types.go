package examgen

// QuestionType discriminates how a question is answered and which of the
// answer fields is meaningful.
type QuestionType string

const (
	// TypeMultipleChoice has 4 options and a correct index.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeTrueFalse has the two options ["Verdadero", "Falso"] and a
	// correct index.
	TypeTrueFalse QuestionType = "true_false"

	// TypeShortAnswer expects a single keyword typed by the student. It
	// never carries options; CorrectAnswer holds the expected keyword.
	TypeShortAnswer QuestionType = "short_answer"
)

// Question is one generated exam question. Immutable once created.
//
// Exactly one of CorrectIndex/CorrectAnswer is meaningful, determined by
// Type: option-bearing types use CorrectIndex, short_answer uses
// CorrectAnswer (trimmed of surrounding whitespace).
type Question struct {
	// ID is unique within one exam. Assigned as
	// batchIndex*1000 + position, which keeps ids unique across the four
	// sub-topic batches for batches under 1000 questions.
	ID int

	// Category is the sub-topic label the question was generated for.
	Category string

	Type QuestionType

	// Text is the question prompt.
	Text string

	// Options is non-empty only for multiple_choice and true_false.
	Options []string

	// CorrectIndex is in [0, len(Options)) for option-bearing types.
	CorrectIndex int

	// CorrectAnswer is the expected keyword for short_answer.
	CorrectAnswer string

	// Explanation is a brief rationale, always present.
	Explanation string
}

// HasOptions reports whether the question is answered by picking an
// option rather than typing text.
func (q Question) HasOptions() bool {
	return q.Type == TypeMultipleChoice || q.Type == TypeTrueFalse
}
