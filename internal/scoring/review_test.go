package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/quiz"
)

func TestCompute_AllCorrect(t *testing.T) {
	questions := []examgen.Question{
		mcQuestion(0, 1), mcQuestion(1, 0), mcQuestion(2, 3), mcQuestion(3, 2),
	}
	answers := map[int]quiz.Answer{
		0: quiz.OptionAnswer(1),
		1: quiz.OptionAnswer(0),
		2: quiz.OptionAnswer(3),
		3: quiz.OptionAnswer(2),
	}

	stats := Compute(questions, answers, Options{})
	assert.Equal(t, 100, stats.ScorePercent)
	assert.Equal(t, 0, stats.Incorrect)
	assert.Equal(t, 0, stats.Unanswered)
}

func TestCompute_MixedVerdicts(t *testing.T) {
	// 10 questions: 3 correct, 2 incorrect, 5 unanswered.
	questions := make([]examgen.Question, 0, 10)
	for i := range 10 {
		questions = append(questions, mcQuestion(i, 0))
	}
	answers := map[int]quiz.Answer{
		0: quiz.OptionAnswer(0),
		1: quiz.OptionAnswer(0),
		2: quiz.OptionAnswer(0),
		3: quiz.OptionAnswer(1),
		4: quiz.OptionAnswer(2),
	}

	stats := Compute(questions, answers, Options{})
	assert.Equal(t, 3, stats.Correct)
	assert.Equal(t, 2, stats.Incorrect)
	assert.Equal(t, 5, stats.Unanswered)
	assert.Equal(t, 30, stats.ScorePercent)
}

func TestCompute_EmptyExam(t *testing.T) {
	stats := Compute(nil, nil, Options{})
	assert.Equal(t, 0, stats.ScorePercent)
	assert.Equal(t, 0, stats.Total)
}

func TestCompute_RoundsPercent(t *testing.T) {
	questions := []examgen.Question{mcQuestion(0, 0), mcQuestion(1, 0), mcQuestion(2, 0)}
	answers := map[int]quiz.Answer{0: quiz.OptionAnswer(0)}

	stats := Compute(questions, answers, Options{})
	assert.Equal(t, 33, stats.ScorePercent) // round(33.33)
}

func TestBuildReview_MaterializesDisplayStrings(t *testing.T) {
	questions := []examgen.Question{
		mcQuestion(0, 2),
		shortQuestion(1, "Glucosa"),
		mcQuestion(2, 1),
	}
	answers := map[int]quiz.Answer{
		0: quiz.OptionAnswer(0),           // incorrect
		1: quiz.TextAnswer("  glucosa  "), // correct after trim+lowercase
	}

	items := BuildReview(questions, answers, Options{})
	require.Len(t, items, 3)

	assert.Equal(t, VerdictIncorrect, items[0].Verdict)
	assert.Equal(t, "a", items[0].UserAnswer)
	assert.Equal(t, 0, items[0].UserOption)
	assert.Equal(t, "c", items[0].CorrectAnswer)

	assert.Equal(t, VerdictCorrect, items[1].Verdict)
	assert.Equal(t, "  glucosa  ", items[1].UserAnswer, "review shows the literal typed answer")
	assert.Equal(t, "Glucosa", items[1].CorrectAnswer)

	assert.Equal(t, VerdictUnanswered, items[2].Verdict)
	assert.False(t, items[2].Answered)
	assert.Equal(t, "", items[2].UserAnswer)
	assert.Equal(t, -1, items[2].UserOption)
	assert.Equal(t, "b", items[2].CorrectAnswer)
}
