package scoring

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/quiz"
)

// Verdict classifies one question given one answer.
type Verdict string

const (
	VerdictCorrect    Verdict = "correct"
	VerdictIncorrect  Verdict = "incorrect"
	VerdictUnanswered Verdict = "unanswered"
)

// Options controls answer comparison.
type Options struct {
	// FoldDiacritics strips accents before comparing short answers, so
	// "glucosa" matches "Glucósa". Off by default: the shipped behavior
	// is case-insensitive trimmed equality only, even though the quiz
	// copy promises accent tolerance.
	FoldDiacritics bool
}

// Classify returns the verdict for one question. It is total and
// deterministic: every (question, answer) pair maps to exactly one
// verdict. A question whose id has no entry in answers is unanswered.
func Classify(q examgen.Question, answers map[int]quiz.Answer, opts Options) Verdict {
	ans, ok := answers[q.ID]
	if !ok {
		return VerdictUnanswered
	}

	if q.Type == examgen.TypeShortAnswer {
		if normalizeShort(ans.Text, opts) == normalizeShort(q.CorrectAnswer, opts) {
			return VerdictCorrect
		}
		return VerdictIncorrect
	}

	if ans.Option == q.CorrectIndex {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// normalizeShort prepares a short answer for comparison: trim, lowercase,
// optionally fold diacritics. There is deliberately no fuzzy or typo
// tolerance.
func normalizeShort(s string, opts Options) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if opts.FoldDiacritics {
		s = foldDiacritics(s)
	}
	return s
}

var diacriticFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

func foldDiacritics(s string) string {
	folded, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return folded
}
