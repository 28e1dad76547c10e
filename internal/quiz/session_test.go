package quiz

import (
	"fmt"
	"testing"

	"github.com/aruizf/biogen/internal/examgen"
)

func sampleQuestions(n int) []examgen.Question {
	qs := make([]examgen.Question, 0, n)
	for i := range n {
		qs = append(qs, examgen.Question{
			ID:           i,
			Category:     "Nutrientes",
			Type:         examgen.TypeTrueFalse,
			Text:         fmt.Sprintf("Afirmación %d.", i),
			Options:      []string{"Verdadero", "Falso"},
			CorrectIndex: 0,
			Explanation:  "Porque sí.",
		})
	}
	return qs
}

func activeSession(t *testing.T, n int) *Session {
	t.Helper()
	s := NewSession()
	s.BeginGeneration()
	if err := s.Start(sampleQuestions(n)); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestStart_RequiresQuestions(t *testing.T) {
	s := NewSession()
	if err := s.Start(nil); err != ErrNoQuestions {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if s.Status() != StatusIdle {
		t.Fatalf("failed start must not change status, got %v", s.Status())
	}
}

func TestStart_SetsTimerBudget(t *testing.T) {
	s := activeSession(t, 4)
	if s.TimeLeft != 4*SecondsPerQuestion {
		t.Fatalf("expected %d seconds, got %d", 4*SecondsPerQuestion, s.TimeLeft)
	}
	if s.Status() != StatusActive {
		t.Fatalf("expected active, got %v", s.Status())
	}
	if s.Current != 0 {
		t.Fatalf("expected position 0, got %d", s.Current)
	}
}

func TestNavigation_ClampsAtBoundaries(t *testing.T) {
	s := activeSession(t, 3)

	s.Prev()
	if s.Current != 0 {
		t.Fatalf("prev at 0 must be a no-op, got %d", s.Current)
	}

	s.Next()
	s.Next()
	s.Next() // already at last
	if s.Current != 2 {
		t.Fatalf("next at last must be a no-op, got %d", s.Current)
	}
}

func TestSelectAnswer_OverwritesAndIsIdempotent(t *testing.T) {
	s := activeSession(t, 2)

	s.SelectAnswer(0, OptionAnswer(1))
	s.SelectAnswer(0, OptionAnswer(1))
	if len(s.Answers) != 1 {
		t.Fatalf("repeated identical select must not grow the map, got %d entries", len(s.Answers))
	}
	if s.Answers[0] != OptionAnswer(1) {
		t.Fatalf("unexpected answer: %+v", s.Answers[0])
	}

	s.SelectAnswer(0, OptionAnswer(0))
	if s.Answers[0] != OptionAnswer(0) {
		t.Fatal("select must overwrite the prior answer")
	}
	if _, ok := s.Answers[1]; ok {
		t.Fatal("selecting must not touch other questions")
	}
	if s.Current != 0 {
		t.Fatal("selecting must not advance the position")
	}
}

func TestFinish_AllowsUnanswered(t *testing.T) {
	s := activeSession(t, 3)
	s.Finish()
	if s.Status() != StatusReview {
		t.Fatalf("expected review, got %v", s.Status())
	}
}

func TestTick_TimeoutFinishesExactlyOnce(t *testing.T) {
	s := activeSession(t, 1)

	finishes := 0
	for range SecondsPerQuestion {
		if s.Tick() {
			finishes++
		}
	}
	if finishes != 1 {
		t.Fatalf("expected exactly one timeout finish, got %d", finishes)
	}
	if s.Status() != StatusReview {
		t.Fatalf("expected review after timeout, got %v", s.Status())
	}

	// Stale ticks after leaving Active must not mutate anything.
	before := s.TimeLeft
	if s.Tick() {
		t.Fatal("stale tick fired a second finish")
	}
	if s.TimeLeft != before {
		t.Fatal("stale tick mutated the countdown")
	}
}

func TestTick_IgnoredOutsideActive(t *testing.T) {
	s := NewSession()
	if s.Tick() {
		t.Fatal("tick in idle must be a no-op")
	}
}

func TestListView_BackRouting(t *testing.T) {
	// No answers recorded: back resumes the quiz.
	s := activeSession(t, 2)
	s.ViewList()
	if s.Status() != StatusListView {
		t.Fatalf("expected list view, got %v", s.Status())
	}
	s.BackFromList()
	if s.Status() != StatusActive {
		t.Fatalf("expected active, got %v", s.Status())
	}

	// Any answer recorded: back lands on review.
	s.SelectAnswer(0, TextAnswer("glucosa"))
	s.ViewList()
	s.BackFromList()
	if s.Status() != StatusReview {
		t.Fatalf("expected review, got %v", s.Status())
	}

	// Review and ListView are siblings: lateral moves both ways.
	s.ViewList()
	if s.Status() != StatusListView {
		t.Fatalf("expected list view from review, got %v", s.Status())
	}
}

func TestReset_ReturnsToIdle(t *testing.T) {
	s := activeSession(t, 2)
	s.SelectAnswer(0, OptionAnswer(0))
	s.Finish()

	s.Reset()
	if s.Status() != StatusIdle {
		t.Fatalf("expected idle, got %v", s.Status())
	}
	if len(s.Questions) != 0 || len(s.Answers) != 0 || s.TimeLeft != 0 {
		t.Fatal("reset must discard all session data")
	}

	// Idle is re-enterable: a new quiz can start immediately.
	s.BeginGeneration()
	if s.Status() != StatusGenerating {
		t.Fatalf("expected generating, got %v", s.Status())
	}
	if err := s.Start(sampleQuestions(1)); err != nil {
		t.Fatalf("restart: %v", err)
	}
}

func TestGenerationFailed_ReturnsToIdle(t *testing.T) {
	s := NewSession()
	s.BeginGeneration()
	s.GenerationFailed()
	if s.Status() != StatusIdle {
		t.Fatalf("expected idle after failed generation, got %v", s.Status())
	}
}

func TestSelectAnswer_IgnoredOutsideActive(t *testing.T) {
	s := activeSession(t, 1)
	s.Finish()
	s.SelectAnswer(0, OptionAnswer(1))
	if len(s.Answers) != 0 {
		t.Fatal("answers must not change during review")
	}
}
