package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/quiz"
	"github.com/aruizf/biogen/internal/screen"
)

func finishedSession(t *testing.T) *quiz.Session {
	t.Helper()

	questions := []examgen.Question{
		{ID: 0, Type: examgen.TypeMultipleChoice, Text: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 1, Type: examgen.TypeShortAnswer, Text: "q2", CorrectAnswer: "Glucosa"},
	}

	s := quiz.NewSession()
	s.BeginGeneration()
	if err := s.Start(questions); err != nil {
		t.Fatalf("start session: %v", err)
	}
	s.SelectAnswer(0, quiz.OptionAnswer(0))
	s.SelectAnswer(1, quiz.TextAnswer("glucosa"))
	s.Finish()
	return s
}

func TestNew_ComputesScore(t *testing.T) {
	r := New(finishedSession(t), "test")

	if r.stats.ScorePercent != 100 {
		t.Errorf("expected 100%%, got %d", r.stats.ScorePercent)
	}
	if len(r.review) != 2 {
		t.Errorf("expected 2 review items, got %d", len(r.review))
	}
}

func TestScoreMessageTiers(t *testing.T) {
	cases := []struct {
		percent int
		want    string
	}{
		{100, "¡Excelente trabajo! Dominas el tema."},
		{90, "¡Excelente trabajo! Dominas el tema."},
		{89, "¡Muy bien! Tienes buenos conocimientos."},
		{70, "¡Muy bien! Tienes buenos conocimientos."},
		{69, "Aprobado, pero conviene repasar algunos conceptos."},
		{50, "Aprobado, pero conviene repasar algunos conceptos."},
		{49, "Necesitas estudiar más este tema."},
		{0, "Necesitas estudiar más este tema."},
	}

	for _, c := range cases {
		if got := scoreMessage(c.percent); got != c.want {
			t.Errorf("scoreMessage(%d) = %q, want %q", c.percent, got, c.want)
		}
	}
}

func TestReviewToggle(t *testing.T) {
	r := New(finishedSession(t), "test")

	r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if !r.showReview {
		t.Fatal("expected review shown after r")
	}
	r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if r.showReview {
		t.Fatal("expected review hidden after second r")
	}
}

func TestNewExamResetsSession(t *testing.T) {
	s := finishedSession(t)
	r := New(s, "test")

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})

	if s.Status() != quiz.StatusIdle {
		t.Fatalf("expected Idle after reset, got %v", s.Status())
	}
	if len(s.Questions) != 0 {
		t.Error("expected questions cleared")
	}
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(screen.ShowHomeMsg); !ok {
		t.Error("expected ShowHomeMsg after reset")
	}
}

func TestListingFromReview(t *testing.T) {
	s := finishedSession(t)
	r := New(s, "test")

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})

	if s.Status() != quiz.StatusListView {
		t.Fatalf("expected ListView, got %v", s.Status())
	}
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(screen.ShowListingMsg); !ok {
		t.Error("expected ShowListingMsg")
	}
}
