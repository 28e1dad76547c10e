package quiz

import (
	"errors"

	"github.com/aruizf/biogen/internal/examgen"
)

// SecondsPerQuestion is the exam time budget: one minute per question.
const SecondsPerQuestion = 60

// Status is the session state. Idle is initial and re-enterable (retry);
// Review and ListView are siblings with lateral transitions.
type Status int

const (
	StatusIdle Status = iota
	StatusGenerating
	StatusActive
	StatusReview
	StatusListView
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusGenerating:
		return "generating"
	case StatusActive:
		return "active"
	case StatusReview:
		return "review"
	case StatusListView:
		return "list"
	}
	return "unknown"
}

// Answer is one recorded answer: a selected option index for
// option-bearing questions, or free text for short answers. IsText
// discriminates which field is meaningful.
type Answer struct {
	Option int
	Text   string
	IsText bool
}

// OptionAnswer records a selected option index.
func OptionAnswer(index int) Answer {
	return Answer{Option: index}
}

// TextAnswer records a typed free-text answer.
func TextAnswer(text string) Answer {
	return Answer{Text: text, IsText: true}
}

// ErrNoQuestions is returned by Start when generation produced nothing.
var ErrNoQuestions = errors.New("no questions to start a quiz with")

// Session is the mutable quiz session. It is created empty, populated in
// one step by Start, mutated by the transition methods while active and
// discarded by Reset. All mutation happens on the UI goroutine; there is
// no locking.
type Session struct {
	// Questions is fixed after Start. Insertion order is presentation
	// order and answer-key order.
	Questions []examgen.Question

	// Current is the presented question index, always in
	// [0, len(Questions)) while questions exist.
	Current int

	// Answers maps question id to the recorded answer. Absence of a key
	// means unanswered.
	Answers map[int]Answer

	// TimeLeft is the countdown in seconds, decremented by Tick.
	TimeLeft int

	status Status
}

// NewSession creates an empty Idle session.
func NewSession() *Session {
	return &Session{
		Answers: make(map[int]Answer),
		status:  StatusIdle,
	}
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// BeginGeneration marks the session as waiting for questions. Allowed
// from Idle (including re-entry after a failed attempt).
func (s *Session) BeginGeneration() {
	if s.status != StatusIdle {
		return
	}
	s.status = StatusGenerating
}

// GenerationFailed returns the session to Idle so the user can retry.
func (s *Session) GenerationFailed() {
	if s.status != StatusGenerating {
		return
	}
	s.status = StatusIdle
}

// Start populates the session with generated questions and activates it.
// The timer budget is one minute per question. Requires a non-empty list.
func (s *Session) Start(questions []examgen.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	s.Questions = questions
	s.Current = 0
	s.Answers = make(map[int]Answer)
	s.TimeLeft = len(questions) * SecondsPerQuestion
	s.status = StatusActive
	return nil
}

// CurrentQuestion returns the question at the current position.
func (s *Session) CurrentQuestion() (examgen.Question, bool) {
	if len(s.Questions) == 0 {
		return examgen.Question{}, false
	}
	return s.Questions[s.Current], true
}

// SelectAnswer records an answer for the given question id, overwriting
// any prior answer. It never advances the position and has no effect on
// other questions. Ignored outside the Active state.
func (s *Session) SelectAnswer(questionID int, ans Answer) {
	if s.status != StatusActive {
		return
	}
	s.Answers[questionID] = ans
}

// Next advances the position by one, clamped to the last question.
// No-op at the boundary.
func (s *Session) Next() {
	if s.status != StatusActive {
		return
	}
	if s.Current < len(s.Questions)-1 {
		s.Current++
	}
}

// Prev moves the position back by one, clamped to zero. No-op at the
// boundary.
func (s *Session) Prev() {
	if s.status != StatusActive {
		return
	}
	if s.Current > 0 {
		s.Current--
	}
}

// Finish moves to Review. Unanswered questions are permitted; they score
// as unanswered. Allowed from Active or ListView, idempotent otherwise.
func (s *Session) Finish() {
	if s.status != StatusActive && s.status != StatusListView {
		return
	}
	s.status = StatusReview
}

// Tick consumes one clock second. It only acts while Active, so a stale
// tick delivered after leaving the state can never mutate the session.
// When the countdown reaches zero it finishes the quiz and reports true;
// subsequent ticks are no-ops, so the automatic finish fires exactly once.
func (s *Session) Tick() bool {
	if s.status != StatusActive {
		return false
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	if s.TimeLeft == 0 {
		s.Finish()
		return true
	}
	return false
}

// ViewList opens the full exam listing from Active or Review.
func (s *Session) ViewList() {
	if s.status != StatusActive && s.status != StatusReview {
		return
	}
	s.status = StatusListView
}

// BackFromList leaves the listing. If any answers exist the score is
// meaningful, so the session returns to Review; otherwise it resumes the
// Active quiz.
func (s *Session) BackFromList() {
	if s.status != StatusListView {
		return
	}
	if len(s.Answers) > 0 {
		s.status = StatusReview
	} else {
		s.status = StatusActive
	}
}

// Reset discards the session for a fresh attempt.
func (s *Session) Reset() {
	s.Questions = nil
	s.Current = 0
	s.Answers = make(map[int]Answer)
	s.TimeLeft = 0
	s.status = StatusIdle
}
