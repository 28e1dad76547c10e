package screen

import "github.com/aruizf/biogen/internal/quiz"

// Navigation messages emitted by screens and resolved by the app model.
// Screens never construct their sibling screens directly; they announce
// where the session should go and the app model builds the target.

// ShowExamMsg asks for the active exam screen.
type ShowExamMsg struct {
	Session   *quiz.Session
	SessionID string
	Notice    string
}

// ShowResultsMsg asks for the results screen.
type ShowResultsMsg struct {
	Session   *quiz.Session
	SessionID string
}

// ShowListingMsg asks for the printable list screen.
type ShowListingMsg struct {
	Session   *quiz.Session
	SessionID string
}

// ShowHomeMsg asks to unwind back to the landing screen.
type ShowHomeMsg struct{}
