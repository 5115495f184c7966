package core

import "github.com/google/uuid"

// Transition is the dialog engine's decision output for one turn. It is
// produced once per turn, read-only from the directive engine's perspective,
// and its descriptor list is consumed exactly once, in order.
type Transition struct {
	// ID correlates the transition with logs and the originating turn.
	ID string `json:"id"`

	// To names the dialog state this transition enters. Informational for
	// the directive engine; kept for logging and platform directives that
	// want to stamp a token.
	To string `json:"to,omitempty"`

	// Directives is the ordered list of directive descriptors to apply.
	Directives []Descriptor `json:"directives,omitempty"`

	// Metadata carries optional dialog-engine annotations.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewTransition creates a transition with a fresh ID and the given
// descriptors in application order.
func NewTransition(to string, directives ...Descriptor) *Transition {
	return &Transition{
		ID:         NewID(),
		To:         to,
		Directives: directives,
	}
}

// NewID generates a unique identifier for transitions and turns.
func NewID() string { return uuid.NewString() }
