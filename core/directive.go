package core

import "context"

// Directive is a polymorphic unit of work applied to the outgoing reply of a
// single turn. Implementations mutate the Reply (set a card, append a
// directive entry) based on the immutable Event and Transition, or fail with
// a DirectiveError.
//
// Apply must be safe to abandon via ctx cancellation: the only blocking
// boundary is the Renderer call, and the Reply mutation happens after that
// call returns, atomically with respect to the directive's own logic.
type Directive interface {
	Apply(ctx context.Context, reply Reply, event Event, transition *Transition) error
}

// DirectiveFunc adapts a plain function to the Directive interface. It is
// the closure-factory shape: a constructor closes over its descriptor
// arguments and returns the apply operation directly.
type DirectiveFunc func(ctx context.Context, reply Reply, event Event, transition *Transition) error

// Apply invokes the wrapped function.
func (f DirectiveFunc) Apply(ctx context.Context, reply Reply, event Event, transition *Transition) error {
	return f(ctx, reply, event, transition)
}

// Factory builds a Directive from a descriptor's constructor arguments. It
// may return either a stateful object with an Apply method or a
// DirectiveFunc; the registry treats both uniformly. A Factory should fail
// only for arguments that can never produce a valid directive; per-turn
// preconditions belong in Apply.
type Factory func(desc Descriptor) (Directive, error)

// Descriptor identifies which directive to run and with what constructor
// arguments. Descriptors are produced by the dialog engine as part of a
// Transition and are immutable once created.
//
// Exactly one of View / Content is typically set: View names a logical view
// resolved through the Renderer, Content carries an already-built payload.
// Params holds secondary arguments (a display token, a slot map, playback
// options) whose meaning is directive-specific.
type Descriptor struct {
	// Key is the logical directive key, e.g. "alexa.card". The registry
	// resolves (reply platform, key) to a concrete implementation.
	Key string `json:"key"`

	// View is an optional view path resolved through the Renderer.
	View string `json:"view,omitempty"`

	// Content is an optional pre-built content object used instead of a view.
	Content any `json:"content,omitempty"`

	// Params carries optional secondary constructor arguments.
	Params map[string]any `json:"params,omitempty"`
}

// Param returns the named secondary argument and whether it was present.
func (d Descriptor) Param(name string) (any, bool) {
	if d.Params == nil {
		return nil, false
	}
	v, ok := d.Params[name]
	return v, ok
}

// StringParam returns the named secondary argument as a string. Missing or
// non-string values yield "".
func (d Descriptor) StringParam(name string) string {
	if v, ok := d.Param(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
