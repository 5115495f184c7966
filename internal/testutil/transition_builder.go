package testutil

import "github.com/voxkit/voxkit/core"

// TransitionBuilder provides a fluent helper for constructing transitions.
// Example:
//
//	tr := NewTransitionBuilder().
//		View("alexa.card", "card.confirmation").
//		Key("alexa.stopAudio").
//		Build()
type TransitionBuilder struct {
	to    string
	descs []core.Descriptor
}

// NewTransitionBuilder creates an empty builder.
func NewTransitionBuilder() *TransitionBuilder { return &TransitionBuilder{} }

// To sets the target dialog state (chainable).
func (b *TransitionBuilder) To(state string) *TransitionBuilder { b.to = state; return b }

// Key appends a descriptor carrying only a key (chainable).
func (b *TransitionBuilder) Key(key string) *TransitionBuilder {
	b.descs = append(b.descs, core.Descriptor{Key: key})
	return b
}

// View appends a descriptor resolving a view path (chainable).
func (b *TransitionBuilder) View(key, view string) *TransitionBuilder {
	b.descs = append(b.descs, core.Descriptor{Key: key, View: view})
	return b
}

// Content appends a descriptor carrying pre-built content (chainable).
func (b *TransitionBuilder) Content(key string, content any) *TransitionBuilder {
	b.descs = append(b.descs, core.Descriptor{Key: key, Content: content})
	return b
}

// Params appends a descriptor carrying only secondary parameters (chainable).
func (b *TransitionBuilder) Params(key string, params map[string]any) *TransitionBuilder {
	b.descs = append(b.descs, core.Descriptor{Key: key, Params: params})
	return b
}

// Add appends a fully specified descriptor (chainable).
func (b *TransitionBuilder) Add(desc core.Descriptor) *TransitionBuilder {
	b.descs = append(b.descs, desc)
	return b
}

// Build constructs the transition with a fresh ID.
func (b *TransitionBuilder) Build() *core.Transition {
	return core.NewTransition(b.to, b.descs...)
}
