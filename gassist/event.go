package gassist

import "github.com/voxkit/voxkit/core"

// Event is the read-only turn context for a Google-Assistant request.
type Event struct {
	raw      any
	intent   *core.Intent
	caps     core.CapabilitySet
	renderer core.Renderer
}

// NewEvent builds the turn event. intent may be nil when no intent was
// resolved for the turn.
func NewEvent(raw any, intent *core.Intent, caps core.CapabilitySet, renderer core.Renderer) *Event {
	if caps == nil {
		caps = core.CapabilitySet{}
	}
	return &Event{raw: raw, intent: intent, caps: caps, renderer: renderer}
}

// Platform implements core.Event.
func (e *Event) Platform() string { return Platform }

// Intent implements core.Event.
func (e *Event) Intent() *core.Intent { return e.intent }

// Capabilities implements core.Event.
func (e *Event) Capabilities() core.CapabilitySet { return e.caps }

// Renderer implements core.Event.
func (e *Event) Renderer() core.Renderer { return e.renderer }

// Raw implements core.Event.
func (e *Event) Raw() any { return e.raw }
