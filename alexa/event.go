package alexa

import "github.com/voxkit/voxkit/core"

// Event is the read-only turn context for an Alexa request. It wraps the raw
// request envelope together with the resolved intent, the device capability
// snapshot derived from the envelope's supported interfaces, and the shared
// renderer handle.
type Event struct {
	raw      any
	intent   *core.Intent
	caps     core.CapabilitySet
	renderer core.Renderer
}

// NewEvent builds the turn event. intent may be nil for requests without a
// resolved intent (launch, session-ended).
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
