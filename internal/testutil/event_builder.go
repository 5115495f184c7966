package testutil

import (
	"context"

	"github.com/voxkit/voxkit/core"
)

// StubEvent is a minimal core.Event for tests, platform tag included so the
// same stub serves any platform package.
type StubEvent struct {
	PlatformTag string
	TurnIntent  *core.Intent
	Caps        core.CapabilitySet
	Views       core.Renderer
	RawPayload  any
}

// Platform implements core.Event.
func (e *StubEvent) Platform() string { return e.PlatformTag }

// Intent implements core.Event.
func (e *StubEvent) Intent() *core.Intent { return e.TurnIntent }

// Capabilities implements core.Event.
func (e *StubEvent) Capabilities() core.CapabilitySet { return e.Caps }

// Renderer implements core.Event.
func (e *StubEvent) Renderer() core.Renderer { return e.Views }

// Raw implements core.Event.
func (e *StubEvent) Raw() any { return e.RawPayload }

// EventBuilder provides a fluent helper for constructing stub events.
// Example:
//
//	ev := NewEventBuilder().Intent("BookTable").Slot("time", "18:00").Display().Build()
//
// Chain only the parts you need; sensible defaults are applied.
type EventBuilder struct {
	platform string
	intent   *core.Intent
	caps     []core.Capability
	renderer core.Renderer
	raw      any
}

// NewEventBuilder creates a builder with default platform "alexa" and an
// empty renderer.
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{platform: "alexa"}
}

// Platform sets the platform tag (chainable).
func (b *EventBuilder) Platform(p string) *EventBuilder { b.platform = p; return b }

// Intent sets the resolved intent name (chainable).
func (b *EventBuilder) Intent(name string) *EventBuilder {
	if b.intent == nil {
		b.intent = &core.Intent{Slots: map[string]string{}}
	}
	b.intent.Name = name
	return b
}

// Slot adds a resolved slot value, implying an intent (chainable).
func (b *EventBuilder) Slot(name, value string) *EventBuilder {
	if b.intent == nil {
		b.intent = &core.Intent{Slots: map[string]string{}}
	}
	b.intent.Slots[name] = value
	return b
}

// Capability grants a device capability (chainable).
func (b *EventBuilder) Capability(c core.Capability) *EventBuilder {
	b.caps = append(b.caps, c)
	return b
}

// Display grants the display capability (chainable).
func (b *EventBuilder) Display() *EventBuilder { return b.Capability(core.CapabilityDisplay) }

// Video grants the video capability (chainable).
func (b *EventBuilder) Video() *EventBuilder { return b.Capability(core.CapabilityVideo) }

// Renderer sets the renderer handle (chainable).
func (b *EventBuilder) Renderer(r core.Renderer) *EventBuilder { b.renderer = r; return b }

// Raw sets the raw platform payload (chainable).
func (b *EventBuilder) Raw(raw any) *EventBuilder { b.raw = raw; return b }

// Build constructs the stub event.
func (b *EventBuilder) Build() *StubEvent {
	renderer := b.renderer
	if renderer == nil {
		renderer = FixedRenderer{}
	}
	return &StubEvent{
		PlatformTag: b.platform,
		TurnIntent:  b.intent,
		Caps:        core.NewCapabilitySet(b.caps...),
		Views:       renderer,
		RawPayload:  b.raw,
	}
}

// FixedRenderer resolves every view path to the same content map. The zero
// value fails every render with ErrNoView.
type FixedRenderer map[string]any

// ErrNoView is returned by FixedRenderer for unknown views.
var ErrNoView = core.NewContentError("", "", "no such view", nil)

// RenderPath implements core.Renderer.
func (r FixedRenderer) RenderPath(_ context.Context, view string, _ core.Event, _ map[string]any) (any, error) {
	content, ok := r[view]
	if !ok {
		return nil, ErrNoView
	}
	return content, nil
}
