package core

// Capability identifies a device feature a directive may depend on. Platform
// packages translate their raw capability payloads into this neutral set so
// capability gates can be written once per directive.
type Capability string

const (
	// CapabilityDisplay indicates the device can render visual templates.
	CapabilityDisplay Capability = "display"
	// CapabilityAudio indicates the device supports audio playback.
	CapabilityAudio Capability = "audio"
	// CapabilityVideo indicates the device supports video playback.
	CapabilityVideo Capability = "video"
)

// CapabilitySet is the device/platform capability snapshot for one turn.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a snapshot from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether the device supports the capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Intent is the resolved intent of the current turn: a name plus the slot
// values extracted by the (external) understanding layer. A missing slot
// value is represented by absence from the map, not by an empty string.
type Intent struct {
	Name  string            `json:"name"`
	Slots map[string]string `json:"slots,omitempty"`
}

// Event is the read-only context of the current turn. It is immutable for
// the duration of the turn: directives read it many times and never mutate
// it. Each platform package provides its own concrete Event carrying the raw
// request payload; the engine and generic directives use only this interface.
type Event interface {
	// Platform returns the platform tag of the originating request.
	Platform() string

	// Intent returns the resolved intent, or nil when resolution has not
	// happened (e.g. a launch request).
	Intent() *Intent

	// Capabilities returns the device capability snapshot for this turn.
	Capabilities() CapabilitySet

	// Renderer returns the shared, concurrency-safe view renderer.
	Renderer() Renderer

	// Raw returns the original platform payload for platform-specific
	// directive implementations. Generic code must not inspect it.
	Raw() any
}
