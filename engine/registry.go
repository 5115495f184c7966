package engine

import (
	"fmt"

	"github.com/voxkit/voxkit/core"
)

// Registry is the directive registration surface: a mapping keyed by
// (platform tag, directive key) to a factory. It is the sole extension point
// for adding new directives or new platforms.
//
// Registration happens at startup; after that the registry is read-only and
// safe for concurrent use by any number of turns.
type Registry struct {
	factories map[string]map[string]core.Factory // platform -> key -> factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]map[string]core.Factory{}}
}

// Register binds a factory to (platform, key). Registering the same pair
// twice is a configuration error: collisions within one platform are
// rejected at registration time rather than resolved by overwrite.
func (r *Registry) Register(platform, key string, f core.Factory) error {
	if platform == "" || key == "" {
		return core.NewConfigError(platform, key, "platform and key must be non-empty")
	}
	if f == nil {
		return core.NewConfigError(platform, key, "nil factory")
	}
	byKey, ok := r.factories[platform]
	if !ok {
		byKey = map[string]core.Factory{}
		r.factories[platform] = byKey
	}
	if _, exists := byKey[key]; exists {
		return core.NewConfigError(platform, key, "directive already registered")
	}
	byKey[key] = f
	return nil
}

// MustRegister is Register but panics on error. Intended for package-level
// wiring where a collision is a programming mistake.
func (r *Registry) MustRegister(platform, key string, f core.Factory) {
	if err := r.Register(platform, key, f); err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
}

// Lookup returns the factory registered for (platform, key), if any.
func (r *Registry) Lookup(platform, key string) (core.Factory, bool) {
	byKey, ok := r.factories[platform]
	if !ok {
		return nil, false
	}
	f, ok := byKey[key]
	return f, ok
}

// KnownKey reports whether the key is registered for at least one platform.
func (r *Registry) KnownKey(key string) bool {
	for _, byKey := range r.factories {
		if _, ok := byKey[key]; ok {
			return true
		}
	}
	return false
}

// Platforms returns the platform tags with at least one registration.
func (r *Registry) Platforms() []string {
	out := make([]string, 0, len(r.factories))
	for p := range r.factories {
		out = append(out, p)
	}
	return out
}

// VerifyDescriptors is the eager configuration check: it fails if any
// descriptor's key is registered on no platform at all. Callers that can
// enumerate their transitions at startup should run this once so
// misconfiguration surfaces before the first live turn.
func (r *Registry) VerifyDescriptors(descs ...core.Descriptor) error {
	for _, d := range descs {
		if !r.KnownKey(d.Key) {
			return core.NewConfigError("", d.Key, "directive registered on no platform")
		}
	}
	return nil
}
