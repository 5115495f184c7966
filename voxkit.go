// Package voxkit provides a high-level façade over the directive engine and
// the built-in platform families, enabling rapid wiring of a
// directive-dispatch pipeline. Most applications interact with this package
// by:
//  1. Creating a VoxKit via New() (optionally overriding the registry or logger)
//  2. Registering any additional directives or platforms on Registry()
//  3. Applying each turn's transition to its reply via Apply()
//
// The façade delegates resolution and application to engine.Engine while
// keeping setup ergonomics concise. Defaults are safe for local development
// and testing; production deployments typically supply a structured logger
// and a view-pack renderer.
package voxkit

import (
	"context"

	"github.com/voxkit/voxkit/alexa"
	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/engine"
	"github.com/voxkit/voxkit/gassist"
	"github.com/voxkit/voxkit/logging"
)

// Options configures the VoxKit instance.
type Options struct {
	// Registry resolves directives. Defaults to DefaultRegistry() with both
	// built-in platform families registered.
	Registry *engine.Registry

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// VoxKit is the high-level façade aggregating the engine and its registry.
type VoxKit struct {
	opts   Options
	engine *engine.Engine
}

// New creates a VoxKit instance with optional overrides.
func New(optFns ...func(o *Options)) *VoxKit {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}

	eng := engine.New(func(o *engine.Options) {
		o.Registry = opts.Registry
		o.Logger = opts.Logger
	})

	return &VoxKit{opts: opts, engine: eng}
}

// DefaultRegistry returns a registry with the built-in platform families
// (alexa, gassist) registered. Collisions among built-ins are programming
// bugs and panic via MustRegister semantics.
func DefaultRegistry() *engine.Registry {
	reg := engine.NewRegistry()
	if err := alexa.Register(reg); err != nil {
		panic("voxkit: " + err.Error())
	}
	if err := gassist.Register(reg); err != nil {
		panic("voxkit: " + err.Error())
	}
	return reg
}

// Registry exposes the registration surface for additional directives or
// platforms.
func (v *VoxKit) Registry() *engine.Registry { return v.opts.Registry }

// Apply runs the transition's directives against the reply. See
// engine.Engine.Apply for the resolution and failure semantics.
func (v *VoxKit) Apply(ctx context.Context, reply core.Reply, event core.Event, transition *core.Transition) error {
	return v.engine.Apply(ctx, reply, event, transition)
}

// VerifyDescriptors eagerly checks that every descriptor resolves on at
// least one platform. Run it at startup when transitions are enumerable.
func (v *VoxKit) VerifyDescriptors(descs ...core.Descriptor) error {
	return v.opts.Registry.VerifyDescriptors(descs...)
}
