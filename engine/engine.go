package engine

import (
	"context"
	"time"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/logging"
)

// Options configures an Engine instance using the functional options
// pattern.
type Options struct {
	// Registry resolves (platform, key) pairs to directive factories.
	// Defaults to an empty registry, which makes every descriptor a
	// configuration error; callers normally supply a populated one.
	Registry *Registry

	// Logger receives per-directive structured log entries. Defaults to
	// NoOpLogger so the engine has no logging dependencies.
	Logger logging.Logger
}

// Engine applies a transition's directive descriptors to a reply, in list
// order, strictly sequentially. Later directives may depend on state mutated
// by earlier ones (exclusivity checks read accumulated reply state), so the
// ordering is a guarantee, not an optimization opportunity.
//
// An Engine is immutable after construction and safe for concurrent use:
// concurrent turns share only the registry and logger, both read-only.
type Engine struct {
	registry *Registry
	logger   logging.Logger
}

// New constructs an Engine. Any unset option falls back to a safe default.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Registry: NewRegistry(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{registry: opts.Registry, logger: opts.Logger}
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Apply runs every directive descriptor of the transition against the reply,
// short-circuiting on the first failure. Reply state mutated before the
// failure is preserved, not rolled back: directives that already committed
// stay committed (best-effort accumulation, not a transaction).
//
// Resolution is scoped to reply.Platform(). Descriptors registered only for
// other platforms are skipped; descriptors registered nowhere fail the turn
// with a config error. Cancellation of ctx between directives aborts the
// remaining descriptors with ctx.Err().
func (e *Engine) Apply(ctx context.Context, reply core.Reply, event core.Event, transition *core.Transition) error {
	if transition == nil {
		return nil
	}
	platform := reply.Platform()

	for i, desc := range transition.Directives {
		if err := ctx.Err(); err != nil {
			return err
		}

		factory, ok := e.registry.Lookup(platform, desc.Key)
		if !ok {
			if e.registry.KnownKey(desc.Key) {
				// Registered for another platform: this descriptor is not
				// meant for the current reply.
				e.logger.Debug("directive skipped for platform",
					"platform", platform, "key", desc.Key, "transition_id", transition.ID)
				continue
			}
			return core.NewConfigError(platform, desc.Key, "directive registered on no platform")
		}

		directive, err := factory(desc)
		if err != nil {
			e.logger.Error("directive construction failed",
				"platform", platform, "key", desc.Key, "transition_id", transition.ID, "error", err)
			return err
		}

		start := time.Now()
		err = directive.Apply(ctx, reply, event, transition)
		dur := time.Since(start)
		if err != nil {
			e.logger.Error("directive application failed",
				"platform", platform, "key", desc.Key, "index", i,
				"duration", dur, "transition_id", transition.ID, "error", err)
			return err
		}
		e.logger.Debug("directive applied",
			"platform", platform, "key", desc.Key, "index", i,
			"duration", dur, "transition_id", transition.ID)
	}
	return nil
}
