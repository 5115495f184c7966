package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/testutil"
)

// fakeReply records applied directive keys so ordering and short-circuit
// behavior can be asserted.
type fakeReply struct {
	platform string
	applied  []string
}

func (r *fakeReply) Platform() string                { return r.platform }
func (r *fakeReply) HasDirective(core.Category) bool { return false }

// recordFactory returns a factory whose directive appends the key to the
// fake reply.
func recordFactory(key string) core.Factory {
	return func(core.Descriptor) (core.Directive, error) {
		return core.DirectiveFunc(func(_ context.Context, reply core.Reply, _ core.Event, _ *core.Transition) error {
			reply.(*fakeReply).applied = append(reply.(*fakeReply).applied, key)
			return nil
		}), nil
	}
}

// failFactory returns a factory whose directive always fails.
func failFactory(err error) core.Factory {
	return func(core.Descriptor) (core.Directive, error) {
		return core.DirectiveFunc(func(context.Context, core.Reply, core.Event, *core.Transition) error {
			return err
		}), nil
	}
}

func newTestEngine(t *testing.T, wire func(reg *Registry)) *Engine {
	t.Helper()
	reg := NewRegistry()
	wire(reg)
	return New(func(o *Options) { o.Registry = reg })
}

func TestEngine_AppliesInDescriptorOrder(t *testing.T) {
	eng := newTestEngine(t, func(reg *Registry) {
		require.NoError(t, reg.Register("alexa", "a", recordFactory("a")))
		require.NoError(t, reg.Register("alexa", "b", recordFactory("b")))
		require.NoError(t, reg.Register("alexa", "c", recordFactory("c")))
	})

	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()
	tr := testutil.NewTransitionBuilder().Key("b").Key("c").Key("a").Build()

	require.NoError(t, eng.Apply(context.Background(), reply, event, tr))
	assert.Equal(t, []string{"b", "c", "a"}, reply.applied)
}

func TestEngine_SkipsKeysRegisteredForOtherPlatforms(t *testing.T) {
	eng := newTestEngine(t, func(reg *Registry) {
		require.NoError(t, reg.Register("alexa", "a", recordFactory("a")))
		require.NoError(t, reg.Register("gassist", "g", recordFactory("g")))
	})

	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()
	tr := testutil.NewTransitionBuilder().Key("a").Key("g").Build()

	require.NoError(t, eng.Apply(context.Background(), reply, event, tr))
	assert.Equal(t, []string{"a"}, reply.applied)
}

func TestEngine_UnknownEverywhereIsConfigError(t *testing.T) {
	eng := newTestEngine(t, func(reg *Registry) {
		require.NoError(t, reg.Register("alexa", "a", recordFactory("a")))
	})

	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()
	tr := testutil.NewTransitionBuilder().Key("a").Key("nowhere").Build()

	err := eng.Apply(context.Background(), reply, event, tr)
	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeConfig))
	// The directive before the misconfigured one stays committed.
	assert.Equal(t, []string{"a"}, reply.applied)
}

func TestEngine_ShortCircuitsOnFirstFailure(t *testing.T) {
	boom := core.NewUsageError("alexa", "b", "boom")
	eng := newTestEngine(t, func(reg *Registry) {
		require.NoError(t, reg.Register("alexa", "a", recordFactory("a")))
		require.NoError(t, reg.Register("alexa", "b", failFactory(boom)))
		require.NoError(t, reg.Register("alexa", "c", recordFactory("c")))
	})

	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()
	tr := testutil.NewTransitionBuilder().Key("a").Key("b").Key("c").Build()

	err := eng.Apply(context.Background(), reply, event, tr)
	require.ErrorIs(t, err, boom)
	// Best-effort accumulation: a stays, c never ran.
	assert.Equal(t, []string{"a"}, reply.applied)
}

func TestEngine_FactoryErrorAbortsTurn(t *testing.T) {
	usage := core.NewUsageError("alexa", "bad", "missing url")
	eng := newTestEngine(t, func(reg *Registry) {
		require.NoError(t, reg.Register("alexa", "bad", func(core.Descriptor) (core.Directive, error) {
			return nil, usage
		}))
	})

	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()
	tr := testutil.NewTransitionBuilder().Key("bad").Build()

	err := eng.Apply(context.Background(), reply, event, tr)
	assert.ErrorIs(t, err, usage)
}

func TestEngine_ContextCancellationAborts(t *testing.T) {
	eng := newTestEngine(t, func(reg *Registry) {
		require.NoError(t, reg.Register("alexa", "a", recordFactory("a")))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()
	tr := testutil.NewTransitionBuilder().Key("a").Build()

	err := eng.Apply(ctx, reply, event, tr)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reply.applied)
}

func TestEngine_NilTransitionIsNoOp(t *testing.T) {
	eng := New()
	reply := &fakeReply{platform: "alexa"}
	event := testutil.NewEventBuilder().Build()

	assert.NoError(t, eng.Apply(context.Background(), reply, event, nil))
}
