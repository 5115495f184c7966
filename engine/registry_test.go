package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxkit/voxkit/core"
)

func noopFactory(core.Descriptor) (core.Directive, error) {
	return core.DirectiveFunc(func(context.Context, core.Reply, core.Event, *core.Transition) error {
		return nil
	}), nil
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register("alexa", "alexa.card", noopFactory))

	f, ok := reg.Lookup("alexa", "alexa.card")
	assert.True(t, ok)
	assert.NotNil(t, f)

	_, ok = reg.Lookup("gassist", "alexa.card")
	assert.False(t, ok)
}

func TestRegistry_CollisionIsConfigError(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("alexa", "alexa.card", noopFactory))

	err := reg.Register("alexa", "alexa.card", noopFactory)
	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeConfig))

	// Same key on another platform is not a collision.
	assert.NoError(t, reg.Register("gassist", "alexa.card", noopFactory))
}

func TestRegistry_RejectsInvalidRegistration(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.Register("", "key", noopFactory))
	assert.Error(t, reg.Register("alexa", "", noopFactory))
	assert.Error(t, reg.Register("alexa", "key", nil))
}

func TestRegistry_MustRegisterPanicsOnCollision(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("alexa", "alexa.card", noopFactory)

	assert.Panics(t, func() { reg.MustRegister("alexa", "alexa.card", noopFactory) })
}

func TestRegistry_KnownKey(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("alexa", "alexa.hint", noopFactory))

	assert.True(t, reg.KnownKey("alexa.hint"))
	assert.False(t, reg.KnownKey("alexa.card"))
}

func TestRegistry_VerifyDescriptors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("alexa", "alexa.hint", noopFactory))

	assert.NoError(t, reg.VerifyDescriptors(core.Descriptor{Key: "alexa.hint"}))

	err := reg.VerifyDescriptors(
		core.Descriptor{Key: "alexa.hint"},
		core.Descriptor{Key: "alexa.unknown"},
	)
	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeConfig))
}
