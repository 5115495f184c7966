package alexa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/testutil"
)

func TestDelegate_BuildsUpdatedIntent(t *testing.T) {
	event := testutil.NewEventBuilder().Intent("BookTable").Build()
	reply := NewReply()
	desc := core.Descriptor{
		Key: KeyDelegate,
		Params: map[string]any{
			"slots": map[string]any{
				"date": nil,     // request from user
				"time": "18:00", // literal value, passed through as-is
			},
		},
	}

	require.NoError(t, apply(t, NewDelegate, desc, reply, event))

	require.Len(t, reply.Directives, 1)
	entry, ok := reply.Directives[0].(DelegateEntry)
	require.True(t, ok)
	assert.Equal(t, "Dialog.Delegate", entry.Type)

	updated := entry.UpdatedIntent
	require.NotNil(t, updated)
	assert.Equal(t, "BookTable", updated.Name)
	assert.Equal(t, "NONE", updated.ConfirmationStatus)

	date := updated.Slots["date"]
	assert.Equal(t, "date", date.Name)
	assert.Empty(t, date.Value)
	assert.Equal(t, "NONE", date.ConfirmationStatus)

	tm := updated.Slots["time"]
	assert.Equal(t, "time", tm.Name)
	assert.Equal(t, "18:00", tm.Value)
	assert.Equal(t, "NONE", tm.ConfirmationStatus)
}

func TestDelegate_NoSlots(t *testing.T) {
	event := testutil.NewEventBuilder().Intent("BookTable").Build()
	reply := NewReply()

	require.NoError(t, apply(t, NewDelegate, core.Descriptor{Key: KeyDelegate}, reply, event))

	require.Len(t, reply.Directives, 1)
	entry := reply.Directives[0].(DelegateEntry)
	assert.Equal(t, "BookTable", entry.UpdatedIntent.Name)
	assert.Nil(t, entry.UpdatedIntent.Slots)
}

func TestDelegate_MissingIntentIsUsageError(t *testing.T) {
	event := testutil.NewEventBuilder().Build() // no resolved intent
	reply := NewReply()

	err := apply(t, NewDelegate, core.Descriptor{Key: KeyDelegate}, reply, event)

	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeUsage))
	assert.Empty(t, reply.Directives)
}

func TestDelegate_MalformedSlotsParam(t *testing.T) {
	_, err := NewDelegate(core.Descriptor{
		Key:    KeyDelegate,
		Params: map[string]any{"slots": "not-a-map"},
	})

	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeUsage))
}

func TestDelegate_NoExclusivityRule(t *testing.T) {
	// Observed-permissive behavior: a second delegate appends instead of
	// failing.
	event := testutil.NewEventBuilder().Intent("BookTable").Build()
	reply := NewReply()

	require.NoError(t, apply(t, NewDelegate, core.Descriptor{Key: KeyDelegate}, reply, event))
	require.NoError(t, apply(t, NewDelegate, core.Descriptor{Key: KeyDelegate}, reply, event))

	assert.Len(t, reply.Directives, 2)
}
