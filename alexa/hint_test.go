package alexa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/testutil"
)

func TestHint_AppendsRenderedText(t *testing.T) {
	renderer := testutil.FixedRenderer{"hint.next": "Try asking for the menu"}
	event := testutil.NewEventBuilder().Renderer(renderer).Build()

	reply := NewReply()
	err := apply(t, NewHint, core.Descriptor{Key: KeyHint, View: "hint.next"}, reply, event)

	require.NoError(t, err)
	require.Len(t, reply.Directives, 1)
	entry := reply.Directives[0].(HintEntry)
	assert.Equal(t, "Hint", entry.Type)
	assert.Equal(t, "PlainText", entry.Hint.Type)
	assert.Equal(t, "Try asking for the menu", entry.Hint.Text)
}

func TestHint_RequiresView(t *testing.T) {
	_, err := NewHint(core.Descriptor{Key: KeyHint})

	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeUsage))
}

func TestHint_NonTextContentFails(t *testing.T) {
	renderer := testutil.FixedRenderer{"hint.next": map[string]any{"text": "nope"}}
	event := testutil.NewEventBuilder().Renderer(renderer).Build()

	reply := NewReply()
	err := apply(t, NewHint, core.Descriptor{Key: KeyHint, View: "hint.next"}, reply, event)

	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeContent))
	assert.Empty(t, reply.Directives)
}

func TestHint_SecondHintIsExclusivityError(t *testing.T) {
	renderer := testutil.FixedRenderer{"hint.next": "hint"}
	event := testutil.NewEventBuilder().Renderer(renderer).Build()

	reply := NewReply()
	require.NoError(t, apply(t, NewHint, core.Descriptor{Key: KeyHint, View: "hint.next"}, reply, event))

	err := apply(t, NewHint, core.Descriptor{Key: KeyHint, View: "hint.next"}, reply, event)
	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.ErrCodeExclusivity))
	assert.Len(t, reply.Directives, 1)
}
