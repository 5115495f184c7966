package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/testutil"
)

func TestStatic_LiteralAndFuncViews(t *testing.T) {
	r := NewStatic().
		AddView("hint.next", "Try the menu").
		AddViewFunc("card.greeting", func(_ context.Context, event core.Event, _ map[string]any) (any, error) {
			return map[string]any{"type": "Simple", "title": "Hello " + event.Intent().Name}, nil
		})

	event := testutil.NewEventBuilder().Intent("Welcome").Build()

	content, err := r.RenderPath(context.Background(), "hint.next", event, nil)
	require.NoError(t, err)
	assert.Equal(t, "Try the menu", content)

	content, err = r.RenderPath(context.Background(), "card.greeting", event, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello Welcome", content.(map[string]any)["title"])
}

func TestStatic_MissingView(t *testing.T) {
	r := NewStatic()

	_, err := r.RenderPath(context.Background(), "nope", testutil.NewEventBuilder().Build(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

const packYAML = `
views:
  hint.next:
    text: "Try saying: book a table for {{.Slots.partySize}}"
  card.confirmation:
    object:
      type: Simple
      title: Booking
      content: "Table for {{.Slots.partySize}} at {{.Slots.time}}"
  chips.static:
    object:
      titles:
        - "Book it"
        - "Not now"
`

func TestPack_TextView(t *testing.T) {
	pack, err := ParsePack([]byte(packYAML))
	require.NoError(t, err)

	event := testutil.NewEventBuilder().
		Intent("BookTable").
		Slot("partySize", "4").
		Slot("time", "18:00").
		Build()

	content, err := pack.RenderPath(context.Background(), "hint.next", event, nil)
	require.NoError(t, err)
	assert.Equal(t, "Try saying: book a table for 4", content)
}

func TestPack_ObjectViewInterpolatesStringLeaves(t *testing.T) {
	pack, err := ParsePack([]byte(packYAML))
	require.NoError(t, err)

	event := testutil.NewEventBuilder().
		Intent("BookTable").
		Slot("partySize", "4").
		Slot("time", "18:00").
		Build()

	content, err := pack.RenderPath(context.Background(), "card.confirmation", event, nil)
	require.NoError(t, err)

	obj, ok := content.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Simple", obj["type"])
	assert.Equal(t, "Booking", obj["title"])
	assert.Equal(t, "Table for 4 at 18:00", obj["content"])
}

func TestPack_MissingView(t *testing.T) {
	pack, err := ParsePack([]byte(packYAML))
	require.NoError(t, err)

	_, err = pack.RenderPath(context.Background(), "absent", testutil.NewEventBuilder().Build(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestPack_RejectsAmbiguousView(t *testing.T) {
	_, err := ParsePack([]byte(`
views:
  broken:
    text: "t"
    object:
      k: v
`))
	assert.Error(t, err)
}

func TestPack_RejectsEmptyView(t *testing.T) {
	_, err := ParsePack([]byte(`
views:
  broken: {}
`))
	assert.Error(t, err)
}

func TestPack_Views(t *testing.T) {
	pack, err := ParsePack([]byte(packYAML))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hint.next", "card.confirmation", "chips.static"}, pack.Views())
}
