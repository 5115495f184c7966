package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectiveError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  *DirectiveError
		code ErrorCode
	}{
		{"exclusivity", NewExclusivityError("alexa", "alexa.card", "already set"), ErrCodeExclusivity},
		{"usage", NewUsageError("alexa", "alexa.delegate", "no intent"), ErrCodeUsage},
		{"content", NewContentError("alexa", "alexa.hint", "render failed", nil), ErrCodeContent},
		{"config", NewConfigError("", "nowhere", "unregistered"), ErrCodeConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeOf(tt.err))
			assert.True(t, IsCode(tt.err, tt.code))
			assert.False(t, IsCode(tt.err, ErrorCode("other")))
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestDirectiveError_WrapsCause(t *testing.T) {
	cause := errors.New("missing view")
	err := NewContentError("alexa", "alexa.card", "rendering view x", cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("turn failed: %w", err)
	var de *DirectiveError
	require.ErrorAs(t, wrapped, &de)
	assert.Equal(t, ErrCodeContent, de.Code)
	assert.True(t, IsCode(wrapped, ErrCodeContent))
}

func TestCodeOf_NonDirectiveError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestCapabilitySet(t *testing.T) {
	caps := NewCapabilitySet(CapabilityDisplay, CapabilityAudio)

	assert.True(t, caps.Has(CapabilityDisplay))
	assert.True(t, caps.Has(CapabilityAudio))
	assert.False(t, caps.Has(CapabilityVideo))
	assert.False(t, CapabilitySet{}.Has(CapabilityDisplay))
}

func TestDescriptor_Params(t *testing.T) {
	desc := Descriptor{
		Key:    "alexa.playAudio",
		Params: map[string]any{"url": "https://a.example.com/s.mp3", "offset": 250},
	}

	assert.Equal(t, "https://a.example.com/s.mp3", desc.StringParam("url"))
	assert.Equal(t, "", desc.StringParam("offset"), "non-string param reads as empty string")
	assert.Equal(t, "", desc.StringParam("absent"))

	v, ok := desc.Param("offset")
	assert.True(t, ok)
	assert.Equal(t, 250, v)

	_, ok = Descriptor{}.Param("anything")
	assert.False(t, ok)
}

func TestNewTransition(t *testing.T) {
	tr := NewTransition("confirming",
		Descriptor{Key: "alexa.card"},
		Descriptor{Key: "alexa.hint"},
	)

	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, "confirming", tr.To)
	require.Len(t, tr.Directives, 2)
	assert.Equal(t, "alexa.card", tr.Directives[0].Key)

	other := NewTransition("confirming")
	assert.NotEqual(t, tr.ID, other.ID)
}
