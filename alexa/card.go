package alexa

import (
	"context"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/util"
)

// CardType enumerates the recognized card shapes. Card content is validated
// by tag membership against this set, not by structural guessing.
type CardType string

const (
	// CardTypeSimple is a title + content text card.
	CardTypeSimple CardType = "Simple"
	// CardTypeStandard is a title + text card with an optional image.
	CardTypeStandard CardType = "Standard"
	// CardTypeLinkAccount prompts the user to link their account.
	CardTypeLinkAccount CardType = "LinkAccount"
)

// Valid reports whether the tag belongs to the recognized set.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeSimple, CardTypeStandard, CardTypeLinkAccount:
		return true
	}
	return false
}

// Card is the single-slot card of an Alexa reply. Which fields apply depends
// on the Type tag: Simple uses Content, Standard uses Text and Image,
// LinkAccount uses none.
type Card struct {
	Type    CardType   `json:"type"`
	Title   string     `json:"title,omitempty"`
	Content string     `json:"content,omitempty"`
	Text    string     `json:"text,omitempty"`
	Image   *CardImage `json:"image,omitempty"`
}

// CardImage holds the image URLs of a standard card.
type CardImage struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

// asCard validates arbitrary rendered or pre-built content against the
// recognized card shapes.
func asCard(content any, key string) (*Card, error) {
	var card Card
	switch c := content.(type) {
	case *Card:
		card = *c
	case Card:
		card = c
	default:
		if err := util.Coerce(content, &card); err != nil {
			return nil, core.NewContentError(Platform, key, "content is not card-shaped", err)
		}
	}
	if !card.Type.Valid() {
		return nil, core.NewContentError(Platform, key, "unrecognized card type "+string(card.Type), nil)
	}
	return &card, nil
}

// CardDirective sets the reply's single card slot from a view path or a
// pre-built card object. It is the stateful-object directive shape:
// constructed with the descriptor's arguments, applied later by the engine.
type CardDirective struct {
	view    string
	content any
	params  map[string]any
}

// NewCard is the factory for the alexa.card key.
func NewCard(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" && desc.Content == nil {
		return nil, core.NewUsageError(Platform, KeyCard, "card requires a view or pre-built content")
	}
	return &CardDirective{view: desc.View, content: desc.Content, params: desc.Params}, nil
}

// Apply resolves the card content, validates its shape and fills the card
// slot. A reply that already carries a card fails the turn; the existing
// card is never silently overwritten.
func (d *CardDirective) Apply(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
	r, err := replyOf(reply, KeyCard)
	if err != nil {
		return err
	}
	if r.HasDirective(core.CategoryCard) {
		return core.NewExclusivityError(Platform, KeyCard, "reply already carries a card")
	}
	content := d.content
	if d.view != "" {
		content, err = event.Renderer().RenderPath(ctx, d.view, event, d.params)
		if err != nil {
			return core.NewContentError(Platform, KeyCard, "rendering view "+d.view, err)
		}
	}
	card, err := asCard(content, KeyCard)
	if err != nil {
		return err
	}
	r.Card = card
	return nil
}

// NewLinkAccountCard is the factory for the alexa.linkAccountCard key. The
// account-linking card needs no view; it always produces the fixed
// LinkAccount card value. It is the closure-factory directive shape.
func NewLinkAccountCard(core.Descriptor) (core.Directive, error) {
	return core.DirectiveFunc(func(_ context.Context, reply core.Reply, _ core.Event, _ *core.Transition) error {
		r, err := replyOf(reply, KeyLinkAccountCard)
		if err != nil {
			return err
		}
		if r.HasDirective(core.CategoryCard) {
			return core.NewExclusivityError(Platform, KeyLinkAccountCard, "reply already carries a card")
		}
		r.Card = &Card{Type: CardTypeLinkAccount}
		return nil
	}), nil
}
