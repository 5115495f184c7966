package gassist

import (
	"context"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/util"
)

// resolveContent returns the descriptor's pre-built content or renders the
// view through the event's renderer.
func resolveContent(ctx context.Context, view string, content any, params map[string]any, event core.Event, key string) (any, error) {
	if view == "" {
		return content, nil
	}
	out, err := event.Renderer().RenderPath(ctx, view, event, params)
	if err != nil {
		return nil, core.NewContentError(Platform, key, "rendering view "+view, err)
	}
	return out, nil
}

// ListDirective appends a list-selection entry. Stateful-object shape.
type ListDirective struct {
	view    string
	content any
	params  map[string]any
}

// NewList is the factory for the gassist.list key.
func NewList(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" && desc.Content == nil {
		return nil, core.NewUsageError(Platform, KeyList, "list requires a view or pre-built content")
	}
	return &ListDirective{view: desc.View, content: desc.Content, params: desc.Params}, nil
}

// Apply resolves the payload and appends it in the listSelect envelope.
func (d *ListDirective) Apply(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
	r, err := replyOf(reply, KeyList)
	if err != nil {
		return err
	}
	content, err := resolveContent(ctx, d.view, d.content, d.params, event, KeyList)
	if err != nil {
		return err
	}
	var list ListSelect
	switch c := content.(type) {
	case ListSelect:
		list = c
	case *ListSelect:
		list = *c
	default:
		if err := util.Coerce(content, &list); err != nil {
			return core.NewContentError(Platform, KeyList, "content is not list-shaped", err)
		}
	}
	r.append(ListEntry{Type: "listSelect", List: list})
	return nil
}

// CarouselDirective appends a carousel-selection entry. Stateful-object
// shape.
type CarouselDirective struct {
	view    string
	content any
	params  map[string]any
}

// NewCarousel is the factory for the gassist.carousel key.
func NewCarousel(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" && desc.Content == nil {
		return nil, core.NewUsageError(Platform, KeyCarousel, "carousel requires a view or pre-built content")
	}
	return &CarouselDirective{view: desc.View, content: desc.Content, params: desc.Params}, nil
}

// Apply resolves the payload and appends it in the carouselSelect envelope.
func (d *CarouselDirective) Apply(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
	r, err := replyOf(reply, KeyCarousel)
	if err != nil {
		return err
	}
	content, err := resolveContent(ctx, d.view, d.content, d.params, event, KeyCarousel)
	if err != nil {
		return err
	}
	var carousel CarouselSelect
	switch c := content.(type) {
	case CarouselSelect:
		carousel = c
	case *CarouselSelect:
		carousel = *c
	default:
		if err := util.Coerce(content, &carousel); err != nil {
			return core.NewContentError(Platform, KeyCarousel, "content is not carousel-shaped", err)
		}
	}
	r.append(CarouselEntry{Type: "carouselSelect", Carousel: carousel})
	return nil
}

// NewSuggestions is the factory for the gassist.suggestions key.
// Closure-factory shape. Content may be chip titles ([]string) or
// suggestion-shaped objects.
func NewSuggestions(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" && desc.Content == nil {
		return nil, core.NewUsageError(Platform, KeySuggestions, "suggestions require a view or pre-built content")
	}
	view, content, params := desc.View, desc.Content, desc.Params
	return core.DirectiveFunc(func(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
		r, err := replyOf(reply, KeySuggestions)
		if err != nil {
			return err
		}
		resolved, err := resolveContent(ctx, view, content, params, event, KeySuggestions)
		if err != nil {
			return err
		}
		chips, err := asSuggestions(resolved)
		if err != nil {
			return err
		}
		r.append(SuggestionsEntry{Type: "suggestions", Suggestions: chips})
		return nil
	}), nil
}

func asSuggestions(content any) ([]Suggestion, error) {
	switch c := content.(type) {
	case []Suggestion:
		return c, nil
	case []string:
		chips := make([]Suggestion, len(c))
		for i, title := range c {
			chips[i] = Suggestion{Title: title}
		}
		return chips, nil
	}
	var titles []string
	if err := util.Coerce(content, &titles); err == nil {
		chips := make([]Suggestion, len(titles))
		for i, title := range titles {
			chips[i] = Suggestion{Title: title}
		}
		return chips, nil
	}
	var chips []Suggestion
	if err := util.Coerce(content, &chips); err != nil {
		return nil, core.NewContentError(Platform, KeySuggestions, "content is not suggestion-shaped", err)
	}
	return chips, nil
}

// NewBasicCard is the factory for the gassist.basicCard key.
// Closure-factory shape.
func NewBasicCard(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" && desc.Content == nil {
		return nil, core.NewUsageError(Platform, KeyBasicCard, "basicCard requires a view or pre-built content")
	}
	view, content, params := desc.View, desc.Content, desc.Params
	return core.DirectiveFunc(func(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
		r, err := replyOf(reply, KeyBasicCard)
		if err != nil {
			return err
		}
		resolved, err := resolveContent(ctx, view, content, params, event, KeyBasicCard)
		if err != nil {
			return err
		}
		var card BasicCard
		switch c := resolved.(type) {
		case BasicCard:
			card = c
		case *BasicCard:
			card = *c
		default:
			if err := util.Coerce(resolved, &card); err != nil {
				return core.NewContentError(Platform, KeyBasicCard, "content is not card-shaped", err)
			}
		}
		r.append(BasicCardEntry{Type: "basicCard", Card: card})
		return nil
	}), nil
}
