package alexa

import (
	"context"
	"fmt"

	"github.com/voxkit/voxkit/core"
)

// NewHint is the factory for the alexa.hint key. Hints are always rendered
// through a view path; there is no pre-built-object form. At most one hint
// may appear per reply.
func NewHint(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" {
		return nil, core.NewUsageError(Platform, KeyHint, "hint requires a view")
	}
	view, params := desc.View, desc.Params
	return core.DirectiveFunc(func(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
		r, err := replyOf(reply, KeyHint)
		if err != nil {
			return err
		}
		if r.HasDirective(core.CategoryHint) {
			return core.NewExclusivityError(Platform, KeyHint, "reply already carries a hint")
		}
		content, err := event.Renderer().RenderPath(ctx, view, event, params)
		if err != nil {
			return core.NewContentError(Platform, KeyHint, "rendering view "+view, err)
		}
		text, ok := content.(string)
		if !ok {
			return core.NewContentError(Platform, KeyHint,
				fmt.Sprintf("view %s rendered %T, want text", view, content), nil)
		}
		r.append(HintEntry{
			Type: "Hint",
			Hint: PlainText{Type: "PlainText", Text: text},
		})
		return nil
	}), nil
}
