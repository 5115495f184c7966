package alexa

import (
	"context"

	"github.com/voxkit/voxkit/core"
)

// TemplateDirective appends a Display.RenderTemplate entry from a view path
// (rendered with an optional "token" parameter) or a pre-built template
// object.
//
// Devices without a display are a silent no-op: the reply is left untouched
// and no error is reported. At most one template may appear per reply.
type TemplateDirective struct {
	view    string
	content any
	params  map[string]any
}

// NewTemplate is the factory for the alexa.renderTemplate key.
func NewTemplate(desc core.Descriptor) (core.Directive, error) {
	if desc.View == "" && desc.Content == nil {
		return nil, core.NewUsageError(Platform, KeyRenderTemplate, "template requires a view or pre-built content")
	}
	return &TemplateDirective{view: desc.View, content: desc.Content, params: desc.Params}, nil
}

// Apply gates on the display capability, enforces the single-template rule
// and appends the rendered or given template.
func (d *TemplateDirective) Apply(ctx context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
	if !event.Capabilities().Has(core.CapabilityDisplay) {
		return nil
	}
	r, err := replyOf(reply, KeyRenderTemplate)
	if err != nil {
		return err
	}
	if r.HasDirective(core.CategoryTemplate) {
		return core.NewExclusivityError(Platform, KeyRenderTemplate, "reply already carries a display template")
	}
	content := d.content
	if d.view != "" {
		content, err = event.Renderer().RenderPath(ctx, d.view, event, d.params)
		if err != nil {
			return core.NewContentError(Platform, KeyRenderTemplate, "rendering view "+d.view, err)
		}
	}
	r.append(TemplateEntry{Type: "Display.RenderTemplate", Template: content})
	return nil
}
