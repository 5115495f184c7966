package render

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/util"
)

// packView is one view definition of a YAML pack. Exactly one of Text /
// Object should be set: Text is a Go template rendered to a string, Object
// is structured content whose string leaves are template-interpolated.
type packView struct {
	Text   string         `yaml:"text,omitempty"`
	Object map[string]any `yaml:"object,omitempty"`
}

type packFile struct {
	Views map[string]packView `yaml:"views"`
}

// Pack is a renderer backed by a YAML view pack:
//
//	views:
//	  hint.next:
//	    text: "Try saying: book a table for {{.Slots.partySize}}"
//	  card.confirmation:
//	    object:
//	      type: Simple
//	      title: "Booking"
//	      content: "Table for {{.Slots.partySize}} at {{.Slots.time}}"
//
// Templates see .Platform, .Intent, .Slots and .Params.
type Pack struct {
	views map[string]packView
}

// LoadPack reads and parses a YAML view pack from disk.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading view pack %s: %w", path, err)
	}
	return ParsePack(data)
}

// ParsePack parses a YAML view pack from memory.
func ParsePack(data []byte) (*Pack, error) {
	var file packFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing view pack: %w", err)
	}
	if file.Views == nil {
		file.Views = map[string]packView{}
	}
	for name, v := range file.Views {
		if v.Text == "" && v.Object == nil {
			return nil, fmt.Errorf("view %q defines neither text nor object", name)
		}
		if v.Text != "" && v.Object != nil {
			return nil, fmt.Errorf("view %q defines both text and object", name)
		}
	}
	return &Pack{views: file.Views}, nil
}

// Views returns the view paths the pack defines.
func (p *Pack) Views() []string {
	out := make([]string, 0, len(p.views))
	for name := range p.views {
		out = append(out, name)
	}
	return out
}

// RenderPath implements core.Renderer.
func (p *Pack) RenderPath(_ context.Context, view string, event core.Event, params map[string]any) (any, error) {
	v, ok := p.views[view]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, view)
	}
	data := templateData(event, params)
	if v.Text != "" {
		return util.RenderTemplate(v.Text, data)
	}
	return interpolate(v.Object, data)
}

// templateData assembles the template context from the turn event and the
// directive's render parameters.
func templateData(event core.Event, params map[string]any) map[string]any {
	data := map[string]any{
		"Params": params,
		"Slots":  map[string]string{},
	}
	if event != nil {
		data["Platform"] = event.Platform()
		if intent := event.Intent(); intent != nil {
			data["Intent"] = intent.Name
			if intent.Slots != nil {
				data["Slots"] = intent.Slots
			}
		}
	}
	return data
}

// interpolate deep-copies structured content, executing templates on every
// string leaf. Non-string leaves pass through unchanged.
func interpolate(in any, data map[string]any) (any, error) {
	switch v := in.(type) {
	case string:
		return util.RenderTemplate(v, data)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			r, err := interpolate(item, data)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			r, err := interpolate(item, data)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}
