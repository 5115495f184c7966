package render

import (
	"context"
	"fmt"

	"github.com/voxkit/voxkit/core"
)

// RenderFunc computes view content from the turn context on demand.
type RenderFunc func(ctx context.Context, event core.Event, params map[string]any) (any, error)

// Static is an in-memory renderer mapping view paths to literal content or
// to a RenderFunc. Populate it during setup; after that it is read-only and
// safe for concurrent turns.
type Static struct {
	views map[string]any
}

// NewStatic creates an empty static renderer.
func NewStatic() *Static {
	return &Static{views: map[string]any{}}
}

// AddView binds a view path to literal content (chainable).
func (s *Static) AddView(path string, content any) *Static {
	s.views[path] = content
	return s
}

// AddViewFunc binds a view path to a render function (chainable).
func (s *Static) AddViewFunc(path string, fn RenderFunc) *Static {
	s.views[path] = fn
	return s
}

// RenderPath implements core.Renderer.
func (s *Static) RenderPath(ctx context.Context, view string, event core.Event, params map[string]any) (any, error) {
	content, ok := s.views[view]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, view)
	}
	if fn, ok := content.(RenderFunc); ok {
		return fn(ctx, event, params)
	}
	return content, nil
}
