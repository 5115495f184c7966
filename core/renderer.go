package core

import "context"

// Renderer resolves a named view plus contextual event data into rendered
// content. The content type is view-specific: plain text for hints,
// card-shaped objects for cards, structured templates for visual directives.
//
// RenderPath is the sole blocking boundary of directive application.
// Implementations must be safe for concurrent read-only use by multiple
// turns and must fail with an error (not empty content) when a view is
// missing or malformed.
type Renderer interface {
	RenderPath(ctx context.Context, view string, event Event, params map[string]any) (any, error)
}
