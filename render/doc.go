// Package render provides reference implementations of the core.Renderer
// contract: Static, an in-memory view map for tests and examples, and Pack,
// a YAML-defined view pack whose text views are Go templates executed
// against the turn's intent slots and render parameters.
//
// Both renderers are immutable after construction and therefore safe for
// concurrent read-only use by any number of turns.
package render
