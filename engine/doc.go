// Package engine implements directive resolution and application: a Registry
// mapping (platform, key) pairs to directive factories, and an Engine that
// walks a transition's descriptor list in order, builds the implementation
// registered for the reply's platform, and applies each directive
// sequentially with short-circuit failure semantics.
//
// Directives are platform-scoped. A descriptor whose key is registered only
// for other platforms is silently skipped, which lets one dialog transition
// declare directives for several platforms with only the relevant ones
// firing per reply. A key registered for no platform at all is a
// configuration error: surfaced eagerly via Registry.VerifyDescriptors, and
// lazily during Apply when such a descriptor is reached in a live turn.
package engine
