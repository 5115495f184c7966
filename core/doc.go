// Package core defines the platform-neutral contracts of the directive
// engine: the Directive unit of work, the Reply/Event/Transition data model
// for a single conversational turn, the Renderer abstraction for resolving
// view paths into content, and the typed error model shared by all platform
// families.
//
// The engine (package engine) is written once against these interfaces;
// platform-specific response schemas live in their own packages (alexa,
// gassist) and are accessed only inside that platform's own directive
// implementations, never through downcasts in the engine itself.
package core
