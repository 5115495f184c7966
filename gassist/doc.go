// Package gassist implements the Google-Assistant platform family: the
// assistant-shaped Reply and the selection directives (list, carousel,
// suggestion chips, basic card).
//
// Every directive of this family follows the identical shape: accept either
// a view path (resolved through the renderer) or an already-built structured
// payload, wrap it in the platform envelope with a discriminant, and append
// it to the reply's entry list. Unlike the alexa family there are no
// cross-directive exclusivity rules here; the asymmetry is part of each
// platform's schema and is deliberately not unified.
package gassist
