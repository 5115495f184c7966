// Package alexa implements the Alexa platform family: the Alexa-shaped
// Reply with its single card slot and ordered directive list, and the
// directive implementations for cards, hints, dialog delegation, display
// templates and audio/video playback.
//
// This family carries the per-response exclusivity rules of the platform
// schema: at most one card, at most one hint, at most one display template,
// and mutual exclusion between audio playback and video launch. Directives
// gated on a device capability (display templates, video launch) are silent
// no-ops on devices without that capability.
package alexa
