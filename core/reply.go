package core

// Category classifies directive effects for exclusivity checks. Categories
// are coarser than directive keys: several keys may share one category (all
// card-like directives claim CategoryCard), and a single directive may be
// queried against a category it never appends (audio-play checks
// CategoryVideo before committing).
type Category string

const (
	// CategoryCard is the single-slot card position of a reply.
	CategoryCard Category = "card"
	// CategoryHint marks hint entries (at most one per reply).
	CategoryHint Category = "hint"
	// CategoryTemplate marks visual template entries (at most one per reply).
	CategoryTemplate Category = "template"
	// CategoryAudioPlay marks audio playback entries.
	CategoryAudioPlay Category = "audio-play"
	// CategoryAudioStop marks audio stop entries. No exclusivity rule
	// attaches to it; it exists so entry lists can be matched exhaustively.
	CategoryAudioStop Category = "audio-stop"
	// CategoryVideo marks video launch entries.
	CategoryVideo Category = "video"
	// CategoryDelegate marks dialog delegation entries.
	CategoryDelegate Category = "delegate"
)

// Reply is the mutable, platform-shaped accumulator of the outgoing
// response. A Reply is built fresh per turn, exclusively owned by that turn,
// mutated only by the sequential directive chain, and handed to transport
// after the chain completes. It is never shared across requests.
//
// Concrete replies own a platform-specific payload tree that always exposes
// a single optional card slot and an ordered, append-only list of tagged
// directive entries; HasDirective is the uniform query directives use to
// enforce exclusivity against accumulated state.
type Reply interface {
	// Platform returns the platform tag this reply is shaped for. Directive
	// resolution is scoped to this tag.
	Platform() string

	// HasDirective reports whether the reply already carries a directive of
	// the given category.
	HasDirective(c Category) bool
}
