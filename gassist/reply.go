package gassist

import (
	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/util"
)

// Platform is the registry tag of the Google-Assistant family.
const Platform = "gassist"

// Entry categories of this family. No exclusivity rule attaches to any of
// them; they exist so HasDirective and serialization can match entries.
const (
	// CategoryList marks list-selection entries.
	CategoryList core.Category = "gassist.list"
	// CategoryCarousel marks carousel-selection entries.
	CategoryCarousel core.Category = "gassist.carousel"
	// CategorySuggestions marks suggestion-chip entries.
	CategorySuggestions core.Category = "gassist.suggestions"
	// CategoryBasicCard marks basic-card entries.
	CategoryBasicCard core.Category = "gassist.basicCard"
)

// Reply is the assistant-shaped accumulator of the outgoing response:
// spoken/display text plus an ordered, append-only list of tagged entries.
type Reply struct {
	Speech      string
	DisplayText string
	Entries     []Entry
}

// NewReply creates an empty assistant reply.
func NewReply() *Reply { return &Reply{} }

// Platform implements core.Reply.
func (r *Reply) Platform() string { return Platform }

// HasDirective implements core.Reply.
func (r *Reply) HasDirective(c core.Category) bool {
	for _, e := range r.Entries {
		if e.Category() == c {
			return true
		}
	}
	return false
}

// append adds an entry to the ordered list.
func (r *Reply) append(e Entry) { r.Entries = append(r.Entries, e) }

// Speak sets the spoken response text.
func (r *Reply) Speak(text string) *Reply {
	r.Speech = text
	return r
}

// Entry is the closed set of payloads the assistant reply can accumulate.
type Entry interface {
	isEntry()
	Category() core.Category
}

// ListEntry wraps a list selection in its envelope.
type ListEntry struct {
	Type string     `json:"type"` // listSelect
	List ListSelect `json:"listSelect"`
}

func (ListEntry) isEntry() {}

// Category implements Entry.
func (ListEntry) Category() core.Category { return CategoryList }

// CarouselEntry wraps a carousel selection in its envelope.
type CarouselEntry struct {
	Type     string         `json:"type"` // carouselSelect
	Carousel CarouselSelect `json:"carouselSelect"`
}

func (CarouselEntry) isEntry() {}

// Category implements Entry.
func (CarouselEntry) Category() core.Category { return CategoryCarousel }

// SuggestionsEntry carries flat suggestion chips.
type SuggestionsEntry struct {
	Type        string       `json:"type"` // suggestions
	Suggestions []Suggestion `json:"suggestions"`
}

func (SuggestionsEntry) isEntry() {}

// Category implements Entry.
func (SuggestionsEntry) Category() core.Category { return CategorySuggestions }

// BasicCardEntry carries a basic card. This family has no single-slot card
// rule; any number of cards may be appended.
type BasicCardEntry struct {
	Type string    `json:"type"` // basicCard
	Card BasicCard `json:"basicCard"`
}

func (BasicCardEntry) isEntry() {}

// Category implements Entry.
func (BasicCardEntry) Category() core.Category { return CategoryBasicCard }

// ListSelect is the payload of a list selection.
type ListSelect struct {
	Title string     `json:"title,omitempty"`
	Items []ListItem `json:"items"`
}

// CarouselSelect is the payload of a carousel selection.
type CarouselSelect struct {
	Items []ListItem `json:"items"`
}

// ListItem is one selectable option of a list or carousel.
type ListItem struct {
	OptionInfo  OptionInfo `json:"optionInfo"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Image       *Image     `json:"image,omitempty"`
}

// OptionInfo identifies a selected option back to the dialog engine.
type OptionInfo struct {
	Key      string   `json:"key"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// Image is a displayed image with accessibility text.
type Image struct {
	URL               string `json:"url"`
	AccessibilityText string `json:"accessibilityText,omitempty"`
}

// Suggestion is one suggestion chip.
type Suggestion struct {
	Title string `json:"title"`
}

// BasicCard is the payload of a basic-card entry.
type BasicCard struct {
	Title         string   `json:"title,omitempty"`
	Subtitle      string   `json:"subtitle,omitempty"`
	FormattedText string   `json:"formattedText,omitempty"`
	Image         *Image   `json:"image,omitempty"`
	Buttons       []Button `json:"buttons,omitempty"`
}

// Button is a link button on a basic card.
type Button struct {
	Title         string        `json:"title"`
	OpenURLAction OpenURLAction `json:"openUrlAction"`
}

// OpenURLAction is the target of a card button.
type OpenURLAction struct {
	URL string `json:"url"`
}

// WireJSON serializes the platform-defined response envelope.
func (r *Reply) WireJSON() ([]byte, error) {
	body := struct {
		Speech      string  `json:"speech,omitempty"`
		DisplayText string  `json:"displayText,omitempty"`
		Items       []Entry `json:"items,omitempty"`
	}{
		Speech:      r.Speech,
		DisplayText: r.DisplayText,
		Items:       r.Entries,
	}
	return util.MarshalJSON(body)
}

// replyOf narrows a core.Reply to the assistant reply.
func replyOf(reply core.Reply, key string) (*Reply, error) {
	r, ok := reply.(*Reply)
	if !ok {
		return nil, core.NewUsageError(Platform, key, "reply is not a Google-Assistant reply")
	}
	return r, nil
}
