package alexa

import (
	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/internal/util"
)

// Platform is the registry tag of the Alexa family.
const Platform = "alexa"

// Reply is the Alexa-shaped accumulator of the outgoing response. It is
// built fresh per turn, mutated only by the sequential directive chain of
// that turn, and serialized with WireJSON once the chain completes.
type Reply struct {
	OutputSpeech     *OutputSpeech
	Reprompt         *OutputSpeech
	Card             *Card
	Directives       []ResponseDirective
	ShouldEndSession *bool
}

// NewReply creates an empty Alexa reply.
func NewReply() *Reply { return &Reply{} }

// Platform implements core.Reply.
func (r *Reply) Platform() string { return Platform }

// HasDirective implements core.Reply by pattern-matching the accumulated
// entry variants. The card slot is queried like any other category even
// though it is not part of the directive list.
func (r *Reply) HasDirective(c core.Category) bool {
	if c == core.CategoryCard {
		return r.Card != nil
	}
	for _, d := range r.Directives {
		if d.Category() == c {
			return true
		}
	}
	return false
}

// append adds an entry to the ordered directive list.
func (r *Reply) append(d ResponseDirective) {
	r.Directives = append(r.Directives, d)
}

// Speak sets plain-text output speech.
func (r *Reply) Speak(text string) *Reply {
	r.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: text}
	return r
}

// Ask sets output speech and a reprompt, keeping the session open.
func (r *Reply) Ask(text, reprompt string) *Reply {
	r.Speak(text)
	r.Reprompt = &OutputSpeech{Type: "PlainText", Text: reprompt}
	end := false
	r.ShouldEndSession = &end
	return r
}

// OutputSpeech is the spoken portion of the response.
type OutputSpeech struct {
	Type string `json:"type"` // PlainText or SSML
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

// WireJSON serializes the platform-defined response body. Schema ownership
// belongs to the platform family, not to the engine.
func (r *Reply) WireJSON() ([]byte, error) {
	type reprompt struct {
		OutputSpeech *OutputSpeech `json:"outputSpeech"`
	}
	body := struct {
		Version  string `json:"version"`
		Response struct {
			OutputSpeech     *OutputSpeech       `json:"outputSpeech,omitempty"`
			Card             *Card               `json:"card,omitempty"`
			Reprompt         *reprompt           `json:"reprompt,omitempty"`
			Directives       []ResponseDirective `json:"directives,omitempty"`
			ShouldEndSession *bool               `json:"shouldEndSession,omitempty"`
		} `json:"response"`
	}{Version: "1.0"}
	body.Response.OutputSpeech = r.OutputSpeech
	body.Response.Card = r.Card
	if r.Reprompt != nil {
		body.Response.Reprompt = &reprompt{OutputSpeech: r.Reprompt}
	}
	body.Response.Directives = r.Directives
	body.Response.ShouldEndSession = r.ShouldEndSession
	return util.MarshalJSON(body)
}

// ResponseDirective is the closed set of entries the Alexa directive list
// can hold. Concrete variants implement the unexported marker and report
// the category used for exclusivity checks.
type ResponseDirective interface {
	isResponseDirective()
	Category() core.Category
}

// HintEntry is a Hint directive entry.
type HintEntry struct {
	Type string    `json:"type"` // Hint
	Hint PlainText `json:"hint"`
}

func (HintEntry) isResponseDirective() {}

// Category implements ResponseDirective.
func (HintEntry) Category() core.Category { return core.CategoryHint }

// PlainText is the text payload of a hint.
type PlainText struct {
	Type string `json:"type"` // PlainText
	Text string `json:"text"`
}

// DelegateEntry is a Dialog.Delegate directive entry.
type DelegateEntry struct {
	Type          string         `json:"type"` // Dialog.Delegate
	UpdatedIntent *UpdatedIntent `json:"updatedIntent,omitempty"`
}

func (DelegateEntry) isResponseDirective() {}

// Category implements ResponseDirective.
func (DelegateEntry) Category() core.Category { return core.CategoryDelegate }

// UpdatedIntent carries the intent and slot state handed back to the
// platform's dialog manager.
type UpdatedIntent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot is one slot of an updated intent. An empty Value requests the value
// from the user.
type Slot struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus"`
}

// TemplateEntry is a Display.RenderTemplate directive entry.
type TemplateEntry struct {
	Type     string `json:"type"` // Display.RenderTemplate
	Template any    `json:"template"`
}

func (TemplateEntry) isResponseDirective() {}

// Category implements ResponseDirective.
func (TemplateEntry) Category() core.Category { return core.CategoryTemplate }

// AudioPlayEntry is an AudioPlayer.Play directive entry.
type AudioPlayEntry struct {
	Type         string    `json:"type"` // AudioPlayer.Play
	PlayBehavior string    `json:"playBehavior"`
	AudioItem    AudioItem `json:"audioItem"`
}

func (AudioPlayEntry) isResponseDirective() {}

// Category implements ResponseDirective.
func (AudioPlayEntry) Category() core.Category { return core.CategoryAudioPlay }

// AudioItem wraps the stream of a play entry.
type AudioItem struct {
	Stream Stream `json:"stream"`
}

// Stream describes the audio source of a play entry.
type Stream struct {
	URL                  string `json:"url"`
	Token                string `json:"token"`
	OffsetInMilliseconds int64  `json:"offsetInMilliseconds"`
}

// AudioStopEntry is an AudioPlayer.Stop directive entry.
type AudioStopEntry struct {
	Type string `json:"type"` // AudioPlayer.Stop
}

func (AudioStopEntry) isResponseDirective() {}

// Category implements ResponseDirective. Stop entries carry no exclusivity
// rule; the category exists so serialization can match exhaustively.
func (AudioStopEntry) Category() core.Category { return core.CategoryAudioStop }

// VideoLaunchEntry is a VideoApp.Launch directive entry.
type VideoLaunchEntry struct {
	Type      string    `json:"type"` // VideoApp.Launch
	VideoItem VideoItem `json:"videoItem"`
}

func (VideoLaunchEntry) isResponseDirective() {}

// Category implements ResponseDirective.
func (VideoLaunchEntry) Category() core.Category { return core.CategoryVideo }

// VideoItem describes the video source and optional display metadata.
type VideoItem struct {
	Source   string         `json:"source"`
	Metadata *VideoMetadata `json:"metadata,omitempty"`
}

// VideoMetadata is the optional title block shown with a launched video.
type VideoMetadata struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// replyOf narrows a core.Reply to the Alexa reply. Directives of this family
// are registered under the alexa platform tag, so a mismatch indicates a
// wiring bug and is reported as a usage error rather than a panic.
func replyOf(reply core.Reply, key string) (*Reply, error) {
	r, ok := reply.(*Reply)
	if !ok {
		return nil, core.NewUsageError(Platform, key, "reply is not an Alexa reply")
	}
	return r, nil
}
