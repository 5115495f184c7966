package alexa

import (
	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/engine"
)

// Directive keys of the Alexa family.
const (
	KeyCard            = "alexa.card"
	KeyLinkAccountCard = "alexa.linkAccountCard"
	KeyHint            = "alexa.hint"
	KeyDelegate        = "alexa.delegate"
	KeyRenderTemplate  = "alexa.renderTemplate"
	KeyPlayAudio       = "alexa.playAudio"
	KeyStopAudio       = "alexa.stopAudio"
	KeyLaunchVideo     = "alexa.launchVideo"
)

// Register binds every directive of the family to the registry under the
// alexa platform tag.
func Register(reg *engine.Registry) error {
	factories := map[string]core.Factory{
		KeyCard:            NewCard,
		KeyLinkAccountCard: NewLinkAccountCard,
		KeyHint:            NewHint,
		KeyDelegate:        NewDelegate,
		KeyRenderTemplate:  NewTemplate,
		KeyPlayAudio:       NewPlayAudio,
		KeyStopAudio:       NewStopAudio,
		KeyLaunchVideo:     NewLaunchVideo,
	}
	for key, factory := range factories {
		if err := reg.Register(Platform, key, factory); err != nil {
			return err
		}
	}
	return nil
}
