package gassist

import (
	"github.com/voxkit/voxkit/core"
	"github.com/voxkit/voxkit/engine"
)

// Directive keys of the Google-Assistant family.
const (
	KeyList        = "gassist.list"
	KeyCarousel    = "gassist.carousel"
	KeySuggestions = "gassist.suggestions"
	KeyBasicCard   = "gassist.basicCard"
)

// Register binds every directive of the family to the registry under the
// gassist platform tag.
func Register(reg *engine.Registry) error {
	factories := map[string]core.Factory{
		KeyList:        NewList,
		KeyCarousel:    NewCarousel,
		KeySuggestions: NewSuggestions,
		KeyBasicCard:   NewBasicCard,
	}
	for key, factory := range factories {
		if err := reg.Register(Platform, key, factory); err != nil {
			return err
		}
	}
	return nil
}
