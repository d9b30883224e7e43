package formatter

import (
	"github.com/medsupp/appformat/internal/model"
)

// variant builds one carrier's document from the shared intake view.
type variant interface {
	// carrierKey is the producer writing-number key for this carrier.
	carrierKey() string
	build(in *intake) model.Document
}

// variants maps each supported carrier to its builder. Chubb and ACE share one.
var variants = map[model.Carrier]variant{
	model.UnitedHealthcare: uhcVariant{},
	model.Aetna:            aetnaVariant{},
	model.Allstate:         allstateVariant{},
	model.Chubb:            aceVariant{},
	model.ACE:              aceVariant{},
}

func lookupVariant(c model.Carrier) (variant, bool) {
	v, ok := variants[c]
	return v, ok
}
