package models

// Layer classifies a clothes type by where it sits in an outfit.
// Tokens are serialized lower-cased with underscores stripped,
// e.g. BASE_LAYER -> "baselayer".
type Layer string

const (
	LayerBase      Layer = "baselayer"
	LayerMid       Layer = "midlayer"
	LayerOuter     Layer = "outerlayer"
	LayerAccessory Layer = "accessory"
	LayerFootwear  Layer = "footwear"
	LayerHeadwear  Layer = "headwear"
	LayerBottom    Layer = "bottomwear"
)

// Layers lists every defined layer token.
var Layers = []Layer{
	LayerBase,
	LayerMid,
	LayerOuter,
	LayerAccessory,
	LayerFootwear,
	LayerHeadwear,
	LayerBottom,
}

// Valid reports whether l is one of the defined layer tokens.
func (l Layer) Valid() bool {
	for _, known := range Layers {
		if l == known {
			return true
		}
	}
	return false
}
