package validator

import (
	"github.com/Oudwins/zog"
)

// PriceShape validates one parsed submission row. Rates and arrival must
// be non-negative; arrival is optional and defaults to 0 upstream.
var PriceShape = zog.Shape{
	"MinRate": zog.Float64().GTE(0),
	"MaxRate": zog.Float64().GTE(0),
	"Arrival": zog.Float64().GTE(0),
}

var LoginShape = zog.Shape{
	"UserID":   zog.String().Min(1).Required(),
	"Password": zog.String().Min(1).Required(),
}
