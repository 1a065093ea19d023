package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Commodity is the master list entry used for autocomplete. It is
// independent of price data; rate records reference commodities by name.
type Commodity struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	NameKey string             `bson:"name_key" json:"-"`
}
