package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mandi is a wholesale market registered under a state. Name is unique
// per state, case-insensitively.
type Mandi struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	NameKey string             `bson:"name_key" json:"-"`
	StateID primitive.ObjectID `bson:"state" json:"stateId"`
}
