package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// State is an administrative region containing mandis. Name is unique
// case-insensitively; NameKey is the lowercased lookup key backing the
// unique index.
type State struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	NameKey string             `bson:"name_key" json:"-"`
}
