package database

import (
	"context"
	"errors"

	"github.com/mandilinkybl-pixel/madirate/customerrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateGeneric applies a $set and returns the updated document, mapping
// a missing document to a NotFoundError.
func UpdateGeneric[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, data interface{}) (*T, error) {
	update := bson.M{
		"$set": data,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedDoc T
	err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updatedDoc)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerrors.NewNotFound("record not found")
		}
		return nil, err
	}

	return &updatedDoc, nil
}

// FindGeneric runs a filtered find and decodes every document, never
// returning a nil slice.
func FindGeneric[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	if docs == nil {
		return []T{}, nil
	}
	return docs, nil
}
