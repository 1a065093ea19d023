package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mandilinkybl-pixel/madirate/database"
	"github.com/mandilinkybl-pixel/madirate/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StateRepository provides access to the states collection.
type StateRepository interface {
	FindAll(ctx context.Context) ([]model.State, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.State, error)
	FindByKey(ctx context.Context, nameKey string) (*model.State, error)
	Insert(ctx context.Context, state model.State) (primitive.ObjectID, error)
	Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string) (*model.State, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type stateRepository struct {
	collection *mongo.Collection
}

func NewStateRepository(db *mongo.Database) StateRepository {
	return &stateRepository{
		collection: db.Collection("states"),
	}
}

func (r *stateRepository) FindAll(ctx context.Context) ([]model.State, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return database.FindGeneric[model.State](ctx, r.collection, bson.M{}, opts)
}

func (r *stateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.State, error) {
	var state model.State
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) FindByKey(ctx context.Context, nameKey string) (*model.State, error) {
	var state model.State
	err := r.collection.FindOne(ctx, bson.M{"name_key": nameKey}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) Insert(ctx context.Context, state model.State) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, state)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert state: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *stateRepository) Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string) (*model.State, error) {
	return database.UpdateGeneric[model.State](ctx, r.collection, bson.M{"_id": id}, bson.M{
		"name":     name,
		"name_key": nameKey,
	})
}

func (r *stateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
