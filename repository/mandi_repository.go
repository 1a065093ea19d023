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

// MandiRepository provides access to the mandis collection.
type MandiRepository interface {
	FindAll(ctx context.Context) ([]model.Mandi, error)
	FindByState(ctx context.Context, stateID primitive.ObjectID) ([]model.Mandi, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Mandi, error)
	FindByStateAndKey(ctx context.Context, stateID primitive.ObjectID, nameKey string) (*model.Mandi, error)
	InsertMany(ctx context.Context, mandis []model.Mandi) error
	Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string, stateID primitive.ObjectID) (*model.Mandi, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mandiRepository struct {
	collection *mongo.Collection
}

func NewMandiRepository(db *mongo.Database) MandiRepository {
	return &mandiRepository{
		collection: db.Collection("mandis"),
	}
}

func (r *mandiRepository) FindAll(ctx context.Context) ([]model.Mandi, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return database.FindGeneric[model.Mandi](ctx, r.collection, bson.M{}, opts)
}

func (r *mandiRepository) FindByState(ctx context.Context, stateID primitive.ObjectID) ([]model.Mandi, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return database.FindGeneric[model.Mandi](ctx, r.collection, bson.M{"state": stateID}, opts)
}

func (r *mandiRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Mandi, error) {
	var mandi model.Mandi
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&mandi)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &mandi, nil
}

func (r *mandiRepository) FindByStateAndKey(ctx context.Context, stateID primitive.ObjectID, nameKey string) (*model.Mandi, error) {
	var mandi model.Mandi
	err := r.collection.FindOne(ctx, bson.M{"state": stateID, "name_key": nameKey}).Decode(&mandi)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &mandi, nil
}

func (r *mandiRepository) InsertMany(ctx context.Context, mandis []model.Mandi) error {
	if len(mandis) == 0 {
		return nil
	}

	docs := make([]any, len(mandis))
	for i, m := range mandis {
		docs[i] = m
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to perform bulk insert: %w", err)
	}

	return nil
}

func (r *mandiRepository) Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string, stateID primitive.ObjectID) (*model.Mandi, error) {
	return database.UpdateGeneric[model.Mandi](ctx, r.collection, bson.M{"_id": id}, bson.M{
		"name":     name,
		"name_key": nameKey,
		"state":    stateID,
	})
}

func (r *mandiRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
