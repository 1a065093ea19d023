package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mandilinkybl-pixel/madirate/database"
	"github.com/mandilinkybl-pixel/madirate/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommodityRepository provides access to the commodities master list.
type CommodityRepository interface {
	FindAll(ctx context.Context) ([]model.Commodity, error)
	Search(ctx context.Context, query string) ([]model.Commodity, error)
	FindByKey(ctx context.Context, nameKey string) (*model.Commodity, error)
	Insert(ctx context.Context, commodity model.Commodity) (primitive.ObjectID, error)
	Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string) (*model.Commodity, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type commodityRepository struct {
	collection *mongo.Collection
}

func NewCommodityRepository(db *mongo.Database) CommodityRepository {
	return &commodityRepository{
		collection: db.Collection("commodities"),
	}
}

func (r *commodityRepository) FindAll(ctx context.Context) ([]model.Commodity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return database.FindGeneric[model.Commodity](ctx, r.collection, bson.M{}, opts)
}

func (r *commodityRepository) Search(ctx context.Context, query string) ([]model.Commodity, error) {
	filter := bson.M{}
	if query != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return database.FindGeneric[model.Commodity](ctx, r.collection, filter, opts)
}

func (r *commodityRepository) FindByKey(ctx context.Context, nameKey string) (*model.Commodity, error) {
	var commodity model.Commodity
	err := r.collection.FindOne(ctx, bson.M{"name_key": nameKey}).Decode(&commodity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &commodity, nil
}

func (r *commodityRepository) Insert(ctx context.Context, commodity model.Commodity) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, commodity)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert commodity: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *commodityRepository) Rename(ctx context.Context, id primitive.ObjectID, name, nameKey string) (*model.Commodity, error) {
	return database.UpdateGeneric[model.Commodity](ctx, r.collection, bson.M{"_id": id}, bson.M{
		"name":     name,
		"name_key": nameKey,
	})
}

func (r *commodityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
