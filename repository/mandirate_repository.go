package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/mandilinkybl-pixel/madirate/database"
	"github.com/mandilinkybl-pixel/madirate/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RateFilter narrows rate-record queries. MandiRegex is a case-insensitive
// substring match used by search; uniqueness lookups go through the
// key-based finders instead.
type RateFilter struct {
	StateID    *primitive.ObjectID
	MandiRegex string
}

// MandiRateRepository provides access to the mandirates collection, one
// document per (state, mandi).
type MandiRateRepository interface {
	Find(ctx context.Context, filter RateFilter) ([]model.MandiRate, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.MandiRate, error)
	FindByStateAndMandi(ctx context.Context, stateID primitive.ObjectID, mandiKey string) (*model.MandiRate, error)
	FindByMandiKey(ctx context.Context, mandiKey string) (*model.MandiRate, error)
	FindUpdatedSince(ctx context.Context, since time.Time) ([]model.MandiRate, error)
	Save(ctx context.Context, rate *model.MandiRate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mandiRateRepository struct {
	collection *mongo.Collection
}

func NewMandiRateRepository(db *mongo.Database) MandiRateRepository {
	return &mandiRateRepository{
		collection: db.Collection("mandirates"),
	}
}

func (r *mandiRateRepository) Find(ctx context.Context, filter RateFilter) ([]model.MandiRate, error) {
	query := bson.M{}
	if filter.StateID != nil {
		query["state"] = *filter.StateID
	}
	if filter.MandiRegex != "" {
		query["mandi"] = bson.M{"$regex": regexp.QuoteMeta(filter.MandiRegex), "$options": "i"}
	}
	return database.FindGeneric[model.MandiRate](ctx, r.collection, query)
}

func (r *mandiRateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MandiRate, error) {
	var rate model.MandiRate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *mandiRateRepository) FindByStateAndMandi(ctx context.Context, stateID primitive.ObjectID, mandiKey string) (*model.MandiRate, error) {
	var rate model.MandiRate
	err := r.collection.FindOne(ctx, bson.M{"state": stateID, "mandi_key": mandiKey}).Decode(&rate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *mandiRateRepository) FindByMandiKey(ctx context.Context, mandiKey string) (*model.MandiRate, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	var rate model.MandiRate
	err := r.collection.FindOne(ctx, bson.M{"mandi_key": mandiKey}, opts).Decode(&rate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *mandiRateRepository) FindUpdatedSince(ctx context.Context, since time.Time) ([]model.MandiRate, error) {
	return database.FindGeneric[model.MandiRate](ctx, r.collection, bson.M{
		"updatedAt": bson.M{"$gte": since},
	})
}

// Save upserts the record by id. The duplicate-date invariant is enforced
// here as a last-resort guard even when the service already checked.
func (r *mandiRateRepository) Save(ctx context.Context, rate *model.MandiRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if rate.ID.IsZero() {
		rate.ID = primitive.NewObjectID()
		rate.CreatedAt = now
	}
	rate.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rate.ID}, rate, opts)
	return err
}

func (r *mandiRateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
