package database

import (
	"context"
	"time"

	"github.com/mandilinkybl-pixel/madirate/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitMongoClient(sysConfigs *config.SystemConfigs) (*mongo.Client, *mongo.Database) {
	clientOptions := options.Client().ApplyURI(sysConfigs.Config.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Msgf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal().Msgf("Could not ping MongoDB: %v", err)
	}

	db := client.Database(sysConfigs.Config.MongoDatabase)

	if err := EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Msgf("Could not create indexes: %v", err)
	}

	log.Info().Str("database", sysConfigs.Config.MongoDatabase).Msg("Connected to MongoDB")

	return client, db
}

// EnsureIndexes creates the unique indexes backing case-insensitive name
// uniqueness (via lowercased name_key fields) and the (state, mandi)
// logical key of rate records.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("states").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name_key", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("commodities").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name_key", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("mandis").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "state", Value: 1}, {Key: "name_key", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("mandirates").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "state", Value: 1}, {Key: "mandi_key", Value: 1}},
		Options: unique,
	})
	return err
}
