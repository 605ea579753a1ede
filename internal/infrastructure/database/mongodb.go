package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDBClient wraps the driver client with connect/disconnect lifecycle.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects to MongoDB and verifies the connection.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return &MongoDBClient{Client: client}, nil
}

// Disconnect closes the connection.
func (c *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Client.Disconnect(ctx)
}

// EnsureLikeIndexes creates the indexes the like feature relies on: the unique
// natural key closes the double-insert window under concurrent toggles, and
// the count index keeps the per-toggle aggregate query cheap.
func EnsureLikeIndexes(ctx context.Context, db *mongo.Database) error {
	likes := db.Collection("user_likes")
	_, err := likes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "post_type", Value: 1},
				{Key: "post_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "post_type", Value: 1},
				{Key: "post_id", Value: 1},
				{Key: "liked", Value: 1},
			},
		},
	})
	return err
}
