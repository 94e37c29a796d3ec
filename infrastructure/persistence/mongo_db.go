package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/infrastructure/logger"
)

const (
	CollUsers         = "users"
	CollVideos        = "videos"
	CollComments      = "comments"
	CollTweets        = "tweets"
	CollPlaylists     = "playlists"
	CollLikes         = "likes"
	CollSubscriptions = "subscriptions"
)

// NewMongoDb connects a client; credentials are optional for local setups.
func NewMongoDb(host, port, user, password string) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s", host, port)
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s", user, password, host, port)
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while connecting to MongoDB")
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique constraints the toggle relations rely on.
// The compound keys close the check-then-insert race at the storage layer: a
// concurrent duplicate insert fails with a duplicate-key error instead of
// producing a second relation row.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(CollUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	likeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "likedBy", Value: 1},
			{Key: "targetKind", Value: 1},
			{Key: "target", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(CollLikes).Indexes().CreateOne(ctx, likeIndex); err != nil {
		return fmt.Errorf("likes index: %w", err)
	}

	subscriptionIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber", Value: 1},
			{Key: "channel", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(CollSubscriptions).Indexes().CreateOne(ctx, subscriptionIndex); err != nil {
		return fmt.Errorf("subscriptions index: %w", err)
	}

	listingIndexes := map[string]bson.D{
		CollVideos:   {{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
		CollComments: {{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}},
		CollTweets:   {{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	for coll, keys := range listingIndexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("%s index: %w", coll, err)
		}
	}

	return nil
}
