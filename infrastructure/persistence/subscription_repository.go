package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/utils"
)

// SubscriptionRepository is the MongoDB implementation of
// repository.ISubscription, protected by the unique (subscriber, channel)
// index.
type SubscriptionRepository struct {
	coll *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{coll: db.Collection(CollSubscriptions)}
}

func (r *SubscriptionRepository) Add(ctx context.Context, subscriber, channel bson.ObjectID) error {
	sub := model.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  utils.GetCurrentTime(),
	}
	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *SubscriptionRepository) Remove(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"subscriber": subscriber, "channel": channel})
	if err != nil {
		return false, mapErr(err)
	}
	return res.DeletedCount > 0, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return 0, mapErr(err)
	}
	return count, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel, viewer bson.ObjectID) ([]model.SubscriberInfo, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"channel": channel}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "subscriberInfo",
		}}},
		bson.D{{Key: "$unwind", Value: "$subscriberInfo"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          "$subscriberInfo._id",
			"username":     "$subscriberInfo.username",
			"fullName":     "$subscriberInfo.fullName",
			"avatar":       "$subscriberInfo.avatar",
			"subscribedAt": "$createdAt",
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: subscriber listing aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.SubscriberInfo
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mapErr(err)
	}
	return rows, nil
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.OwnerSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"subscriber": subscriber}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channelInfo",
		}}},
		bson.D{{Key: "$unwind", Value: "$channelInfo"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$channelInfo"}}},
		bson.D{{Key: "$project", Value: bson.M{
			"username": 1,
			"fullName": 1,
			"avatar":   1,
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: subscribed channels aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.OwnerSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mapErr(err)
	}
	return rows, nil
}
