package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

// ISubscription mirrors the toggle contract of ILike for the
// (subscriber, channel) relation.
type ISubscription interface {
	Add(ctx context.Context, subscriber, channel bson.ObjectID) error
	Remove(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error)

	CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error)

	ListSubscribers(ctx context.Context, channel, viewer bson.ObjectID) ([]model.SubscriberInfo, error)
	ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.OwnerSummary, error)
}
