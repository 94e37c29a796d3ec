package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription records "subscriber follows channel". At most one row per
// (subscriber, channel); self-subscription is rejected before insert.
type Subscription struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// SubscriberInfo is a channel-subscriber listing row.
type SubscriberInfo struct {
	ID           bson.ObjectID `bson:"_id" json:"_id"`
	Username     string        `bson:"username" json:"username"`
	FullName     string        `bson:"fullName" json:"fullName"`
	Avatar       string        `bson:"avatar" json:"avatar"`
	SubscribedAt time.Time     `bson:"subscribedAt" json:"subscribedAt"`
}
