package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Tweet is a short community post attached to a channel.
type Tweet struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string        `bson:"content" json:"content"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// TweetWithOwner is a feed row with the author joined in.
type TweetWithOwner struct {
	Tweet     `bson:",inline"`
	OwnerInfo OwnerSummary `bson:"ownerInfo" json:"ownerInfo"`
}
