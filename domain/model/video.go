package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is an uploaded video. The file and thumbnail URLs point at the blob
// store; owner is immutable after creation.
type Video struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	VideoFile   string        `bson:"videoFile" json:"videoFile"`
	Thumbnail   string        `bson:"thumbnail" json:"thumbnail"`
	Duration    float64       `bson:"duration" json:"duration"`
	Views       int64         `bson:"views" json:"views"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	Owner       bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// VideoWithOwner is a listing row with the owner summary joined in.
type VideoWithOwner struct {
	Video     `bson:",inline"`
	OwnerInfo OwnerSummary `bson:"ownerInfo" json:"ownerInfo"`
}

// VideoDetail is the single-video view with derived engagement fields.
type VideoDetail struct {
	Video               `bson:",inline"`
	OwnerInfo           OwnerSummary `bson:"ownerInfo" json:"ownerInfo"`
	LikesCount          int64        `bson:"likesCount" json:"likesCount"`
	CommentsCount       int64        `bson:"commentsCount" json:"commentsCount"`
	IsLikedByUser       bool         `bson:"isLikedByUser" json:"isLikedByUser"`
	IsSubscribedToOwner bool         `bson:"isSubscribedToOwner" json:"isSubscribedToOwner"`
}
