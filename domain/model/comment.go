package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is a user comment on a video.
type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string        `bson:"content" json:"content"`
	Video     bson.ObjectID `bson:"video" json:"video"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CommentWithOwner is a comment listing row with the author joined in.
type CommentWithOwner struct {
	Comment   `bson:",inline"`
	OwnerInfo OwnerSummary `bson:"ownerInfo" json:"ownerInfo"`
}
