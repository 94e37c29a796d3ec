package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeTarget identifies which collection a like points into. The tagged
// variant replaces three nullable reference fields so a single unique index on
// (likedBy, targetKind, target) can hold the at-most-one-like invariant.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Valid reports whether the kind is one of the three supported targets.
func (t LikeTarget) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

// Like is a toggle relation: at most one per (likedBy, targetKind, target).
type Like struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	LikedBy    bson.ObjectID `bson:"likedBy" json:"likedBy"`
	TargetKind LikeTarget    `bson:"targetKind" json:"targetKind"`
	Target     bson.ObjectID `bson:"target" json:"target"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
