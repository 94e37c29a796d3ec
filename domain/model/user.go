package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a platform account. A user is also a channel: other users subscribe
// to it and its uploaded videos hang off the same identity.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	FullName     string          `bson:"fullName" json:"fullName"`
	Password     string          `bson:"password" json:"-"`
	Avatar       string          `bson:"avatar" json:"avatar"`
	CoverImage   string          `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	RefreshToken string          `bson:"refreshToken,omitempty" json:"-"`
	WatchHistory []bson.ObjectID `bson:"watchHistory,omitempty" json:"-"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// OwnerSummary is the reduced owner projection embedded in joined views.
type OwnerSummary struct {
	ID       bson.ObjectID `bson:"_id" json:"_id"`
	Username string        `bson:"username" json:"username"`
	FullName string        `bson:"fullName" json:"fullName"`
	Avatar   string        `bson:"avatar" json:"avatar"`
}

// ChannelProfile is the public channel view with derived subscription counters.
type ChannelProfile struct {
	ID                        bson.ObjectID `bson:"_id" json:"_id"`
	Username                  string        `bson:"username" json:"username"`
	Email                     string        `bson:"email" json:"email"`
	FullName                  string        `bson:"fullName" json:"fullName"`
	Avatar                    string        `bson:"avatar" json:"avatar"`
	CoverImage                string        `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	SubscribersCount          int64         `bson:"subscribersCount" json:"subscribersCount"`
	ChannelsSubscribedToCount int64         `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool          `bson:"isSubscribed" json:"isSubscribed"`
	CreatedAt                 time.Time     `bson:"createdAt" json:"createdAt"`
}
