package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist is an ordered, duplicate-free sequence of video references owned by
// a single user.
type Playlist struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner" json:"owner"`
	Videos      []bson.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// PlaylistSummary adds the derived video count for listing endpoints.
type PlaylistSummary struct {
	Playlist    `bson:",inline"`
	TotalVideos int `bson:"totalVideos" json:"totalVideos"`
}
