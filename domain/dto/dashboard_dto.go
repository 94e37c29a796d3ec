package dto

import "go.mongodb.org/mongo-driver/v2/bson"

// DashboardChannel is the condensed channel header on the stats view.
type DashboardChannel struct {
	ID         bson.ObjectID `json:"_id"`
	Username   string        `json:"username"`
	FullName   string        `json:"fullName"`
	Avatar     string        `json:"avatar"`
	CoverImage string        `json:"coverImage,omitempty"`
}

// DashboardStats aggregates a channel's reach for its owner.
type DashboardStats struct {
	Channel          DashboardChannel `json:"channel"`
	TotalSubscribers int64            `json:"totalSubscribers"`
	TotalVideos      int64            `json:"totalVideos"`
	TotalViews       int64            `json:"totalViews"`
	TotalLikes       int64            `json:"totalLikes"`
}
