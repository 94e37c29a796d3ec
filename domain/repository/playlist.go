package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	// AddVideo appends without duplicating; RemoveVideo is a no-op-safe pull.
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) error

	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.PlaylistSummary, error)
}
