package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

type IComment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	ListByVideo(ctx context.Context, videoID bson.ObjectID, page dto.PageRequest) ([]model.CommentWithOwner, int64, error)
	// DeleteByVideo removes all of a video's comments (cascade on video delete).
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) (int64, error)
}
