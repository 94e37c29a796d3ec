package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

type ITweet interface {
	Create(ctx context.Context, tweet model.Tweet) (*model.Tweet, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	ListByOwner(ctx context.Context, owner bson.ObjectID, page dto.PageRequest) ([]model.TweetWithOwner, int64, error)
	ListAll(ctx context.Context, page dto.PageRequest) ([]model.TweetWithOwner, int64, error)
}
