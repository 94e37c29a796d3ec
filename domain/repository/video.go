package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

// VideoFilter narrows List to an owner and/or published videos. Query is a
// case-insensitive substring match over title and description.
type VideoFilter struct {
	Owner         *bson.ObjectID
	PublishedOnly bool
	Query         string
}

// VideoUpdate is a partial $set; nil fields are left untouched.
type VideoUpdate struct {
	Title       *string
	Description *string
	IsPublished *bool
	Thumbnail   *string
}

type IVideo interface {
	Create(ctx context.Context, video model.Video) (*model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	// GetDetail joins owner, like/comment counters, and the viewer's
	// like/subscription state in one aggregation.
	GetDetail(ctx context.Context, id, viewer bson.ObjectID) (*model.VideoDetail, error)
	Update(ctx context.Context, id bson.ObjectID, update VideoUpdate) (*model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	List(ctx context.Context, filter VideoFilter, page dto.PageRequest) ([]model.VideoWithOwner, int64, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
	// ExistingIDs returns the subset of ids that reference real videos.
	ExistingIDs(ctx context.Context, ids []bson.ObjectID) ([]bson.ObjectID, error)

	IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error)
}
