package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

// ILike is the polymorphic like relation. Add relies on the unique
// (likedBy, targetKind, target) index and surfaces ErrDuplicate when a
// concurrent caller wins the insert, so the toggle never produces two rows.
type ILike interface {
	Add(ctx context.Context, actor bson.ObjectID, kind model.LikeTarget, target bson.ObjectID) error
	// Remove reports whether a relation row was actually deleted.
	Remove(ctx context.Context, actor bson.ObjectID, kind model.LikeTarget, target bson.ObjectID) (bool, error)

	CountByVideoIDs(ctx context.Context, videoIDs []bson.ObjectID) (int64, error)
	// DeleteByTarget removes every like pointing at a target (cascade).
	DeleteByTarget(ctx context.Context, kind model.LikeTarget, target bson.ObjectID) (int64, error)

	ListLikedVideos(ctx context.Context, actor bson.ObjectID) ([]model.VideoWithOwner, error)
}
