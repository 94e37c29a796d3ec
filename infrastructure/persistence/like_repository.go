package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/utils"
)

// LikeRepository is the MongoDB implementation of repository.ILike. The
// unique (likedBy, targetKind, target) index turns a racing duplicate insert
// into ErrDuplicate instead of a second row.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{coll: db.Collection(CollLikes)}
}

func (r *LikeRepository) filter(actor bson.ObjectID, kind model.LikeTarget, target bson.ObjectID) bson.M {
	return bson.M{"likedBy": actor, "targetKind": kind, "target": target}
}

func (r *LikeRepository) Add(ctx context.Context, actor bson.ObjectID, kind model.LikeTarget, target bson.ObjectID) error {
	like := model.Like{
		LikedBy:    actor,
		TargetKind: kind,
		Target:     target,
		CreatedAt:  utils.GetCurrentTime(),
	}
	if _, err := r.coll.InsertOne(ctx, like); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, actor bson.ObjectID, kind model.LikeTarget, target bson.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, r.filter(actor, kind, target))
	if err != nil {
		return false, mapErr(err)
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) CountByVideoIDs(ctx context.Context, videoIDs []bson.ObjectID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"targetKind": model.LikeTargetVideo,
		"target":     bson.M{"$in": videoIDs},
	})
	if err != nil {
		return 0, mapErr(err)
	}
	return count, nil
}

func (r *LikeRepository) DeleteByTarget(ctx context.Context, kind model.LikeTarget, target bson.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"targetKind": kind, "target": target})
	if err != nil {
		return 0, mapErr(err)
	}
	return res.DeletedCount, nil
}

func (r *LikeRepository) ListLikedVideos(ctx context.Context, actor bson.ObjectID) ([]model.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"likedBy":    actor,
			"targetKind": model.LikeTargetVideo,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollVideos,
			"localField":   "target",
			"foreignField": "_id",
			"as":           "video",
		}}},
		// Dangling likes (video deleted since) drop out here.
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
		lookupOwnerStage(),
		unwindOwnerStage(),
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: liked videos aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.VideoWithOwner
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mapErr(err)
	}
	return rows, nil
}
