package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/utils"
)

// CommentRepository is the MongoDB implementation of repository.IComment.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{coll: db.Collection(CollComments)}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	now := utils.GetCurrentTime()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert comment failed")
		return nil, mapErr(err)
	}
	comment.ID = res.InsertedID.(bson.ObjectID)
	return &comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var c model.Comment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	var c model.Comment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": utils.GetCurrentTime()}},
		findOneAndUpdateReturnAfter()).Decode(&c)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page dto.PageRequest) ([]model.CommentWithOwner, int64, error) {
	match := bson.M{"video": videoID}
	totalCount, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, mapErr(err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: page.SortBy, Value: page.SortDirection()}}}},
		bson.D{{Key: "$skip", Value: page.Skip()}},
		bson.D{{Key: "$limit", Value: int64(page.Limit)}},
		lookupOwnerStage(),
		unwindOwnerStage(),
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: comment listing aggregation failed")
		return nil, 0, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.CommentWithOwner
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, mapErr(err)
	}
	return rows, totalCount, nil
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"video": videoID})
	if err != nil {
		return 0, mapErr(err)
	}
	return res.DeletedCount, nil
}
