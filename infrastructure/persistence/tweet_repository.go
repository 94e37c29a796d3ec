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

// TweetRepository is the MongoDB implementation of repository.ITweet.
type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{coll: db.Collection(CollTweets)}
}

func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet) (*model.Tweet, error) {
	now := utils.GetCurrentTime()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, tweet)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert tweet failed")
		return nil, mapErr(err)
	}
	tweet.ID = res.InsertedID.(bson.ObjectID)
	return &tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var t model.Tweet
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	var t model.Tweet
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": utils.GetCurrentTime()}},
		findOneAndUpdateReturnAfter()).Decode(&t)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID, page dto.PageRequest) ([]model.TweetWithOwner, int64, error) {
	return r.list(ctx, bson.M{"owner": owner}, page)
}

func (r *TweetRepository) ListAll(ctx context.Context, page dto.PageRequest) ([]model.TweetWithOwner, int64, error) {
	return r.list(ctx, bson.M{}, page)
}

func (r *TweetRepository) list(ctx context.Context, match bson.M, page dto.PageRequest) ([]model.TweetWithOwner, int64, error) {
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
		logger.GetLogger().WithField("error", err).Error("mongo: tweet listing aggregation failed")
		return nil, 0, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.TweetWithOwner
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, mapErr(err)
	}
	return rows, totalCount, nil
}
