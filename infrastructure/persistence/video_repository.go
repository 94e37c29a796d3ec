package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/utils"
)

// VideoRepository is the MongoDB implementation of repository.IVideo.
type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{coll: db.Collection(CollVideos)}
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (*model.Video, error) {
	now := utils.GetCurrentTime()
	video.CreatedAt = now
	video.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert video failed")
		return nil, mapErr(err)
	}
	video.ID = res.InsertedID.(bson.ObjectID)
	return &video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var v model.Video
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, mapErr(err)
	}
	return &v, nil
}

func (r *VideoRepository) GetDetail(ctx context.Context, id, viewer bson.ObjectID) (*model.VideoDetail, error) {
	isLiked := bson.M{"$literal": false}
	isSubscribed := bson.M{"$literal": false}
	if !viewer.IsZero() {
		isLiked = bson.M{"$in": bson.A{viewer, "$likes.likedBy"}}
		isSubscribed = bson.M{"$in": bson.A{viewer, "$ownerSubscriptions.subscriber"}}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		lookupOwnerStage(),
		unwindOwnerStage(),
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": CollLikes,
			"let":  bson.M{"videoId": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$target", "$$videoId"}},
					bson.M{"$eq": bson.A{"$targetKind", string(model.LikeTargetVideo)}},
				}}}},
			},
			"as": "likes",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollComments,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "videoComments",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollSubscriptions,
			"localField":   "owner",
			"foreignField": "channel",
			"as":           "ownerSubscriptions",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount":          bson.M{"$size": "$likes"},
			"commentsCount":       bson.M{"$size": "$videoComments"},
			"isLikedByUser":       isLiked,
			"isSubscribedToOwner": isSubscribed,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"likes":              0,
			"videoComments":      0,
			"ownerSubscriptions": 0,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: video detail aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var details []model.VideoDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, mapErr(err)
	}
	if len(details) == 0 {
		return nil, repository.ErrNotFound
	}
	return &details[0], nil
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, update repository.VideoUpdate) (*model.Video, error) {
	set := bson.M{"updatedAt": utils.GetCurrentTime()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.IsPublished != nil {
		set["isPublished"] = *update.IsPublished
	}
	if update.Thumbnail != nil {
		set["thumbnail"] = *update.Thumbnail
	}

	var v model.Video
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		findOneAndUpdateReturnAfter()).Decode(&v)
	if err != nil {
		return nil, mapErr(err)
	}
	return &v, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) List(ctx context.Context, filter repository.VideoFilter, page dto.PageRequest) ([]model.VideoWithOwner, int64, error) {
	match := bson.M{}
	if filter.Owner != nil {
		match["owner"] = *filter.Owner
	}
	if filter.PublishedOnly {
		match["isPublished"] = true
	}
	if filter.Query != "" {
		regex := bson.M{"$regex": filter.Query, "$options": "i"}
		match["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}
	}

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
		logger.GetLogger().WithField("error", err).Error("mongo: video listing aggregation failed")
		return nil, 0, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.VideoWithOwner
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, mapErr(err)
	}
	return rows, totalCount, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var videos []model.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, mapErr(err)
	}
	return videos, nil
}

func (r *VideoRepository) ExistingIDs(ctx context.Context, ids []bson.ObjectID) ([]bson.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapErr(err)
	}
	existing := make([]bson.ObjectID, 0, len(docs))
	for _, doc := range docs {
		existing = append(existing, doc.ID)
	}
	return existing, nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error) {
	var v model.Video
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		findOneAndUpdateReturnAfter()).Decode(&v)
	if err != nil {
		return 0, mapErr(err)
	}
	return v.Views, nil
}
