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

// PlaylistRepository is the MongoDB implementation of repository.IPlaylist.
type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{coll: db.Collection(CollPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (*model.Playlist, error) {
	now := utils.GetCurrentTime()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, playlist)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert playlist failed")
		return nil, mapErr(err)
	}
	playlist.ID = res.InsertedID.(bson.ObjectID)
	return &playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	var p model.Playlist
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	var p model.Playlist
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":        name,
			"description": description,
			"updatedAt":   utils.GetCurrentTime(),
		}},
		findOneAndUpdateReturnAfter()).Decode(&p)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*model.Playlist, error) {
	// $addToSet guards the no-duplicates invariant even if two adds race past
	// the usecase-level membership check.
	var p model.Playlist
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"videos": videoID},
			"$set":      bson.M{"updatedAt": utils.GetCurrentTime()},
		},
		findOneAndUpdateReturnAfter()).Decode(&p)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"videos": videoID},
			"$set":  bson.M{"updatedAt": utils.GetCurrentTime()},
		})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.PlaylistSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": owner}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"totalVideos": bson.M{"$size": bson.M{"$ifNull": bson.A{"$videos", bson.A{}}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: playlist listing aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.PlaylistSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mapErr(err)
	}
	return rows, nil
}
