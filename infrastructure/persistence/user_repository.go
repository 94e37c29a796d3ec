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

// UserRepository is the MongoDB implementation of repository.IUser.
type UserRepository struct {
	coll   *mongo.Collection
	videos *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{
		coll:   db.Collection(CollUsers),
		videos: db.Collection(CollVideos),
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	now := utils.GetCurrentTime()
	user.CreatedAt = now
	user.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert user failed")
		return nil, mapErr(err)
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	var u model.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, mapErr(err)
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	update := bson.M{
		"$set": bson.M{"refreshToken": token, "updatedAt": utils.GetCurrentTime()},
	}
	if token == "" {
		update = bson.M{
			"$unset": bson.M{"refreshToken": ""},
			"$set":   bson.M{"updatedAt": utils.GetCurrentTime()},
		}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"password": passwordHash, "updatedAt": utils.GetCurrentTime()},
	})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error) {
	set := bson.M{"updatedAt": utils.GetCurrentTime()}
	if fullName != "" {
		set["fullName"] = fullName
	}
	if email != "" {
		set["email"] = email
	}
	return r.findByIDAndSet(ctx, id, set)
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (*model.User, error) {
	return r.findByIDAndSet(ctx, id, bson.M{"avatar": url, "updatedAt": utils.GetCurrentTime()})
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (*model.User, error) {
	return r.findByIDAndSet(ctx, id, bson.M{"coverImage": url, "updatedAt": utils.GetCurrentTime()})
}

func (r *UserRepository) findByIDAndSet(ctx context.Context, id bson.ObjectID, set bson.M) (*model.User, error) {
	var u model.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		findOneAndUpdateReturnAfter()).Decode(&u)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *UserRepository) AddToWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	// $addToSet keeps the stored sequence duplicate-free even under
	// concurrent watches.
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"watchHistory": videoID},
		"$set":      bson.M{"updatedAt": utils.GetCurrentTime()},
	})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.VideoWithOwner, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.WatchHistory) == 0 {
		return []model.VideoWithOwner{}, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": user.WatchHistory}}}},
		lookupOwnerStage(),
		unwindOwnerStage(),
	}
	cursor, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: watch history aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var rows []model.VideoWithOwner
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mapErr(err)
	}

	// Restore the stored watch order; $in does not preserve it.
	byID := make(map[bson.ObjectID]model.VideoWithOwner, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]model.VideoWithOwner, 0, len(rows))
	for _, id := range user.WatchHistory {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

func (r *UserRepository) GetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*model.ChannelProfile, error) {
	isSubscribed := bson.M{"$literal": false}
	if !viewer.IsZero() {
		isSubscribed = bson.M{"$in": bson.A{viewer, "$subscribers.subscriber"}}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"username": username}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollSubscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollSubscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscribersCount":          bson.M{"$size": "$subscribers"},
			"channelsSubscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed":              isSubscribed,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"username":                  1,
			"email":                     1,
			"fullName":                  1,
			"avatar":                    1,
			"coverImage":                1,
			"subscribersCount":          1,
			"channelsSubscribedToCount": 1,
			"isSubscribed":              1,
			"createdAt":                 1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: channel profile aggregation failed")
		return nil, mapErr(err)
	}
	defer closeCursor(ctx, cursor)

	var profiles []model.ChannelProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, mapErr(err)
	}
	if len(profiles) == 0 {
		return nil, repository.ErrNotFound
	}
	return &profiles[0], nil
}
