package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// mapErr folds driver errors into the repository error vocabulary.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func closeCursor(ctx context.Context, cursor *mongo.Cursor) {
	if err := cursor.Close(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
	}
}

func findOneAndUpdateReturnAfter() options.Lister[options.FindOneAndUpdateOptions] {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// lookupOwnerStage joins the owning user as ownerInfo with the reduced
// projection every joined view uses.
func lookupOwnerStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         CollUsers,
		"localField":   "owner",
		"foreignField": "_id",
		"as":           "ownerInfo",
		"pipeline": bson.A{
			bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
		},
	}}}
}

func unwindOwnerStage() bson.D {
	return bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       "$ownerInfo",
		"preserveNullAndEmptyArrays": true,
	}}}
}
