package usecase

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/repository"
)

// parseObjectID converts a request path/token id to an ObjectID, mapping
// malformed input to a 400 with the offending field name.
func parseObjectID(id, field string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return bson.NilObjectID, apperror.BadRequest("Invalid " + field)
	}
	return oid, nil
}

// notFoundOr maps repository.ErrNotFound to a 404 with the given message and
// leaves every other error for the generic 500 path.
func notFoundOr(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
