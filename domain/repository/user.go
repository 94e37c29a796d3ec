package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

// IUser is the users collection. GetChannelProfile and GetWatchHistory are the
// joined read views; viewer may be the zero ObjectID for anonymous reads.
type IUser interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	UpdateRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (*model.User, error)

	// AddToWatchHistory is a set-add: watching the same video twice keeps a
	// single history entry.
	AddToWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.VideoWithOwner, error)

	GetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*model.ChannelProfile, error)
}
