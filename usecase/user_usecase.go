package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type IUserUsecase interface {
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	UpdateAccount(ctx context.Context, userID string, req dto.ReqUpdateAccount) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID, localPath string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*model.User, error)
	ChannelProfile(ctx context.Context, username, viewerID string) (*model.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error)
}

type userUsecase struct {
	userRepo  repository.IUser
	blobStore repository.IBlobStore
}

func NewUserUsecase(userRepo repository.IUser, blobStore repository.IBlobStore) IUserUsecase {
	return &userUsecase{userRepo: userRepo, blobStore: blobStore}
}

func (u *userUsecase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User does not exist")
	}
	user.Password = ""
	return user, nil
}

func (u *userUsecase) UpdateAccount(ctx context.Context, userID string, req dto.ReqUpdateAccount) (*model.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if fullName == "" || email == "" {
		return nil, apperror.BadRequest("All fields are required")
	}
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.UpdateAccount(ctx, id, fullName, email)
	if err != nil {
		return nil, notFoundOr(err, "User does not exist")
	}
	return user, nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID, localPath string) (*model.User, error) {
	return u.updateImage(ctx, userID, localPath, "Avatar file is required",
		func(user *model.User) string { return user.Avatar },
		u.userRepo.UpdateAvatar)
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, userID, localPath string) (*model.User, error) {
	return u.updateImage(ctx, userID, localPath, "Cover image file is required",
		func(user *model.User) string { return user.CoverImage },
		u.userRepo.UpdateCoverImage)
}

// updateImage uploads the replacement blob, swaps the URL, and then deletes
// the previous blob best-effort.
func (u *userUsecase) updateImage(
	ctx context.Context,
	userID, localPath, missingMsg string,
	current func(*model.User) string,
	persist func(context.Context, bson.ObjectID, string) (*model.User, error),
) (*model.User, error) {
	if localPath == "" {
		return nil, apperror.BadRequest(missingMsg)
	}
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User does not exist")
	}
	oldURL := current(user)

	blob, err := u.blobStore.Upload(ctx, localPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("image upload failed")
		return nil, apperror.Internal("Image upload failed")
	}
	updated, err := persist(ctx, id, blob.URL)
	if err != nil {
		return nil, notFoundOr(err, "User does not exist")
	}

	if oldURL != "" {
		if err := u.blobStore.Delete(ctx, oldURL); err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"error": err, "url": oldURL,
			}).Warn("old image blob cleanup failed")
		}
	}
	return updated, nil
}

func (u *userUsecase) ChannelProfile(ctx context.Context, username, viewerID string) (*model.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperror.BadRequest("Username is required")
	}
	viewer := bson.NilObjectID
	if viewerID != "" {
		id, err := parseObjectID(viewerID, "user id")
		if err != nil {
			return nil, err
		}
		viewer = id
	}
	profile, err := u.userRepo.GetChannelProfile(ctx, username, viewer)
	if err != nil {
		return nil, notFoundOr(err, "Channel does not exist")
	}
	return profile, nil
}

func (u *userUsecase) WatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error) {
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	return u.userRepo.GetWatchHistory(ctx, id)
}
