package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ILikeUsecase interface {
	ToggleVideoLike(ctx context.Context, actorID, videoID string) (*dto.ToggleResult, error)
	ToggleCommentLike(ctx context.Context, actorID, commentID string) (*dto.ToggleResult, error)
	ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*dto.ToggleResult, error)
	LikedVideos(ctx context.Context, actorID string) ([]model.VideoWithOwner, error)
}

type likeUsecase struct {
	likeRepo    repository.ILike
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	tweetRepo   repository.ITweet
}

func NewLikeUsecase(
	likeRepo repository.ILike,
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	tweetRepo repository.ITweet,
) ILikeUsecase {
	return &likeUsecase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

func (u *likeUsecase) ToggleVideoLike(ctx context.Context, actorID, videoID string) (*dto.ToggleResult, error) {
	return u.toggle(ctx, actorID, videoID, model.LikeTargetVideo)
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*dto.ToggleResult, error) {
	return u.toggle(ctx, actorID, commentID, model.LikeTargetComment)
}

func (u *likeUsecase) ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*dto.ToggleResult, error) {
	return u.toggle(ctx, actorID, tweetID, model.LikeTargetTweet)
}

// toggle is remove-first: a deleted row means the like was on and is now off.
// Otherwise we insert; losing an insert race surfaces ErrDuplicate from the
// unique index and reports the like as already on.
func (u *likeUsecase) toggle(ctx context.Context, actorID, targetID string, kind model.LikeTarget) (*dto.ToggleResult, error) {
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	target, err := parseObjectID(targetID, string(kind)+" id")
	if err != nil {
		return nil, err
	}
	if err := u.targetExists(ctx, kind, target); err != nil {
		return nil, err
	}

	removed, err := u.likeRepo.Remove(ctx, actor, kind, target)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.ToggleResult{Active: false}, nil
	}

	if err := u.likeRepo.Add(ctx, actor, kind, target); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return &dto.ToggleResult{Active: true}, nil
		}
		return nil, err
	}
	return &dto.ToggleResult{Active: true}, nil
}

func (u *likeUsecase) targetExists(ctx context.Context, kind model.LikeTarget, target bson.ObjectID) error {
	switch kind {
	case model.LikeTargetVideo:
		if _, err := u.videoRepo.GetByID(ctx, target); err != nil {
			return notFoundOr(err, "Video does not exist")
		}
	case model.LikeTargetComment:
		if _, err := u.commentRepo.GetByID(ctx, target); err != nil {
			return notFoundOr(err, "Comment does not exist")
		}
	case model.LikeTargetTweet:
		if _, err := u.tweetRepo.GetByID(ctx, target); err != nil {
			return notFoundOr(err, "Tweet does not exist")
		}
	default:
		return apperror.BadRequest("Invalid like target")
	}
	return nil
}

func (u *likeUsecase) LikedVideos(ctx context.Context, actorID string) ([]model.VideoWithOwner, error) {
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	return u.likeRepo.ListLikedVideos(ctx, actor)
}
