package usecase

import (
	"context"
	"strings"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type ITweetUsecase interface {
	Create(ctx context.Context, actorID, content string) (*model.Tweet, error)
	Update(ctx context.Context, actorID, tweetID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, actorID, tweetID string) error
	ListByUser(ctx context.Context, ownerID string, page dto.PageRequest) (*dto.Page[model.TweetWithOwner], error)
	Feed(ctx context.Context, page dto.PageRequest) (*dto.Page[model.TweetWithOwner], error)
}

type tweetUsecase struct {
	tweetRepo repository.ITweet
	likeRepo  repository.ILike
}

func NewTweetUsecase(tweetRepo repository.ITweet, likeRepo repository.ILike) ITweetUsecase {
	return &tweetUsecase{tweetRepo: tweetRepo, likeRepo: likeRepo}
}

func (u *tweetUsecase) Create(ctx context.Context, actorID, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	return u.tweetRepo.Create(ctx, model.Tweet{Content: content, Owner: actor})
}

func (u *tweetUsecase) Update(ctx context.Context, actorID, tweetID, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	tweet, err := u.ownedTweet(ctx, actorID, tweetID)
	if err != nil {
		return nil, err
	}
	updated, err := u.tweetRepo.UpdateContent(ctx, tweet.ID, content)
	if err != nil {
		return nil, notFoundOr(err, "Tweet does not exist")
	}
	return updated, nil
}

func (u *tweetUsecase) Delete(ctx context.Context, actorID, tweetID string) error {
	tweet, err := u.ownedTweet(ctx, actorID, tweetID)
	if err != nil {
		return err
	}
	if _, err := u.likeRepo.DeleteByTarget(ctx, model.LikeTargetTweet, tweet.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("like cascade failed on tweet delete")
	}
	if err := u.tweetRepo.Delete(ctx, tweet.ID); err != nil {
		return notFoundOr(err, "Tweet does not exist")
	}
	return nil
}

func (u *tweetUsecase) ListByUser(ctx context.Context, ownerID string, page dto.PageRequest) (*dto.Page[model.TweetWithOwner], error) {
	owner, err := parseObjectID(ownerID, "user id")
	if err != nil {
		return nil, err
	}
	rows, total, err := u.tweetRepo.ListByOwner(ctx, owner, page)
	if err != nil {
		return nil, err
	}
	result := dto.NewPage(page, total, rows)
	return &result, nil
}

func (u *tweetUsecase) Feed(ctx context.Context, page dto.PageRequest) (*dto.Page[model.TweetWithOwner], error) {
	rows, total, err := u.tweetRepo.ListAll(ctx, page)
	if err != nil {
		return nil, err
	}
	result := dto.NewPage(page, total, rows)
	return &result, nil
}

func (u *tweetUsecase) ownedTweet(ctx context.Context, actorID, tweetID string) (*model.Tweet, error) {
	id, err := parseObjectID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Tweet does not exist")
	}
	if tweet.Owner != actor {
		return nil, apperror.Forbidden("You do not own this tweet")
	}
	return tweet, nil
}
