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

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (*dto.ToggleResult, error)
	Subscribers(ctx context.Context, channelID, viewerID string) ([]model.SubscriberInfo, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]model.OwnerSummary, error)
}

type subscriptionUsecase struct {
	subRepo  repository.ISubscription
	userRepo repository.IUser
}

func NewSubscriptionUsecase(subRepo repository.ISubscription, userRepo repository.IUser) ISubscriptionUsecase {
	return &subscriptionUsecase{subRepo: subRepo, userRepo: userRepo}
}

// Toggle follows the same remove-first contract as likes, with the extra
// constraint that a channel cannot subscribe to itself.
func (u *subscriptionUsecase) Toggle(ctx context.Context, subscriberID, channelID string) (*dto.ToggleResult, error) {
	subscriber, err := parseObjectID(subscriberID, "user id")
	if err != nil {
		return nil, err
	}
	channel, err := parseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	if subscriber == channel {
		return nil, apperror.BadRequest("Cannot subscribe to your own channel")
	}
	if _, err := u.userRepo.GetByID(ctx, channel); err != nil {
		return nil, notFoundOr(err, "Channel does not exist")
	}

	removed, err := u.subRepo.Remove(ctx, subscriber, channel)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.ToggleResult{Active: false}, nil
	}
	if err := u.subRepo.Add(ctx, subscriber, channel); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return &dto.ToggleResult{Active: true}, nil
		}
		return nil, err
	}
	return &dto.ToggleResult{Active: true}, nil
}

func (u *subscriptionUsecase) Subscribers(ctx context.Context, channelID, viewerID string) ([]model.SubscriberInfo, error) {
	channel, err := parseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	viewer := bson.NilObjectID
	if viewerID != "" {
		viewer, err = parseObjectID(viewerID, "user id")
		if err != nil {
			return nil, err
		}
	}
	if _, err := u.userRepo.GetByID(ctx, channel); err != nil {
		return nil, notFoundOr(err, "Channel does not exist")
	}
	return u.subRepo.ListSubscribers(ctx, channel, viewer)
}

func (u *subscriptionUsecase) SubscribedChannels(ctx context.Context, subscriberID string) ([]model.OwnerSummary, error) {
	subscriber, err := parseObjectID(subscriberID, "user id")
	if err != nil {
		return nil, err
	}
	return u.subRepo.ListSubscribedChannels(ctx, subscriber)
}
