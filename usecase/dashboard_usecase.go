package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

// IStatsCache is the optional short-TTL cache in front of the dashboard
// aggregate. Implementations must be nil-receiver safe.
type IStatsCache interface {
	GetStats(ctx context.Context, channelID string) (*dto.DashboardStats, bool)
	SetStats(ctx context.Context, channelID string, stats *dto.DashboardStats)
}

type IDashboardUsecase interface {
	Stats(ctx context.Context, channelID string) (*dto.DashboardStats, error)
	Videos(ctx context.Context, channelID string) ([]model.Video, error)
}

type dashboardUsecase struct {
	userRepo  repository.IUser
	videoRepo repository.IVideo
	subRepo   repository.ISubscription
	likeRepo  repository.ILike
	cache     IStatsCache
}

func NewDashboardUsecase(
	userRepo repository.IUser,
	videoRepo repository.IVideo,
	subRepo repository.ISubscription,
	likeRepo repository.ILike,
	cache IStatsCache,
) IDashboardUsecase {
	return &dashboardUsecase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
		subRepo:   subRepo,
		likeRepo:  likeRepo,
		cache:     cache,
	}
}

// Stats assembles the channel dashboard. The three base reads touch disjoint
// collections and run concurrently; the like count needs the video ids and
// follows.
func (u *dashboardUsecase) Stats(ctx context.Context, channelID string) (*dto.DashboardStats, error) {
	channel, err := parseObjectID(channelID, "user id")
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if stats, ok := u.cache.GetStats(ctx, channelID); ok {
			return stats, nil
		}
	}

	var (
		owner       *model.User
		videos      []model.Video
		subscribers int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := u.userRepo.GetByID(gctx, channel)
		if err != nil {
			return notFoundOr(err, "Channel does not exist")
		}
		owner = user
		return nil
	})
	g.Go(func() error {
		rows, err := u.videoRepo.ListByOwner(gctx, channel)
		if err != nil {
			return err
		}
		videos = rows
		return nil
	})
	g.Go(func() error {
		count, err := u.subRepo.CountSubscribers(gctx, channel)
		if err != nil {
			return err
		}
		subscribers = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	videoIDs := make([]bson.ObjectID, len(videos))
	var totalViews int64
	for i, v := range videos {
		videoIDs[i] = v.ID
		totalViews += v.Views
	}
	totalLikes, err := u.likeRepo.CountByVideoIDs(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		Channel: dto.DashboardChannel{
			ID:         owner.ID,
			Username:   owner.Username,
			FullName:   owner.FullName,
			Avatar:     owner.Avatar,
			CoverImage: owner.CoverImage,
		},
		TotalSubscribers: subscribers,
		TotalVideos:      int64(len(videos)),
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
	}
	if u.cache != nil {
		u.cache.SetStats(ctx, channelID, stats)
	}
	return stats, nil
}

// Videos lists every video of the channel, drafts included; the dashboard is
// owner-only so visibility filtering does not apply.
func (u *dashboardUsecase) Videos(ctx context.Context, channelID string) ([]model.Video, error) {
	channel, err := parseObjectID(channelID, "user id")
	if err != nil {
		return nil, err
	}
	return u.videoRepo.ListByOwner(ctx, channel)
}
