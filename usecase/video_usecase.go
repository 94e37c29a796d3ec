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

type IVideoUsecase interface {
	Upload(ctx context.Context, ownerID string, req dto.ReqUploadVideo, videoPath, thumbnailPath string) (*model.Video, error)
	Update(ctx context.Context, actorID, videoID string, req dto.ReqUpdateVideo) (*model.Video, error)
	Delete(ctx context.Context, actorID, videoID string) error
	TogglePublish(ctx context.Context, actorID, videoID string) (*model.Video, error)

	Detail(ctx context.Context, viewerID, videoID string) (*model.VideoDetail, error)
	List(ctx context.Context, viewerID, ownerID string, page dto.PageRequest) (*dto.Page[model.VideoWithOwner], error)
	Watch(ctx context.Context, viewerID, videoID string) (*dto.WatchResult, error)
}

type videoUsecase struct {
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	likeRepo    repository.ILike
	userRepo    repository.IUser
	blobStore   repository.IBlobStore
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	likeRepo repository.ILike,
	userRepo repository.IUser,
	blobStore repository.IBlobStore,
) IVideoUsecase {
	return &videoUsecase{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		blobStore:   blobStore,
	}
}

func (u *videoUsecase) Upload(ctx context.Context, ownerID string, req dto.ReqUploadVideo, videoPath, thumbnailPath string) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if videoPath == "" {
		return nil, apperror.BadRequest("Video file is required")
	}
	if thumbnailPath == "" {
		return nil, apperror.BadRequest("Thumbnail file is required")
	}
	owner, err := parseObjectID(ownerID, "user id")
	if err != nil {
		return nil, err
	}

	videoBlob, err := u.blobStore.Upload(ctx, videoPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("video upload failed")
		return nil, apperror.Internal("Video upload failed")
	}
	thumbBlob, err := u.blobStore.Upload(ctx, thumbnailPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("thumbnail upload failed")
		u.cleanupBlob(ctx, videoBlob.URL)
		return nil, apperror.Internal("Thumbnail upload failed")
	}

	video, err := u.videoRepo.Create(ctx, model.Video{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		VideoFile:   videoBlob.URL,
		Thumbnail:   thumbBlob.URL,
		Duration:    videoBlob.Duration,
		IsPublished: true,
		Owner:       owner,
	})
	if err != nil {
		u.cleanupBlob(ctx, videoBlob.URL)
		u.cleanupBlob(ctx, thumbBlob.URL)
		return nil, err
	}
	return video, nil
}

func (u *videoUsecase) Update(ctx context.Context, actorID, videoID string, req dto.ReqUpdateVideo) (*model.Video, error) {
	if req.Empty() {
		return nil, apperror.BadRequest("At least one field is required")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperror.BadRequest("Title must not be empty")
	}
	video, err := u.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}

	update := repository.VideoUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsPublished: req.IsPublished,
	}
	oldThumbnail := ""
	if req.Thumbnail != nil {
		blob, err := u.blobStore.Upload(ctx, *req.Thumbnail)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("thumbnail upload failed")
			return nil, apperror.Internal("Thumbnail upload failed")
		}
		update.Thumbnail = &blob.URL
		oldThumbnail = video.Thumbnail
	}

	updated, err := u.videoRepo.Update(ctx, video.ID, update)
	if err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	if oldThumbnail != "" {
		u.cleanupBlob(ctx, oldThumbnail)
	}
	return updated, nil
}

// Delete removes the blobs and dependents best-effort, then the record itself.
// The record delete is the authoritative step; a failed cascade leaves only
// orphans that the joined views already tolerate.
func (u *videoUsecase) Delete(ctx context.Context, actorID, videoID string) error {
	video, err := u.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return err
	}

	u.cleanupBlob(ctx, video.VideoFile)
	u.cleanupBlob(ctx, video.Thumbnail)

	if _, err := u.likeRepo.DeleteByTarget(ctx, model.LikeTargetVideo, video.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("like cascade failed on video delete")
	}
	if _, err := u.commentRepo.DeleteByVideo(ctx, video.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("comment cascade failed on video delete")
	}

	if err := u.videoRepo.Delete(ctx, video.ID); err != nil {
		return notFoundOr(err, "Video does not exist")
	}
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, actorID, videoID string) (*model.Video, error) {
	video, err := u.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}
	next := !video.IsPublished
	updated, err := u.videoRepo.Update(ctx, video.ID, repository.VideoUpdate{IsPublished: &next})
	if err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	return updated, nil
}

func (u *videoUsecase) Detail(ctx context.Context, viewerID, videoID string) (*model.VideoDetail, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	viewer, err := optionalViewer(viewerID)
	if err != nil {
		return nil, err
	}
	detail, err := u.videoRepo.GetDetail(ctx, id, viewer)
	if err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	if !detail.IsPublished && detail.Owner != viewer {
		return nil, apperror.Forbidden("Video is not published")
	}
	return detail, nil
}

// List returns published videos only, except when the caller filters by their
// own channel, which also surfaces their drafts.
func (u *videoUsecase) List(ctx context.Context, viewerID, ownerID string, page dto.PageRequest) (*dto.Page[model.VideoWithOwner], error) {
	filter := repository.VideoFilter{PublishedOnly: true, Query: page.Query}
	if ownerID != "" {
		owner, err := parseObjectID(ownerID, "user id")
		if err != nil {
			return nil, err
		}
		filter.Owner = &owner
		if viewerID == ownerID {
			filter.PublishedOnly = false
		}
	}
	rows, total, err := u.videoRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	result := dto.NewPage(page, total, rows)
	return &result, nil
}

// Watch bumps the view counter and set-adds the video to the viewer's watch
// history. Watching twice counts two views but keeps one history entry.
func (u *videoUsecase) Watch(ctx context.Context, viewerID, videoID string) (*dto.WatchResult, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	viewer, err := parseObjectID(viewerID, "user id")
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	if !video.IsPublished && video.Owner != viewer {
		return nil, apperror.Forbidden("Video is not published")
	}

	views, err := u.videoRepo.IncrementViews(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	historyUpdated := true
	if err := u.userRepo.AddToWatchHistory(ctx, viewer, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("watch history update failed")
		historyUpdated = false
	}
	return &dto.WatchResult{
		VideoID:             id.Hex(),
		UpdatedViews:        views,
		WatchHistoryUpdated: historyUpdated,
	}, nil
}

// ownedVideo loads the video and enforces ownership before any mutation.
func (u *videoUsecase) ownedVideo(ctx context.Context, actorID, videoID string) (*model.Video, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	if video.Owner != actor {
		return nil, apperror.Forbidden("You do not own this video")
	}
	return video, nil
}

func (u *videoUsecase) cleanupBlob(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := u.blobStore.Delete(ctx, url); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err, "url": url,
		}).Warn("blob cleanup failed")
	}
}

// optionalViewer parses a viewer id when present; anonymous viewers map to the
// zero ObjectID the repositories treat as "no viewer".
func optionalViewer(viewerID string) (bson.ObjectID, error) {
	if viewerID == "" {
		return bson.NilObjectID, nil
	}
	return parseObjectID(viewerID, "user id")
}
