package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, ownerID string, req dto.ReqCreatePlaylist) (*model.Playlist, error)
	Get(ctx context.Context, actorID, playlistID string) (*model.Playlist, error)
	Update(ctx context.Context, actorID, playlistID string, req dto.ReqUpdatePlaylist) (*model.Playlist, error)
	Delete(ctx context.Context, actorID, playlistID string) error
	AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) error
	ListByUser(ctx context.Context, actorID, ownerID string) ([]model.PlaylistSummary, error)
}

type playlistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist, videoRepo repository.IVideo) IPlaylistUsecase {
	return &playlistUsecase{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

// Create is all-or-nothing over the seed videos: if any referenced video does
// not exist, nothing is created and the missing ids are reported.
func (u *playlistUsecase) Create(ctx context.Context, ownerID string, req dto.ReqCreatePlaylist) (*model.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	owner, err := parseObjectID(ownerID, "user id")
	if err != nil {
		return nil, err
	}

	seen := make(map[bson.ObjectID]struct{}, len(req.VideoIDs))
	videos := make([]bson.ObjectID, 0, len(req.VideoIDs))
	for _, raw := range req.VideoIDs {
		id, err := parseObjectID(raw, "video id")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		videos = append(videos, id)
	}

	if len(videos) > 0 {
		existing, err := u.videoRepo.ExistingIDs(ctx, videos)
		if err != nil {
			return nil, err
		}
		if len(existing) != len(videos) {
			present := make(map[bson.ObjectID]struct{}, len(existing))
			for _, id := range existing {
				present[id] = struct{}{}
			}
			missing := make([]string, 0, len(videos)-len(existing))
			for _, id := range videos {
				if _, ok := present[id]; !ok {
					missing = append(missing, id.Hex())
				}
			}
			return nil, apperror.NotFound("Some videos do not exist", missing...)
		}
	}

	return u.playlistRepo.Create(ctx, model.Playlist{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Owner:       owner,
		Videos:      videos,
	})
}

// Get is owner-only: playlists are private to their creator.
func (u *playlistUsecase) Get(ctx context.Context, actorID, playlistID string) (*model.Playlist, error) {
	return u.ownedPlaylist(ctx, actorID, playlistID)
}

func (u *playlistUsecase) Update(ctx context.Context, actorID, playlistID string, req dto.ReqUpdatePlaylist) (*model.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	playlist, err := u.ownedPlaylist(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}
	updated, err := u.playlistRepo.Update(ctx, playlist.ID, name, strings.TrimSpace(req.Description))
	if err != nil {
		return nil, notFoundOr(err, "Playlist does not exist")
	}
	return updated, nil
}

func (u *playlistUsecase) Delete(ctx context.Context, actorID, playlistID string) error {
	playlist, err := u.ownedPlaylist(ctx, actorID, playlistID)
	if err != nil {
		return err
	}
	if err := u.playlistRepo.Delete(ctx, playlist.ID); err != nil {
		return notFoundOr(err, "Playlist does not exist")
	}
	return nil
}

func (u *playlistUsecase) AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*model.Playlist, error) {
	video, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	playlist, err := u.ownedPlaylist(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, video); err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	for _, existing := range playlist.Videos {
		if existing == video {
			return nil, apperror.BadRequest("Video is already in the playlist")
		}
	}
	updated, err := u.playlistRepo.AddVideo(ctx, playlist.ID, video)
	if err != nil {
		return nil, notFoundOr(err, "Playlist does not exist")
	}
	return updated, nil
}

// RemoveVideo is no-op-safe: pulling a video that is not in the playlist
// succeeds without changing anything.
func (u *playlistUsecase) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) error {
	video, err := parseObjectID(videoID, "video id")
	if err != nil {
		return err
	}
	playlist, err := u.ownedPlaylist(ctx, actorID, playlistID)
	if err != nil {
		return err
	}
	if err := u.playlistRepo.RemoveVideo(ctx, playlist.ID, video); err != nil {
		return notFoundOr(err, "Playlist does not exist")
	}
	return nil
}

// ListByUser is owner-only like Get: the listing is denied unless the actor
// is the listed user.
func (u *playlistUsecase) ListByUser(ctx context.Context, actorID, ownerID string) ([]model.PlaylistSummary, error) {
	owner, err := parseObjectID(ownerID, "user id")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	if owner != actor {
		return nil, apperror.Forbidden("You can only list your own playlists")
	}
	return u.playlistRepo.ListByOwner(ctx, owner)
}

func (u *playlistUsecase) ownedPlaylist(ctx context.Context, actorID, playlistID string) (*model.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Playlist does not exist")
	}
	if playlist.Owner != actor {
		return nil, apperror.Forbidden("You do not own this playlist")
	}
	return playlist, nil
}
