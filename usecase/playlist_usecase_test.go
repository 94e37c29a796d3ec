package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/usecase"
)

func newPlaylistUsecase() (usecase.IPlaylistUsecase, *MockPlaylistRepository, *MockVideoRepository) {
	playlistRepo := new(MockPlaylistRepository)
	videoRepo := new(MockVideoRepository)
	return usecase.NewPlaylistUsecase(playlistRepo, videoRepo), playlistRepo, videoRepo
}

func TestPlaylistCreate_MissingVideosListed(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()
	owner := bson.NewObjectID()
	existing := bson.NewObjectID()
	missing := bson.NewObjectID()

	videoRepo.On("ExistingIDs", mock.Anything, []bson.ObjectID{existing, missing}).
		Return([]bson.ObjectID{existing}, nil)

	_, err := uc.Create(context.Background(), owner.Hex(), dto.ReqCreatePlaylist{
		Name:     "mix",
		VideoIDs: []string{existing.Hex(), missing.Hex()},
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	appErr := apperror.From(err)
	assert.Equal(t, []string{missing.Hex()}, appErr.Errors)
	playlistRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaylistCreate_DeduplicatesSeedVideos(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()
	owner := bson.NewObjectID()
	video := bson.NewObjectID()

	videoRepo.On("ExistingIDs", mock.Anything, []bson.ObjectID{video}).
		Return([]bson.ObjectID{video}, nil)
	playlistRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Playlist) bool {
		return len(p.Videos) == 1 && p.Videos[0] == video && p.Owner == owner
	})).Return(&model.Playlist{ID: bson.NewObjectID(), Videos: []bson.ObjectID{video}}, nil)

	playlist, err := uc.Create(context.Background(), owner.Hex(), dto.ReqCreatePlaylist{
		Name:     "mix",
		VideoIDs: []string{video.Hex(), video.Hex()},
	})
	assert.NoError(t, err)
	assert.Len(t, playlist.Videos, 1)
}

func TestPlaylistCreate_EmptyName(t *testing.T) {
	uc, _, _ := newPlaylistUsecase()

	_, err := uc.Create(context.Background(), bson.NewObjectID().Hex(), dto.ReqCreatePlaylist{Name: "   "})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
}

func TestPlaylistAddVideo_Duplicate(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()
	owner := bson.NewObjectID()
	playlist := bson.NewObjectID()
	video := bson.NewObjectID()

	playlistRepo.On("GetByID", mock.Anything, playlist).
		Return(&model.Playlist{ID: playlist, Owner: owner, Videos: []bson.ObjectID{video}}, nil)
	videoRepo.On("GetByID", mock.Anything, video).
		Return(&model.Video{ID: video}, nil)

	_, err := uc.AddVideo(context.Background(), owner.Hex(), playlist.Hex(), video.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	playlistRepo.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistAddVideo_Success(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()
	owner := bson.NewObjectID()
	playlist := bson.NewObjectID()
	video := bson.NewObjectID()

	playlistRepo.On("GetByID", mock.Anything, playlist).
		Return(&model.Playlist{ID: playlist, Owner: owner}, nil)
	videoRepo.On("GetByID", mock.Anything, video).
		Return(&model.Video{ID: video}, nil)
	playlistRepo.On("AddVideo", mock.Anything, playlist, video).
		Return(&model.Playlist{ID: playlist, Owner: owner, Videos: []bson.ObjectID{video}}, nil)

	updated, err := uc.AddVideo(context.Background(), owner.Hex(), playlist.Hex(), video.Hex())
	assert.NoError(t, err)
	assert.Len(t, updated.Videos, 1)
}

func TestPlaylistRemoveVideo_NoopWhenAbsent(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()
	owner := bson.NewObjectID()
	playlist := bson.NewObjectID()
	video := bson.NewObjectID()

	playlistRepo.On("GetByID", mock.Anything, playlist).
		Return(&model.Playlist{ID: playlist, Owner: owner}, nil)
	playlistRepo.On("RemoveVideo", mock.Anything, playlist, video).Return(nil)

	err := uc.RemoveVideo(context.Background(), owner.Hex(), playlist.Hex(), video.Hex())
	assert.NoError(t, err)
}

func TestPlaylistListByUser_OtherUserForbidden(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()

	_, err := uc.ListByUser(context.Background(), intruder.Hex(), owner.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
	playlistRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestPlaylistListByUser_Own(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()
	owner := bson.NewObjectID()

	playlistRepo.On("ListByOwner", mock.Anything, owner).
		Return([]model.PlaylistSummary{{Playlist: model.Playlist{Name: "mix"}, TotalVideos: 2}}, nil)

	playlists, err := uc.ListByUser(context.Background(), owner.Hex(), owner.Hex())
	assert.NoError(t, err)
	assert.Len(t, playlists, 1)
}

func TestPlaylistGet_NotOwner(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()
	playlist := bson.NewObjectID()

	playlistRepo.On("GetByID", mock.Anything, playlist).
		Return(&model.Playlist{ID: playlist, Owner: owner}, nil)

	_, err := uc.Get(context.Background(), intruder.Hex(), playlist.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
}

func TestPlaylistGet_Missing(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()
	playlist := bson.NewObjectID()

	playlistRepo.On("GetByID", mock.Anything, playlist).
		Return(nil, repository.ErrNotFound)

	_, err := uc.Get(context.Background(), bson.NewObjectID().Hex(), playlist.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
}
