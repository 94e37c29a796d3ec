package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/usecase"
)

func newCommentUsecase() (usecase.ICommentUsecase, *MockCommentRepository, *MockVideoRepository, *MockLikeRepository) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	likeRepo := new(MockLikeRepository)
	return usecase.NewCommentUsecase(commentRepo, videoRepo, likeRepo), commentRepo, videoRepo, likeRepo
}

func TestCommentAdd_TrimsContent(t *testing.T) {
	uc, commentRepo, videoRepo, _ := newCommentUsecase()
	actor := bson.NewObjectID()
	video := bson.NewObjectID()

	videoRepo.On("GetByID", mock.Anything, video).
		Return(&model.Video{ID: video, IsPublished: true}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
		return c.Content == "nice video" && c.Video == video && c.Owner == actor
	})).Return(&model.Comment{ID: bson.NewObjectID(), Content: "nice video"}, nil)

	comment, err := uc.Add(context.Background(), actor.Hex(), video.Hex(), "  nice video  ")
	assert.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)
}

func TestCommentAdd_BlankContent(t *testing.T) {
	uc, commentRepo, _, _ := newCommentUsecase()

	_, err := uc.Add(context.Background(), bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), "   ")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentAdd_VideoMissing(t *testing.T) {
	uc, _, videoRepo, _ := newCommentUsecase()
	video := bson.NewObjectID()

	videoRepo.On("GetByID", mock.Anything, video).
		Return(nil, repository.ErrNotFound)

	_, err := uc.Add(context.Background(), bson.NewObjectID().Hex(), video.Hex(), "hello")
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
}

func TestCommentUpdate_NotOwner(t *testing.T) {
	uc, commentRepo, _, _ := newCommentUsecase()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()
	comment := bson.NewObjectID()

	commentRepo.On("GetByID", mock.Anything, comment).
		Return(&model.Comment{ID: comment, Owner: owner}, nil)

	_, err := uc.Update(context.Background(), intruder.Hex(), comment.Hex(), "edited")
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
	commentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentDelete_CascadesLikes(t *testing.T) {
	uc, commentRepo, _, likeRepo := newCommentUsecase()
	owner := bson.NewObjectID()
	comment := bson.NewObjectID()

	commentRepo.On("GetByID", mock.Anything, comment).
		Return(&model.Comment{ID: comment, Owner: owner}, nil)
	likeRepo.On("DeleteByTarget", mock.Anything, model.LikeTargetComment, comment).
		Return(int64(2), nil)
	commentRepo.On("Delete", mock.Anything, comment).Return(nil)

	err := uc.Delete(context.Background(), owner.Hex(), comment.Hex())
	assert.NoError(t, err)
	likeRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}
