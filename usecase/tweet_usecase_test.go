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
	"videotube/usecase"
)

func newTweetUsecase() (usecase.ITweetUsecase, *MockTweetRepository, *MockLikeRepository) {
	tweetRepo := new(MockTweetRepository)
	likeRepo := new(MockLikeRepository)
	return usecase.NewTweetUsecase(tweetRepo, likeRepo), tweetRepo, likeRepo
}

func TestTweetCreate_BlankContent(t *testing.T) {
	uc, tweetRepo, _ := newTweetUsecase()

	_, err := uc.Create(context.Background(), bson.NewObjectID().Hex(), " \t ")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	tweetRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTweetUpdate_NotOwner(t *testing.T) {
	uc, tweetRepo, _ := newTweetUsecase()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()
	tweet := bson.NewObjectID()

	tweetRepo.On("GetByID", mock.Anything, tweet).
		Return(&model.Tweet{ID: tweet, Owner: owner}, nil)

	_, err := uc.Update(context.Background(), intruder.Hex(), tweet.Hex(), "edited")
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
}

func TestTweetDelete_CascadesLikes(t *testing.T) {
	uc, tweetRepo, likeRepo := newTweetUsecase()
	owner := bson.NewObjectID()
	tweet := bson.NewObjectID()

	tweetRepo.On("GetByID", mock.Anything, tweet).
		Return(&model.Tweet{ID: tweet, Owner: owner}, nil)
	likeRepo.On("DeleteByTarget", mock.Anything, model.LikeTargetTweet, tweet).
		Return(int64(1), nil)
	tweetRepo.On("Delete", mock.Anything, tweet).Return(nil)

	err := uc.Delete(context.Background(), owner.Hex(), tweet.Hex())
	assert.NoError(t, err)
	likeRepo.AssertExpectations(t)
}

func TestTweetFeed_Pagination(t *testing.T) {
	uc, tweetRepo, _ := newTweetUsecase()
	page := dto.PageRequest{Page: 2, Limit: 5, SortBy: "createdAt", SortType: dto.SortDesc}

	rows := []model.TweetWithOwner{
		{Tweet: model.Tweet{ID: bson.NewObjectID(), Content: "hello"}},
	}
	tweetRepo.On("ListAll", mock.Anything, page).Return(rows, int64(11), nil)

	result, err := uc.Feed(context.Background(), page)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, int64(3), result.TotalPages)
	assert.Equal(t, int64(11), result.TotalCount)
	assert.Len(t, result.Items, 1)
}
