package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

var tweetSortFields = []string{"createdAt"}

type ITweetHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ListByUser(c *gin.Context)
	Feed(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.ReqContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	tweet, err := h.tweetUsecase.Create(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, tweet, "Tweet created successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	var req dto.ReqContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	tweet, err := h.tweetUsecase.Update(c.Request.Context(), currentUserID(c), c.Param("tweetId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.tweetUsecase.Delete(c.Request.Context(), currentUserID(c), c.Param("tweetId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Tweet deleted successfully")
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	page, err := dto.ParsePageRequest(
		c.Query("page"), c.Query("limit"),
		c.Query("sortBy"), c.Query("sortType"),
		"", tweetSortFields...)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.tweetUsecase.ListByUser(c.Request.Context(), c.Param("userId"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Tweets fetched successfully")
}

func (h *TweetHandler) Feed(c *gin.Context) {
	page, err := dto.ParsePageRequest(
		c.Query("page"), c.Query("limit"),
		c.Query("sortBy"), c.Query("sortType"),
		"", tweetSortFields...)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.tweetUsecase.Feed(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Tweet feed fetched successfully")
}
