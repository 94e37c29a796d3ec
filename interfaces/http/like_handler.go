package http

import (
	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	LikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	result, err := h.likeUsecase.ToggleVideoLike(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Video like toggled successfully")
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	result, err := h.likeUsecase.ToggleCommentLike(c.Request.Context(), currentUserID(c), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Comment like toggled successfully")
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	result, err := h.likeUsecase.ToggleTweetLike(c.Request.Context(), currentUserID(c), c.Param("tweetId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Tweet like toggled successfully")
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	videos, err := h.likeUsecase.LikedVideos(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos, "Liked videos fetched successfully")
}
