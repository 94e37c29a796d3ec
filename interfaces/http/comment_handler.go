package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

var commentSortFields = []string{"createdAt"}

type ICommentHandler interface {
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ListByVideo(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req dto.ReqContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	comment, err := h.commentUsecase.Add(c.Request.Context(), currentUserID(c), c.Param("videoId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.ReqContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	comment, err := h.commentUsecase.Update(c.Request.Context(), currentUserID(c), c.Param("commentId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentUsecase.Delete(c.Request.Context(), currentUserID(c), c.Param("commentId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Comment deleted successfully")
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	page, err := dto.ParsePageRequest(
		c.Query("page"), c.Query("limit"),
		c.Query("sortBy"), c.Query("sortType"),
		"", commentSortFields...)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.commentUsecase.ListByVideo(c.Request.Context(), c.Param("videoId"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Comments fetched successfully")
}
