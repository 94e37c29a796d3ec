package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

// videoSortFields is the sort whitelist for video listings.
var videoSortFields = []string{"createdAt", "title", "views", "duration"}

type IVideoHandler interface {
	Upload(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
	Watch(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.ReqUploadVideo
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	videoPath, err := stageFormFile(c, "videoFile")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(videoPath)
	thumbPath, err := stageFormFile(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(thumbPath)

	video, err := h.videoUsecase.Upload(c.Request.Context(), currentUserID(c), req, videoPath, thumbPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, video, "Video uploaded successfully")
}

// Update takes a multipart form so a new thumbnail can ride along with the
// field changes; absent fields are left untouched.
func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.ReqUpdateVideo
	if title, ok := c.GetPostForm("title"); ok {
		req.Title = &title
	}
	if description, ok := c.GetPostForm("description"); ok {
		req.Description = &description
	}
	if raw, ok := c.GetPostForm("isPublished"); ok {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			respondBadRequest(c, "isPublished must be a boolean")
			return
		}
		req.IsPublished = &published
	}
	thumbPath, err := stageFormFile(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(thumbPath)
	if thumbPath != "" {
		req.Thumbnail = &thumbPath
	}

	video, err := h.videoUsecase.Update(c.Request.Context(), currentUserID(c), c.Param("videoId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUsecase.Delete(c.Request.Context(), currentUserID(c), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, video, "Publish status toggled successfully")
}

func (h *VideoHandler) Detail(c *gin.Context) {
	detail, err := h.videoUsecase.Detail(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail, "Video fetched successfully")
}

func (h *VideoHandler) List(c *gin.Context) {
	page, err := dto.ParsePageRequest(
		c.Query("page"), c.Query("limit"),
		c.Query("sortBy"), c.Query("sortType"),
		c.Query("query"), videoSortFields...)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.videoUsecase.List(c.Request.Context(), currentUserID(c), c.Query("userId"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Videos fetched successfully")
}

func (h *VideoHandler) Watch(c *gin.Context) {
	result, err := h.videoUsecase.Watch(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "View recorded successfully")
}
