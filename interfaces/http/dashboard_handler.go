package http

import (
	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type IDashboardHandler interface {
	Stats(c *gin.Context)
	Videos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUsecase.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *gin.Context) {
	videos, err := h.dashboardUsecase.Videos(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos, "Channel videos fetched successfully")
}
