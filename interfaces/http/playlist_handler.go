package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
	ListByUser(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.ReqCreatePlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	playlist, err := h.playlistUsecase.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistUsecase.Get(c.Request.Context(), currentUserID(c), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req dto.ReqUpdatePlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	playlist, err := h.playlistUsecase.Update(c.Request.Context(), currentUserID(c), c.Param("playlistId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUsecase.Delete(c.Request.Context(), currentUserID(c), c.Param("playlistId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistUsecase.AddVideo(c.Request.Context(), currentUserID(c),
		c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "Video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	if err := h.playlistUsecase.RemoveVideo(c.Request.Context(), currentUserID(c),
		c.Param("playlistId"), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Video removed from playlist successfully")
}

func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.playlistUsecase.ListByUser(c.Request.Context(), currentUserID(c), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlists, "Playlists fetched successfully")
}
