package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

const (
	cookieAccessToken  = "accessToken"
	cookieRefreshToken = "refreshToken"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	RefreshToken(c *gin.Context)
	Logout(c *gin.Context)
	ChangePassword(c *gin.Context)
	CurrentUser(c *gin.Context)
	UpdateAccount(c *gin.Context)
	UpdateAvatar(c *gin.Context)
	UpdateCoverImage(c *gin.Context)
	ChannelProfile(c *gin.Context)
	WatchHistory(c *gin.Context)
}

type UserHandler struct {
	authUsecase usecase.IAuthUsecase
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(authUsecase usecase.IAuthUsecase, userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{authUsecase: authUsecase, userUsecase: userUsecase}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.ReqRegister
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		respondBadRequest(c, "Invalid request body")
		return
	}

	avatarPath, err := stageFormFile(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(avatarPath)
	coverPath, err := stageFormFile(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(coverPath)

	user, err := h.authUsecase.Register(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, user, "User registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		respondBadRequest(c, "Invalid request body")
		return
	}
	result, err := h.authUsecase.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookies(c, result.AccessToken, result.RefreshToken)
	respondOK(c, result, "User logged in successfully")
}

// RefreshToken accepts the refresh token from the cookie or, as a fallback,
// the request body.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(cookieRefreshToken)
	if token == "" {
		var req dto.ReqRefreshToken
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	pair, err := h.authUsecase.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookies(c, pair.AccessToken, pair.RefreshToken)
	respondOK(c, pair, "Access token refreshed")
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	clearSessionCookies(c)
	respondOK(c, nil, "User logged out successfully")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ReqChangePassword
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.authUsecase.ChangePassword(c.Request.Context(), currentUserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, err := h.userUsecase.CurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.ReqUpdateAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	user, err := h.userUsecase.UpdateAccount(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	path, err := stageFormFile(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(path)

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), currentUserID(c), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	path, err := stageFormFile(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeStaged(path)

	user, err := h.userUsecase.UpdateCoverImage(c.Request.Context(), currentUserID(c), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "Cover image updated successfully")
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := h.userUsecase.ChannelProfile(c.Request.Context(), c.Param("username"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile, "Channel profile fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	history, err := h.userUsecase.WatchHistory(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, history, "Watch history fetched successfully")
}

func setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieAccessToken, accessToken, 0, "/", "", true, true)
	c.SetCookie(cookieRefreshToken, refreshToken, 0, "/", "", true, true)
}

func clearSessionCookies(c *gin.Context) {
	c.SetCookie(cookieAccessToken, "", -1, "/", "", true, true)
	c.SetCookie(cookieRefreshToken, "", -1, "/", "", true, true)
}
