package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/infrastructure/logger"
)

// contextUserID is set by the auth middleware; empty on public routes.
const contextUserID = "user_id"

func currentUserID(c *gin.Context) string {
	return c.GetString(contextUserID)
}

func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, dto.NewResponse(http.StatusOK, data, message))
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, dto.NewResponse(http.StatusCreated, data, message))
}

// respondError is the single boundary that converts usecase errors into the
// error envelope. Non-AppError values surface as a generic 500; the cause is
// logged here, never serialized.
func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"path":  c.FullPath(),
		}).Error("request failed")
	}
	c.JSON(appErr.StatusCode, dto.NewErrorResponse(appErr.StatusCode, appErr.Message, appErr.Errors))
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, apperror.BadRequest(message))
}
