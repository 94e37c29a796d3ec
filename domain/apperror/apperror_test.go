package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"videotube/domain/apperror"
)

func TestFrom_PassesThroughAppErrors(t *testing.T) {
	err := apperror.NotFound("Video does not exist")
	appErr := apperror.From(err)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Video does not exist", appErr.Message)

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusCode(wrapped))
}

func TestFrom_MasksUnknownErrors(t *testing.T) {
	appErr := apperror.From(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.NotContains(t, appErr.Message, "connection")
}

func TestIsStatus(t *testing.T) {
	assert.True(t, apperror.IsStatus(apperror.Forbidden("nope"), http.StatusForbidden))
	assert.False(t, apperror.IsStatus(apperror.BadRequest("bad"), http.StatusForbidden))
}

func TestDetailsCarried(t *testing.T) {
	err := apperror.NotFound("Some videos do not exist", "a", "b")
	appErr := apperror.From(err)
	assert.Equal(t, []string{"a", "b"}, appErr.Errors)
}
