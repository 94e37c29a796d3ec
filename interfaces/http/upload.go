package http

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
)

// stageFormFile copies an optional multipart file to the staging directory and
// returns its local path, or "" when the field is absent. Callers own the
// staged file and remove it when done.
func stageFormFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	path := filepath.Join(configuration.C.Upload.TempDir,
		fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// removeStaged deletes a staged upload; a failure only leaks a temp file.
func removeStaged(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err, "path": path,
		}).Warn("staged upload cleanup failed")
	}
}
