package handler

import (
	"errors"
	"net/http"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError is the single place service errors become HTTP responses.
// Taxonomy errors carry their own status and render as {code, message};
// anything else is a storage fault and surfaces as a bare 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	logger.Log.Error("Unhandled error reached the HTTP boundary",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "GEN-001",
		"message": "An unexpected error occurred",
	})
}
