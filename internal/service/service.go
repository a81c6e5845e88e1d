package service

import (
	"errors"

	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/pkg/logger"
	"go.uber.org/zap"
)

// logWarnOrError logs business failures at Warn and everything else,
// which can only be a storage or crypto fault, at Error.
func logWarnOrError(msg string, err error, fields ...zap.Field) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		logger.Log.Warn(msg, append(fields, zap.String("code", appErr.Code))...)
		return
	}
	logger.Log.Error(msg, append(fields, zap.Error(err))...)
}
