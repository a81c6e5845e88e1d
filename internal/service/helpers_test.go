package service_test

import (
	"testing"

	"github.com/askboard/backend/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireAppErr asserts an error carries the expected taxonomy code and status.
func requireAppErr(t *testing.T, err error, code string, status int) *apperr.Error {
	t.Helper()

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr, "expected a taxonomy error, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.Status)
	return appErr
}
