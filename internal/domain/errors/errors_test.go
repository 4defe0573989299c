package errors

import (
	"net/http"
	"testing"

	"nomad/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInvalidTransition.WithDetails("notification already processed")

	assert.True(t, errors.Is(detailed, ErrInvalidTransition))
	assert.True(t, errors.Is(errors.Wrap(detailed, "mark read"), ErrInvalidTransition))
	assert.False(t, errors.Is(detailed, ErrInvalidMessage))
	assert.Contains(t, detailed.Error(), "already processed")
}

func TestDatabaseExecuteError_IsStoreUnavailable(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to append message")

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "failed to append message", err.Details())
}
