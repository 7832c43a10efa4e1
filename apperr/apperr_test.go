package apperr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationJoinsDetails(t *testing.T) {
	err := Validation("name is required", "email is invalid")

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "name is required; email is invalid", err.Error())
	assert.Len(t, err.Details, 2)
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading inquiry: %w", NotFound("Inquiry not found"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindForbidden))
}

func TestKindOfPlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindInternal))
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("Failed to load user", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to load user: connection reset", err.Error())
}

func TestTooManyRequestsCarriesRetryAfter(t *testing.T) {
	err := fmt.Errorf("intake: %w", TooManyRequests("Too many submissions", 90*time.Second))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, appErr.RetryAfter)
	assert.Equal(t, "too_many_requests", appErr.Kind.String())
}
