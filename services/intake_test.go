package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwal000/Egharbari-sub001/apperr"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@gmail.com"))
	assert.NoError(t, ValidateEmail(" Contest.Winner@Example.org "))
	assert.NoError(t, ValidateEmail("testimonial@company.com.np"))

	for _, bad := range []string{
		"user@mailinator.com",
		"someone@yopmail.com",
		"not-an-email",
		"test@gmail.com",
		"fake123@gmail.com",
		"no-reply@company.com",
		"123456@gmail.com",
	} {
		requireKind(t, ValidateEmail(bad), apperr.KindValidation)
	}
}

func TestCheckTiming(t *testing.T) {
	in := NewIntake(nil, 3*time.Second, time.Hour)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).UnixMilli()

	assert.NoError(t, in.CheckTiming(0, 0))
	assert.NoError(t, in.CheckTiming(start, start+int64(30*time.Second/time.Millisecond)))
	requireKind(t, in.CheckTiming(start, start+1500), apperr.KindValidation)
	requireKind(t, in.CheckTiming(start, start+int64(2*time.Hour/time.Millisecond)), apperr.KindValidation)
	requireKind(t, in.CheckTiming(start, start-1), apperr.KindValidation)
}

func TestThrottleRejectsFourthSubmission(t *testing.T) {
	in := NewIntake(newTestLimiter(t), 3*time.Second, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, in.Throttle(ctx, "asha@example.com"))
	}
	err := in.Throttle(ctx, "asha@example.com")
	requireKind(t, err, apperr.KindTooManyRequests)
	appErr, _ := apperr.As(err)
	assert.Positive(t, appErr.RetryAfter)

	assert.NoError(t, in.Throttle(ctx, "ram@example.com", ""))
}
