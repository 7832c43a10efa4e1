package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/logger"
	"github.com/prajwal000/Egharbari-sub001/ratelimit"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	suspiciousLocal   = regexp.MustCompile(`^(test|fake|spam|asdf|qwerty|noreply|no-reply|example)[0-9._-]*$`)
	digitsOnlyLocal   = regexp.MustCompile(`^[0-9]+$`)
	disposableDomains = map[string]struct{}{
		"mailinator.com":    {},
		"10minutemail.com":  {},
		"guerrillamail.com": {},
		"tempmail.org":      {},
		"temp-mail.org":     {},
		"yopmail.com":       {},
		"throwawaymail.com": {},
		"trashmail.com":     {},
		"sharklasers.com":   {},
		"getnada.com":       {},
		"maildrop.cc":       {},
		"dispostable.com":   {},
		"fakeinbox.com":     {},
		"mailnesia.com":     {},
		"mintemail.com":     {},
	}
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks format, disposable domains and throwaway local parts.
func ValidateEmail(email string) error {
	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return apperr.Validation("Please provide a valid email address")
	}
	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	if _, ok := disposableDomains[domain]; ok {
		return apperr.Validation("Disposable email addresses are not allowed")
	}
	if suspiciousLocal.MatchString(local) || digitsOnlyLocal.MatchString(local) {
		return apperr.Validation("Please use your real email address")
	}
	return nil
}

// Intake guards the public contact form.
type Intake struct {
	limiter    *ratelimit.Limiter
	minFill    time.Duration
	maxFormAge time.Duration
}

func NewIntake(limiter *ratelimit.Limiter, minFill, maxFormAge time.Duration) *Intake {
	return &Intake{limiter: limiter, minFill: minFill, maxFormAge: maxFormAge}
}

// CheckTiming rejects forms filled faster than a person could, or left open
// too long. Timestamps are client reported milliseconds; zero skips the check.
func (in *Intake) CheckTiming(startedAt, submittedAt int64) error {
	if startedAt <= 0 || submittedAt <= 0 {
		return nil
	}
	elapsed := time.Duration(submittedAt-startedAt) * time.Millisecond
	switch {
	case elapsed < 0:
		return apperr.Validation("Invalid form timestamps")
	case elapsed < in.minFill:
		return apperr.Validation("Form submitted too quickly. Please try again.")
	case elapsed > in.maxFormAge:
		return apperr.Validation("Form has expired. Please refresh the page and try again.")
	}
	return nil
}

// Throttle consumes one submission for every non-empty key. Limiter backend
// failures are logged and let the submission through.
func (in *Intake) Throttle(ctx context.Context, keys ...string) error {
	if in.limiter == nil {
		return nil
	}
	var retryAfter time.Duration
	for _, key := range keys {
		if key == "" {
			continue
		}
		d, err := in.limiter.Allow(ctx, key)
		if err != nil {
			logger.FromContext(ctx).Warn("rate limiter unavailable", "error", err)
			continue
		}
		if !d.Allowed && d.RetryAfter > retryAfter {
			retryAfter = d.RetryAfter
		}
	}
	if retryAfter > 0 {
		return apperr.TooManyRequests("Too many submissions. Please try again later.", retryAfter)
	}
	return nil
}
