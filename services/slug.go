package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/store"
)

const maxSlugAttempts = 50

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug: "Nice House!!" becomes "nice-house".
// Accented Latin letters are folded to ASCII first.
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}
	s := strings.ToLower(folded)
	s = slugInvalid.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func slugCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}

// claimSlug writes with base, then base-1, base-2 and so on until write stops
// failing on the slug index. The unique index decides every race.
func claimSlug(ctx context.Context, base, index string, write func(ctx context.Context, slug string) error) (string, error) {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug := slugCandidate(base, attempt)
		err := write(ctx, slug)
		if err == nil {
			return slug, nil
		}
		if dup, ok := store.DuplicateIndex(err); ok && dup == index {
			continue
		}
		return "", err
	}
	return "", apperr.Conflict("Could not generate a unique slug")
}
