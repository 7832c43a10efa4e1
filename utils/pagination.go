package utils

import (
	"strconv"

	"github.com/prajwal000/Egharbari-sub001/models"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ParsePagination reads page and limit query values. Bad or missing values
// fall back to page 1 and the default limit; limit is capped.
func ParsePagination(pageStr, limitStr string) models.Page {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return models.Page{Page: page, Limit: limit}
}
