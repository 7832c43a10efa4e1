package utils

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PropertyCodePrefix = "EGB-"

func IsValidObjectID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// IsValidPropertyCode checks the human readable listing id, EGB- followed by
// a number of at least 1000.
func IsValidPropertyCode(id string) bool {
	if !strings.HasPrefix(id, PropertyCodePrefix) {
		return false
	}
	num, err := strconv.Atoi(strings.TrimPrefix(id, PropertyCodePrefix))
	if err != nil || num < 1000 {
		return false
	}
	return true
}

func FormatPropertyCode(n int64) string {
	return fmt.Sprintf("%s%d", PropertyCodePrefix, n)
}
