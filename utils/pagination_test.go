package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		page, limit string
		want        models.Page
	}{
		{"", "", models.Page{Page: 1, Limit: 10}},
		{"3", "25", models.Page{Page: 3, Limit: 25}},
		{"-2", "0", models.Page{Page: 1, Limit: 10}},
		{"x", "500", models.Page{Page: 1, Limit: 100}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePagination(tt.page, tt.limit), "page=%q limit=%q", tt.page, tt.limit)
	}
}
