package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImages(t *testing.T) {
	tests := []struct {
		name    string
		in      []Image
		primary int
	}{
		{"none flagged", []Image{{URL: "a"}, {URL: "b"}}, 0},
		{"first flagged wins", []Image{{URL: "a"}, {URL: "b", IsPrimary: true}, {URL: "c", IsPrimary: true}}, 1},
		{"single", []Image{{URL: "a", IsPrimary: true}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeImages(tt.in)
			count := 0
			for i, img := range out {
				if img.IsPrimary {
					count++
					assert.Equal(t, tt.primary, i)
				}
			}
			assert.Equal(t, 1, count)
		})
	}
	assert.Empty(t, NormalizeImages(nil))
}

func TestPropertySummaryUsesPrimaryImage(t *testing.T) {
	p := Property{
		Name:     "Lakeside Villa",
		Images:   []Image{{URL: "first"}, {URL: "cover", IsPrimary: true}},
		Location: Location{City: "Pokhara", District: "Kaski"},
	}

	s := p.Summary()
	assert.Equal(t, "cover", s.Image)
	assert.Equal(t, "Kaski", s.District)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(Page{Page: 2, Limit: 10}, 21)
	assert.Equal(t, int64(3), p.Pages)
	assert.Equal(t, int64(10), Page{Page: 2, Limit: 10}.Skip())
	assert.Equal(t, int64(0), NewPagination(Page{Page: 1, Limit: 10}, 0).Pages)
}

func TestSessionOwnsEmail(t *testing.T) {
	s := &Session{Email: "Asha@Example.com"}
	assert.True(t, s.OwnsEmail(" asha@example.com "))
	assert.False(t, s.OwnsEmail("other@example.com"))

	var anon *Session
	assert.False(t, anon.OwnsEmail("asha@example.com"))
	assert.False(t, anon.IsAdmin())
}
