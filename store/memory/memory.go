// Package memory is an in-process implementation of the store contracts. It
// enforces the same unique indexes as the MongoDB collections and backs the
// test suites and STORE_DRIVER=memory runs.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

// New returns a fresh set of empty repositories.
func New() *store.Stores {
	return &store.Stores{
		Users:      NewUserStore(),
		Properties: NewPropertyStore(),
		Inquiries:  NewInquiryStore(),
		Favorites:  NewFavoriteStore(),
		Blogs:      NewBlogStore(),
	}
}

type locked struct {
	mu sync.RWMutex
}

func paginate[T any](items []T, page models.Page) []T {
	start := int(page.Skip())
	if start >= len(items) {
		return []T{}
	}
	end := len(items)
	if page.Limit > 0 && start+page.Limit < end {
		end = start + page.Limit
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func sortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

var (
	_ store.UserStore     = (*UserStore)(nil)
	_ store.PropertyStore = (*PropertyStore)(nil)
	_ store.InquiryStore  = (*InquiryStore)(nil)
	_ store.FavoriteStore = (*FavoriteStore)(nil)
	_ store.BlogStore     = (*BlogStore)(nil)
)
