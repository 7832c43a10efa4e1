package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type BlogStore struct {
	locked
	blogs map[primitive.ObjectID]models.Blog
}

func NewBlogStore() *BlogStore {
	return &BlogStore{blogs: map[primitive.ObjectID]models.Blog{}}
}

func cloneBlog(b models.Blog) models.Blog {
	b.Tags = cloneSlice(b.Tags)
	return b
}

func (s *BlogStore) checkUnique(b *models.Blog) error {
	for id, other := range s.blogs {
		if id != b.ID && other.Slug == b.Slug {
			return &store.DuplicateError{Index: store.IndexBlogSlug}
		}
	}
	return nil
}

func (s *BlogStore) Create(_ context.Context, blog *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(blog); err != nil {
		return err
	}
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	s.blogs[blog.ID] = cloneBlog(*blog)
	return nil
}

func (s *BlogStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b = cloneBlog(b)
	return &b, nil
}

func (s *BlogStore) FindBySlug(_ context.Context, slug string) (*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blogs {
		if b.Slug == slug {
			b = cloneBlog(b)
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func matchBlog(b models.Blog, f models.BlogFilter) bool {
	switch {
	case f.Published != nil && b.IsPublished != *f.Published:
		return false
	case f.Category != "" && b.Category != f.Category:
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range b.Tags {
			if t == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" {
		return contains(b.Title, f.Search) || contains(b.Excerpt, f.Search) || contains(b.Content, f.Search)
	}
	return true
}

func (s *BlogStore) matching(f models.BlogFilter) []models.Blog {
	out := []models.Blog{}
	for _, b := range s.blogs {
		if matchBlog(b, f) {
			out = append(out, cloneBlog(b))
		}
	}
	sortStable(out, func(a, b models.Blog) bool { return a.CreatedAt.After(b.CreatedAt) })
	return out
}

func (s *BlogStore) List(_ context.Context, filter models.BlogFilter, page models.Page) ([]models.Blog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.matching(filter)
	return paginate(all, page), int64(len(all)), nil
}

func (s *BlogStore) Count(_ context.Context, filter models.BlogFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(filter))), nil
}

func (s *BlogStore) Replace(_ context.Context, blog *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[blog.ID]; !ok {
		return store.ErrNotFound
	}
	if err := s.checkUnique(blog); err != nil {
		return err
	}
	s.blogs[blog.ID] = cloneBlog(*blog)
	return nil
}

func (s *BlogStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.blogs, id)
	return nil
}

func (s *BlogStore) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.blogs[id]; ok {
		b.Views++
		s.blogs[id] = b
	}
	return nil
}
