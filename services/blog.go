package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/logger"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type BlogService struct {
	blogs store.BlogStore
	now   func() time.Time
}

func NewBlogService(blogs store.BlogStore) *BlogService {
	return &BlogService{blogs: blogs, now: time.Now}
}

// List shows published posts. Admins asking for drafts see everything.
func (s *BlogService) List(ctx context.Context, session *models.Session, filter models.BlogFilter, includeDrafts bool, page models.Page) ([]models.Blog, models.Pagination, error) {
	published := true
	filter.Published = &published
	if includeDrafts && session.IsAdmin() {
		filter.Published = nil
	}
	blogs, total, err := s.blogs.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch blogs", err)
	}
	return blogs, models.NewPagination(page, total), nil
}

func (s *BlogService) Find(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Blog not found", "Failed to fetch blog")
	}
	return b, nil
}

// Get resolves a slug or id and counts a view. Drafts are only visible to admins.
func (s *BlogService) Get(ctx context.Context, session *models.Session, slugOrID string) (*models.Blog, error) {
	b, err := s.lookup(ctx, slugOrID)
	if err != nil {
		return nil, err
	}
	if !b.IsPublished && !session.IsAdmin() {
		return nil, apperr.NotFound("Blog not found")
	}
	if err := s.blogs.IncrementViews(ctx, b.ID); err != nil {
		logger.FromContext(ctx).Warn("failed to count blog view", "blog_id", b.ID.Hex(), "error", err)
	} else {
		b.Views++
	}
	return b, nil
}

func (s *BlogService) lookup(ctx context.Context, slugOrID string) (*models.Blog, error) {
	if oid, err := primitive.ObjectIDFromHex(slugOrID); err == nil {
		b, err := s.blogs.FindByID(ctx, oid)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Internal("Failed to fetch blog", err)
		}
	}
	b, err := s.blogs.FindBySlug(ctx, strings.ToLower(slugOrID))
	if err != nil {
		return nil, storeErr(err, "Blog not found", "Failed to fetch blog")
	}
	return b, nil
}

func (s *BlogService) apply(b *models.Blog, in models.BlogInput) {
	b.Title = strings.TrimSpace(in.Title)
	b.Excerpt = strings.TrimSpace(in.Excerpt)
	b.Content = in.Content
	b.CoverImage = in.CoverImage
	b.Category = in.Category
	b.Tags = normalizeTags(in.Tags)
	if in.IsPublished && b.PublishedAt == nil {
		now := s.now().UTC()
		b.PublishedAt = &now
	}
	b.IsPublished = in.IsPublished
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s *BlogService) Create(ctx context.Context, session *models.Session, in models.BlogInput) (*models.Blog, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	b := &models.Blog{AuthorID: session.UserID, CreatedAt: now, UpdatedAt: now}
	s.apply(b, in)

	base := Slugify(b.Title)
	if base == "" {
		base = "post"
	}
	if _, err := claimSlug(ctx, base, store.IndexBlogSlug, func(ctx context.Context, slug string) error {
		b.Slug = slug
		return s.blogs.Create(ctx, b)
	}); err != nil {
		return nil, storeErr(err, "Blog not found", "Failed to create blog")
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, session *models.Session, id primitive.ObjectID, in models.BlogInput) (*models.Blog, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}
	b, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	oldBase := Slugify(b.Title)
	s.apply(b, in)
	b.UpdatedAt = s.now().UTC()

	newBase := Slugify(b.Title)
	if newBase == "" {
		newBase = "post"
	}
	if newBase == oldBase {
		err = s.blogs.Replace(ctx, b)
	} else {
		_, err = claimSlug(ctx, newBase, store.IndexBlogSlug, func(ctx context.Context, slug string) error {
			b.Slug = slug
			return s.blogs.Replace(ctx, b)
		})
	}
	if err != nil {
		return nil, storeErr(err, "Blog not found", "Failed to update blog")
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, session *models.Session, id primitive.ObjectID) error {
	if err := RequireAdmin(session); err != nil {
		return err
	}
	if err := s.blogs.Delete(ctx, id); err != nil {
		return storeErr(err, "Blog not found", "Failed to delete blog")
	}
	return nil
}
