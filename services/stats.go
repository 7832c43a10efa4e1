package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type UserStats struct {
	Favorites         int64            `json:"favorites"`
	Inquiries         int64            `json:"inquiries"`
	InquiriesByStatus map[string]int64 `json:"inquiriesByStatus"`
}

type AdminStats struct {
	Users struct {
		Total  int64 `json:"total"`
		Admins int64 `json:"admins"`
		Active int64 `json:"active"`
	} `json:"users"`
	Properties struct {
		Total    int64            `json:"total"`
		Active   int64            `json:"active"`
		Featured int64            `json:"featured"`
		ByStatus map[string]int64 `json:"byStatus"`
	} `json:"properties"`
	Inquiries struct {
		Total    int64            `json:"total"`
		Unread   int64            `json:"unread"`
		ByStatus map[string]int64 `json:"byStatus"`
	} `json:"inquiries"`
	Blogs struct {
		Total     int64 `json:"total"`
		Published int64 `json:"published"`
		Drafts    int64 `json:"drafts"`
	} `json:"blogs"`
	Favorites int64 `json:"favorites"`
}

type StatsService struct {
	stores *store.Stores
}

func NewStatsService(stores *store.Stores) *StatsService {
	return &StatsService{stores: stores}
}

// counter runs independent counts concurrently and stops at the first error.
type counter struct {
	g   *errgroup.Group
	ctx context.Context
	mu  sync.Mutex
}

func newCounter(ctx context.Context) *counter {
	g, gctx := errgroup.WithContext(ctx)
	return &counter{g: g, ctx: gctx}
}

func (c *counter) count(dst *int64, fn func(ctx context.Context) (int64, error)) {
	c.g.Go(func() error {
		n, err := fn(c.ctx)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	})
}

func (c *counter) countInto(dst map[string]int64, key string, fn func(ctx context.Context) (int64, error)) {
	c.g.Go(func() error {
		n, err := fn(c.ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		dst[key] = n
		c.mu.Unlock()
		return nil
	})
}

func (c *counter) wait() error { return c.g.Wait() }

func (s *StatsService) User(ctx context.Context, session *models.Session) (*UserStats, error) {
	if err := RequireSession(session); err != nil {
		return nil, err
	}
	email := NormalizeEmail(session.Email)
	uid := session.UserID
	stats := &UserStats{InquiriesByStatus: make(map[string]int64, len(models.InquiryStatuses))}

	c := newCounter(ctx)
	c.count(&stats.Favorites, func(ctx context.Context) (int64, error) {
		return s.stores.Favorites.Count(ctx, &uid)
	})
	c.count(&stats.Inquiries, func(ctx context.Context) (int64, error) {
		return s.stores.Inquiries.Count(ctx, models.InquiryFilter{Email: email})
	})
	for _, status := range models.InquiryStatuses {
		c.countInto(stats.InquiriesByStatus, string(status), func(ctx context.Context) (int64, error) {
			return s.stores.Inquiries.Count(ctx, models.InquiryFilter{Email: email, Status: status})
		})
	}
	if err := c.wait(); err != nil {
		return nil, apperr.Internal("Failed to fetch stats", err)
	}
	return stats, nil
}

func (s *StatsService) Admin(ctx context.Context, session *models.Session) (*AdminStats, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}
	yes, no := true, false
	stats := &AdminStats{}
	stats.Properties.ByStatus = make(map[string]int64, len(models.PropertyStatuses))
	stats.Inquiries.ByStatus = make(map[string]int64, len(models.InquiryStatuses))

	users, props, inqs, blogs := s.stores.Users, s.stores.Properties, s.stores.Inquiries, s.stores.Blogs
	c := newCounter(ctx)

	c.count(&stats.Users.Total, func(ctx context.Context) (int64, error) {
		return users.Count(ctx, models.UserFilter{})
	})
	c.count(&stats.Users.Admins, func(ctx context.Context) (int64, error) {
		return users.Count(ctx, models.UserFilter{Role: models.RoleAdmin})
	})
	c.count(&stats.Users.Active, func(ctx context.Context) (int64, error) {
		return users.Count(ctx, models.UserFilter{IsActive: &yes})
	})

	c.count(&stats.Properties.Total, func(ctx context.Context) (int64, error) {
		return props.Count(ctx, models.PropertyFilter{})
	})
	c.count(&stats.Properties.Active, func(ctx context.Context) (int64, error) {
		return props.Count(ctx, models.PropertyFilter{Active: &yes})
	})
	c.count(&stats.Properties.Featured, func(ctx context.Context) (int64, error) {
		return props.Count(ctx, models.PropertyFilter{Featured: &yes})
	})
	for _, status := range models.PropertyStatuses {
		c.countInto(stats.Properties.ByStatus, string(status), func(ctx context.Context) (int64, error) {
			return props.Count(ctx, models.PropertyFilter{Status: status})
		})
	}

	c.count(&stats.Inquiries.Total, func(ctx context.Context) (int64, error) {
		return inqs.Count(ctx, models.InquiryFilter{})
	})
	c.count(&stats.Inquiries.Unread, func(ctx context.Context) (int64, error) {
		return inqs.Count(ctx, models.InquiryFilter{IsRead: &no})
	})
	for _, status := range models.InquiryStatuses {
		c.countInto(stats.Inquiries.ByStatus, string(status), func(ctx context.Context) (int64, error) {
			return inqs.Count(ctx, models.InquiryFilter{Status: status})
		})
	}

	c.count(&stats.Blogs.Total, func(ctx context.Context) (int64, error) {
		return blogs.Count(ctx, models.BlogFilter{})
	})
	c.count(&stats.Blogs.Published, func(ctx context.Context) (int64, error) {
		return blogs.Count(ctx, models.BlogFilter{Published: &yes})
	})
	c.count(&stats.Blogs.Drafts, func(ctx context.Context) (int64, error) {
		return blogs.Count(ctx, models.BlogFilter{Published: &no})
	})
	c.count(&stats.Favorites, func(ctx context.Context) (int64, error) {
		return s.stores.Favorites.Count(ctx, nil)
	})

	if err := c.wait(); err != nil {
		return nil, apperr.Internal("Failed to fetch stats", err)
	}
	return stats, nil
}
