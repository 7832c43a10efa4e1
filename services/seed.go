package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

var ErrAdminExists = errors.New("admin already exists")

type SeedService struct {
	users store.UserStore
	cfg   config.SeedConfig
	now   func() time.Time
}

func NewSeedService(users store.UserStore, cfg config.SeedConfig) *SeedService {
	return &SeedService{users: users, cfg: cfg, now: time.Now}
}

// Seed creates the first admin from configuration. It refuses once any admin
// exists.
func (s *SeedService) Seed(ctx context.Context) (*models.User, error) {
	admins, err := s.users.Count(ctx, models.UserFilter{Role: models.RoleAdmin})
	if err != nil {
		return nil, apperr.Internal("Failed to check existing admins", err)
	}
	if admins > 0 {
		return nil, ErrAdminExists
	}
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil, apperr.Validation("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	hash, err := utils.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return nil, apperr.Internal("Failed to seed admin", err)
	}
	now := s.now().UTC()
	admin := &models.User{
		Name:      strings.TrimSpace(s.cfg.AdminName),
		Email:     NormalizeEmail(s.cfg.AdminEmail),
		Password:  hash,
		Phone:     s.cfg.AdminPhone,
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("A user with the seed admin email already exists")
		}
		return nil, apperr.Internal("Failed to seed admin", err)
	}
	return admin, nil
}
