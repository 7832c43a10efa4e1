package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

type UserService struct {
	users  store.UserStore
	tokens *utils.TokenManager
	now    func() time.Time
}

func NewUserService(users store.UserStore, tokens *utils.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens, now: time.Now}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to register user", err)
	}
	now := s.now().UTC()
	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     NormalizeEmail(req.Email),
		Password:  hash,
		Phone:     strings.TrimSpace(req.Phone),
		Role:      models.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("Failed to register user", err)
	}
	return s.issue(user, "User registered successfully")
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to login", err)
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	if !user.IsActive {
		return nil, apperr.Unauthenticated("Account is deactivated")
	}
	return s.issue(user, "Login successful")
}

func (s *UserService) issue(user *models.User, message string) (*models.LoginResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token", err)
	}
	return &models.LoginResponse{Message: message, Token: token, User: *user}, nil
}

func (s *UserService) Me(ctx context.Context, session *models.Session) (*models.User, error) {
	if err := RequireSession(session); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, storeErr(err, "User not found", "Failed to fetch user")
	}
	return user, nil
}

// UpdateProfile edits the caller's own account. Changing the password
// requires the current one.
func (s *UserService) UpdateProfile(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Me(ctx, session)
	if err != nil {
		return nil, err
	}

	patch := store.UserPatch{Address: req.Address}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		patch.Phone = &phone
	}
	if req.NewPassword != "" {
		if req.CurrentPassword == "" || !utils.CheckPassword(user.Password, req.CurrentPassword) {
			return nil, apperr.Validation("Current password is incorrect")
		}
		hash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			return nil, apperr.Internal("Failed to update profile", err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.users.Update(ctx, session.UserID, patch)
	if err != nil {
		return nil, storeErr(err, "User not found", "Failed to update profile")
	}
	return updated, nil
}

func (s *UserService) List(ctx context.Context, session *models.Session, filter models.UserFilter, page models.Page) ([]models.User, models.Pagination, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, models.Pagination{}, err
	}
	users, total, err := s.users.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch users", err)
	}
	return users, models.NewPagination(page, total), nil
}

func (s *UserService) Get(ctx context.Context, session *models.Session, id primitive.ObjectID) (*models.User, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "User not found", "Failed to fetch user")
	}
	return user, nil
}

func (s *UserService) AdminUpdate(ctx context.Context, session *models.Session, id primitive.ObjectID, req models.AdminUpdateUserRequest) (*models.User, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, apperr.Validation("role must be one of: user, admin")
	}
	patch := store.UserPatch{Role: req.Role, IsActive: req.IsActive}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		patch.Phone = &phone
	}
	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, storeErr(err, "User not found", "Failed to update user")
	}
	return user, nil
}

// Delete removes an account. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, session *models.Session, id primitive.ObjectID) error {
	if err := CanDeleteUser(session, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return storeErr(err, "User not found", "Failed to delete user")
	}
	return nil
}
