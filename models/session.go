package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is the verified identity attached to a request.
type Session struct {
	UserID   primitive.ObjectID
	Email    string
	Role     Role
	IsActive bool
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// OwnsEmail reports whether the session belongs to the given address.
func (s *Session) OwnsEmail(email string) bool {
	if s == nil || s.Email == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(s.Email), strings.TrimSpace(email))
}
