package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func RequireSession(s *models.Session) error {
	if s == nil {
		return apperr.Unauthenticated("Authentication required")
	}
	return nil
}

func RequireAdmin(s *models.Session) error {
	if err := RequireSession(s); err != nil {
		return err
	}
	if !s.IsAdmin() {
		return apperr.Forbidden("Admin access required")
	}
	return nil
}

// CanViewInquiry allows admins and the submitter. The submitter is matched by
// email, so a signed in user also sees inquiries sent anonymously from the
// same address.
func CanViewInquiry(s *models.Session, inquiry *models.Inquiry) error {
	if err := RequireSession(s); err != nil {
		return err
	}
	if s.IsAdmin() || s.OwnsEmail(inquiry.Email) {
		return nil
	}
	return apperr.Forbidden("You do not have access to this inquiry")
}

func CanReplyInquiry(s *models.Session, inquiry *models.Inquiry) error {
	return CanViewInquiry(s, inquiry)
}

// CanManageInquiry covers status changes and deletion.
func CanManageInquiry(s *models.Session) error {
	return RequireAdmin(s)
}

func CanDeleteUser(s *models.Session, target primitive.ObjectID) error {
	if err := RequireAdmin(s); err != nil {
		return err
	}
	if s.UserID == target {
		return apperr.Forbidden("You cannot delete your own account")
	}
	return nil
}
