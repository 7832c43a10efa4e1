package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestInquiryGate(t *testing.T) {
	inquiry := &models.Inquiry{Email: "asha@example.com"}

	requireKind(t, CanViewInquiry(nil, inquiry), apperr.KindUnauthenticated)
	assert.NoError(t, CanViewInquiry(userSession("ASHA@example.com"), inquiry))
	assert.NoError(t, CanViewInquiry(adminSession(), inquiry))
	requireKind(t, CanViewInquiry(userSession("ram@example.com"), inquiry), apperr.KindForbidden)
	requireKind(t, CanReplyInquiry(userSession("ram@example.com"), inquiry), apperr.KindForbidden)

	requireKind(t, CanManageInquiry(userSession("asha@example.com")), apperr.KindForbidden)
	assert.NoError(t, CanManageInquiry(adminSession()))
}

func TestCanDeleteUserBlocksSelfDelete(t *testing.T) {
	admin := adminSession()

	requireKind(t, CanDeleteUser(admin, admin.UserID), apperr.KindForbidden)
	assert.NoError(t, CanDeleteUser(admin, userSession("x@example.com").UserID))
	requireKind(t, CanDeleteUser(userSession("x@example.com"), admin.UserID), apperr.KindForbidden)
	requireKind(t, CanDeleteUser(nil, admin.UserID), apperr.KindUnauthenticated)
}
