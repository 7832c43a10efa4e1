package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InquiryType string

const (
	InquiryTypeGeneral  InquiryType = "general"
	InquiryTypeProperty InquiryType = "property"
	InquiryTypeSupport  InquiryType = "support"
	InquiryTypeFeedback InquiryType = "feedback"
)

func (t InquiryType) Valid() bool {
	switch t {
	case InquiryTypeGeneral, InquiryTypeProperty, InquiryTypeSupport, InquiryTypeFeedback:
		return true
	}
	return false
}

// InquiryStatus has no enforced ordering; an admin may move an inquiry from
// any status to any other.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
	InquiryStatusClosed     InquiryStatus = "closed"
)

var InquiryStatuses = []InquiryStatus{
	InquiryStatusPending,
	InquiryStatusInProgress,
	InquiryStatusResolved,
	InquiryStatusClosed,
}

func (s InquiryStatus) Valid() bool {
	for _, v := range InquiryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

const MaxReplyLength = 2000

type Reply struct {
	Message   string    `json:"message" bson:"message"`
	IsAdmin   bool      `json:"isAdmin" bson:"isAdmin"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Inquiry struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name       string              `json:"name" bson:"name"`
	Email      string              `json:"email" bson:"email"`
	Phone      string              `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject    string              `json:"subject" bson:"subject"`
	Message    string              `json:"message" bson:"message"`
	Type       InquiryType         `json:"type" bson:"type"`
	Status     InquiryStatus       `json:"status" bson:"status"`
	PropertyID *primitive.ObjectID `json:"propertyId,omitempty" bson:"propertyId,omitempty"`
	UserID     *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	IsRead     bool                `json:"isRead" bson:"isRead"`
	Replies    []Reply             `json:"replies" bson:"replies"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type CreateInquiryRequest struct {
	Name       string      `json:"name" validate:"required,min=2,max=100"`
	Email      string      `json:"email" validate:"required,max=254"`
	Phone      string      `json:"phone" validate:"omitempty,max=20"`
	Subject    string      `json:"subject" validate:"required,min=3,max=200"`
	Message    string      `json:"message" validate:"required,min=10,max=5000"`
	Type       InquiryType `json:"type" validate:"omitempty,oneof=general property support feedback"`
	PropertyID string      `json:"propertyId" validate:"omitempty"`
	// Client-reported milliseconds since the epoch; untrusted.
	FormStartedAt   int64 `json:"formStartedAt"`
	FormSubmittedAt int64 `json:"formSubmittedAt"`
}

type UpdateInquiryStatusRequest struct {
	Status InquiryStatus `json:"status" validate:"required"`
}

type ReplyRequest struct {
	Message string `json:"message"`
}

type InquiryFilter struct {
	Status InquiryStatus
	Type   InquiryType
	IsRead *bool
	Search string
	// Email restricts the listing to one submitter. Set for non-admin callers.
	Email string
}

type PropertyInquiry struct {
	Inquiry
	Property *PropertySummary `json:"property"`
}
