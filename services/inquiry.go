package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/events"
	"github.com/prajwal000/Egharbari-sub001/logger"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type InquiryService struct {
	inquiries  store.InquiryStore
	properties store.PropertyStore
	intake     *Intake
	publisher  events.Publisher
	now        func() time.Time
}

func NewInquiryService(inquiries store.InquiryStore, properties store.PropertyStore, intake *Intake, publisher events.Publisher) *InquiryService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &InquiryService{
		inquiries:  inquiries,
		properties: properties,
		intake:     intake,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Create stores a contact submission. clientIP is throttled alongside the
// submitter email.
func (s *InquiryService) Create(ctx context.Context, session *models.Session, req models.CreateInquiryRequest, clientIP string) (*models.Inquiry, error) {
	email := NormalizeEmail(req.Email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if s.intake != nil {
		if err := s.intake.CheckTiming(req.FormStartedAt, req.FormSubmittedAt); err != nil {
			return nil, err
		}
	}

	inquiryType := req.Type
	if inquiryType == "" {
		inquiryType = models.InquiryTypeGeneral
	}
	var propertyID *primitive.ObjectID
	if req.PropertyID != "" {
		oid, err := ParseID(req.PropertyID, "property")
		if err != nil {
			return nil, err
		}
		if _, err := s.properties.FindByID(ctx, oid); err != nil {
			return nil, storeErr(err, "Property not found", "Failed to verify property")
		}
		propertyID = &oid
		inquiryType = models.InquiryTypeProperty
	}

	if s.intake != nil {
		if err := s.intake.Throttle(ctx, "inquiry:email:"+email, ipKey(clientIP)); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	inquiry := &models.Inquiry{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		Subject:    strings.TrimSpace(req.Subject),
		Message:    strings.TrimSpace(req.Message),
		Type:       inquiryType,
		Status:     models.InquiryStatusPending,
		PropertyID: propertyID,
		Replies:    []models.Reply{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if session != nil {
		uid := session.UserID
		inquiry.UserID = &uid
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, apperr.Internal("Failed to submit inquiry", err)
	}

	ev := events.InquiryEvent{
		InquiryID: inquiry.ID.Hex(),
		Email:     inquiry.Email,
		Subject:   inquiry.Subject,
		Type:      string(inquiry.Type),
		Status:    string(inquiry.Status),
	}
	if propertyID != nil {
		ev.PropertyID = propertyID.Hex()
	}
	s.publish(ctx, events.InquiryCreated, ev)
	return inquiry, nil
}

func ipKey(ip string) string {
	if ip == "" {
		return ""
	}
	return "inquiry:ip:" + ip
}

func (s *InquiryService) load(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	inquiry, err := s.inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Inquiry not found", "Failed to fetch inquiry")
	}
	return inquiry, nil
}

// Get returns one inquiry. An admin read marks it as read.
func (s *InquiryService) Get(ctx context.Context, session *models.Session, id primitive.ObjectID) (*models.Inquiry, error) {
	if err := RequireSession(session); err != nil {
		return nil, err
	}
	inquiry, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanViewInquiry(session, inquiry); err != nil {
		return nil, err
	}
	if session.IsAdmin() && !inquiry.IsRead {
		if err := s.inquiries.MarkRead(ctx, id); err != nil {
			logger.FromContext(ctx).Warn("failed to mark inquiry read", "inquiry_id", id.Hex(), "error", err)
		} else {
			inquiry.IsRead = true
		}
	}
	return inquiry, nil
}

// List returns every inquiry for admins and the caller's own for users.
func (s *InquiryService) List(ctx context.Context, session *models.Session, filter models.InquiryFilter, page models.Page) ([]models.Inquiry, models.Pagination, error) {
	if err := RequireSession(session); err != nil {
		return nil, models.Pagination{}, err
	}
	if !session.IsAdmin() {
		filter.Email = NormalizeEmail(session.Email)
	}
	inquiries, total, err := s.inquiries.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch inquiries", err)
	}
	return inquiries, models.NewPagination(page, total), nil
}

func (s *InquiryService) ListPropertyInquiries(ctx context.Context, session *models.Session, page models.Page) ([]models.PropertyInquiry, models.Pagination, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, models.Pagination{}, err
	}
	inquiries, total, err := s.inquiries.List(ctx, models.InquiryFilter{Type: models.InquiryTypeProperty}, page)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch property inquiries", err)
	}

	ids := make([]primitive.ObjectID, 0, len(inquiries))
	for _, inq := range inquiries {
		if inq.PropertyID != nil {
			ids = append(ids, *inq.PropertyID)
		}
	}
	properties, err := s.properties.FindByIDs(ctx, ids)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch property inquiries", err)
	}
	byID := make(map[primitive.ObjectID]models.PropertySummary, len(properties))
	for i := range properties {
		byID[properties[i].ID] = properties[i].Summary()
	}

	out := make([]models.PropertyInquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		item := models.PropertyInquiry{Inquiry: inq}
		if inq.PropertyID != nil {
			if summary, ok := byID[*inq.PropertyID]; ok {
				item.Property = &summary
			}
		}
		out = append(out, item)
	}
	return out, models.NewPagination(page, total), nil
}

// UpdateStatus moves an inquiry to any status; there is no transition graph.
func (s *InquiryService) UpdateStatus(ctx context.Context, session *models.Session, id primitive.ObjectID, status models.InquiryStatus) (*models.Inquiry, error) {
	if err := CanManageInquiry(session); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperr.Validation("status must be one of: pending, in_progress, resolved, closed")
	}
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.inquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, storeErr(err, "Inquiry not found", "Failed to update inquiry")
	}
	if current.Status != status {
		s.publish(ctx, events.InquiryStatusChanged, events.StatusEvent{
			InquiryID: id.Hex(),
			Email:     updated.Email,
			From:      string(current.Status),
			To:        string(status),
		})
	}
	return updated, nil
}

// Reply appends to the thread. An admin reply to a pending inquiry moves it
// to in_progress in the same write.
func (s *InquiryService) Reply(ctx context.Context, session *models.Session, id primitive.ObjectID, message string) (*models.Inquiry, error) {
	if err := RequireSession(session); err != nil {
		return nil, err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperr.Validation("Reply message is required")
	}
	if utf8.RuneCountInString(message) > models.MaxReplyLength {
		return nil, apperr.Validation("Reply message must be at most 2000 characters")
	}

	inquiry, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanReplyInquiry(session, inquiry); err != nil {
		return nil, err
	}

	reply := models.Reply{
		Message:   message,
		IsAdmin:   session.IsAdmin(),
		CreatedAt: s.now().UTC(),
	}
	updated, err := s.inquiries.AppendReply(ctx, id, reply, reply.IsAdmin)
	if err != nil {
		return nil, storeErr(err, "Inquiry not found", "Failed to add reply")
	}

	s.publish(ctx, events.InquiryReplied, events.ReplyEvent{
		InquiryID: id.Hex(),
		Email:     updated.Email,
		IsAdmin:   reply.IsAdmin,
		Status:    string(updated.Status),
	})
	return updated, nil
}

func (s *InquiryService) Delete(ctx context.Context, session *models.Session, id primitive.ObjectID) error {
	if err := CanManageInquiry(session); err != nil {
		return err
	}
	if err := s.inquiries.Delete(ctx, id); err != nil {
		return storeErr(err, "Inquiry not found", "Failed to delete inquiry")
	}
	return nil
}

// publish never fails the request; broker errors are only logged.
func (s *InquiryService) publish(ctx context.Context, routingKey string, payload interface{}) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		logger.FromContext(ctx).Error("failed to publish event", "routing_key", routingKey, "error", err)
	}
}
