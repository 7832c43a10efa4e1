package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type InquiryStore struct {
	locked
	inquiries map[primitive.ObjectID]models.Inquiry
}

func NewInquiryStore() *InquiryStore {
	return &InquiryStore{inquiries: map[primitive.ObjectID]models.Inquiry{}}
}

func cloneInquiry(i models.Inquiry) models.Inquiry {
	i.Replies = cloneSlice(i.Replies)
	return i
}

func (s *InquiryStore) Create(_ context.Context, inquiry *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inquiry.ID.IsZero() {
		inquiry.ID = primitive.NewObjectID()
	}
	if inquiry.Replies == nil {
		inquiry.Replies = []models.Reply{}
	}
	s.inquiries[inquiry.ID] = cloneInquiry(*inquiry)
	return nil
}

func (s *InquiryStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.inquiries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	i = cloneInquiry(i)
	return &i, nil
}

func matchInquiry(i models.Inquiry, f models.InquiryFilter) bool {
	switch {
	case f.Email != "" && i.Email != f.Email:
		return false
	case f.Status != "" && i.Status != f.Status:
		return false
	case f.Type != "" && i.Type != f.Type:
		return false
	case f.IsRead != nil && i.IsRead != *f.IsRead:
		return false
	}
	if f.Search != "" {
		return contains(i.Name, f.Search) || contains(i.Email, f.Search) ||
			contains(i.Subject, f.Search) || contains(i.Message, f.Search)
	}
	return true
}

func (s *InquiryStore) matching(f models.InquiryFilter) []models.Inquiry {
	out := []models.Inquiry{}
	for _, i := range s.inquiries {
		if matchInquiry(i, f) {
			out = append(out, cloneInquiry(i))
		}
	}
	sortStable(out, func(a, b models.Inquiry) bool { return a.ID.Hex() > b.ID.Hex() })
	sortStable(out, func(a, b models.Inquiry) bool { return a.CreatedAt.After(b.CreatedAt) })
	return out
}

func (s *InquiryStore) List(_ context.Context, filter models.InquiryFilter, page models.Page) ([]models.Inquiry, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.matching(filter)
	return paginate(all, page), int64(len(all)), nil
}

func (s *InquiryStore) Count(_ context.Context, filter models.InquiryFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(filter))), nil
}

func (s *InquiryStore) MarkRead(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.inquiries[id]
	if !ok {
		return store.ErrNotFound
	}
	i.IsRead = true
	s.inquiries[id] = i
	return nil
}

func (s *InquiryStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.InquiryStatus) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.inquiries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	i.Status = status
	i.UpdatedAt = time.Now().UTC()
	s.inquiries[id] = i
	out := cloneInquiry(i)
	return &out, nil
}

func (s *InquiryStore) AppendReply(_ context.Context, id primitive.ObjectID, reply models.Reply, promote bool) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.inquiries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	i.Replies = append(cloneSlice(i.Replies), reply)
	if promote && i.Status == models.InquiryStatusPending {
		i.Status = models.InquiryStatusInProgress
	}
	i.UpdatedAt = reply.CreatedAt
	s.inquiries[id] = i
	out := cloneInquiry(i)
	return &out, nil
}

func (s *InquiryStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inquiries[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.inquiries, id)
	return nil
}
