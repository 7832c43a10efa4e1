package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/ratelimit"
	"github.com/prajwal000/Egharbari-sub001/store"
	"github.com/prajwal000/Egharbari-sub001/store/memory"
)

type recordedEvent struct {
	key     string
	payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, key string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{key, payload})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.key
	}
	return out
}

func adminSession() *models.Session {
	return &models.Session{UserID: primitive.NewObjectID(), Email: "admin@egharbari.com", Role: models.RoleAdmin, IsActive: true}
}

func userSession(email string) *models.Session {
	return &models.Session{UserID: primitive.NewObjectID(), Email: email, Role: models.RoleUser, IsActive: true}
}

func newTestLimiter(t *testing.T) *ratelimit.Limiter {
	t.Helper()
	s := ratelimit.NewMemoryStore(100)
	t.Cleanup(s.Close)
	return ratelimit.New(s, 3, time.Hour)
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind.String(), apperr.KindOf(err).String(), "error: %v", err)
}

func propertyInput(name string) models.PropertyInput {
	return models.PropertyInput{
		Name:         name,
		Description:  "A bright family home close to the ring road.",
		PropertyType: models.PropertyTypeHouse,
		ListingType:  models.ListingTypeSale,
		Price:        25000000,
		Bedrooms:     4,
		Bathrooms:    3,
		Images:       []models.Image{{URL: "https://res.cloudinary.com/demo/a.jpg"}},
		Location:     models.Location{Address: "Baluwatar", City: "Kathmandu", District: "Kathmandu"},
	}
}

func seedProperty(t *testing.T, stores *store.Stores, name string) *models.Property {
	t.Helper()
	svc := NewPropertyService(stores.Properties, stores.Favorites, nil)
	p, err := svc.Create(context.Background(), adminSession(), propertyInput(name))
	require.NoError(t, err)
	return p
}

func newStores() *store.Stores {
	return memory.New()
}
