package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type FavoriteService struct {
	favorites  store.FavoriteStore
	properties store.PropertyStore
	now        func() time.Time
}

func NewFavoriteService(favorites store.FavoriteStore, properties store.PropertyStore) *FavoriteService {
	return &FavoriteService{favorites: favorites, properties: properties, now: time.Now}
}

// SetFavorite converges (userID, propertyID) to the desired state and reports
// whether anything changed. Adding twice leaves one record; removing a
// missing favorite is a no-op.
func (s *FavoriteService) SetFavorite(ctx context.Context, userID, propertyID primitive.ObjectID, desired bool) (bool, error) {
	if !desired {
		removed, err := s.favorites.Delete(ctx, userID, propertyID)
		if err != nil {
			return false, apperr.Internal("Failed to remove favorite", err)
		}
		return removed, nil
	}

	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return false, storeErr(err, "Property not found", "Failed to verify property")
	}

	err := s.favorites.Insert(ctx, &models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  s.now().UTC(),
	})
	if errors.Is(err, store.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Internal("Failed to add favorite", err)
	}
	return true, nil
}

// IsFavorite is false for anonymous callers.
func (s *FavoriteService) IsFavorite(ctx context.Context, session *models.Session, propertyID primitive.ObjectID) (bool, error) {
	if session == nil {
		return false, nil
	}
	ok, err := s.favorites.Exists(ctx, session.UserID, propertyID)
	if err != nil {
		return false, apperr.Internal("Failed to check favorite", err)
	}
	return ok, nil
}

// List returns the user's favorites, newest first, joined with their listings.
func (s *FavoriteService) List(ctx context.Context, userID primitive.ObjectID, page models.Page) ([]models.FavoriteEntry, models.Pagination, error) {
	favorites, total, err := s.favorites.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch favorites", err)
	}

	ids := make([]primitive.ObjectID, len(favorites))
	for i, f := range favorites {
		ids[i] = f.PropertyID
	}
	properties, err := s.properties.FindByIDs(ctx, ids)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch favorites", err)
	}
	byID := make(map[primitive.ObjectID]models.PropertySummary, len(properties))
	for i := range properties {
		byID[properties[i].ID] = properties[i].Summary()
	}

	entries := make([]models.FavoriteEntry, 0, len(favorites))
	for _, f := range favorites {
		entry := models.FavoriteEntry{ID: f.ID, CreatedAt: f.CreatedAt}
		if summary, ok := byID[f.PropertyID]; ok {
			entry.Property = &summary
		}
		entries = append(entries, entry)
	}
	return entries, models.NewPagination(page, total), nil
}
