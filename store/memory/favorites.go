package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type favoriteKey struct {
	user, property primitive.ObjectID
}

type FavoriteStore struct {
	locked
	favorites map[favoriteKey]models.Favorite
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{favorites: map[favoriteKey]models.Favorite{}}
}

func (s *FavoriteStore) Insert(_ context.Context, favorite *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{favorite.UserID, favorite.PropertyID}
	if _, ok := s.favorites[key]; ok {
		return &store.DuplicateError{Index: store.IndexFavoritePair}
	}
	if favorite.ID.IsZero() {
		favorite.ID = primitive.NewObjectID()
	}
	s.favorites[key] = *favorite
	return nil
}

func (s *FavoriteStore) Delete(_ context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID, propertyID}
	if _, ok := s.favorites[key]; !ok {
		return false, nil
	}
	delete(s.favorites, key)
	return true, nil
}

func (s *FavoriteStore) Exists(_ context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.favorites[favoriteKey{userID, propertyID}]
	return ok, nil
}

func (s *FavoriteStore) ListByUser(_ context.Context, userID primitive.ObjectID, page models.Page) ([]models.Favorite, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := []models.Favorite{}
	for k, f := range s.favorites {
		if k.user == userID {
			all = append(all, f)
		}
	}
	sortStable(all, func(a, b models.Favorite) bool { return a.ID.Hex() > b.ID.Hex() })
	sortStable(all, func(a, b models.Favorite) bool { return a.CreatedAt.After(b.CreatedAt) })
	return paginate(all, page), int64(len(all)), nil
}

func (s *FavoriteStore) Count(_ context.Context, userID *primitive.ObjectID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if userID == nil {
		return int64(len(s.favorites)), nil
	}
	var n int64
	for k := range s.favorites {
		if k.user == *userID {
			n++
		}
	}
	return n, nil
}

func (s *FavoriteStore) DeleteByProperty(_ context.Context, propertyID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.favorites {
		if k.property == propertyID {
			delete(s.favorites, k)
		}
	}
	return nil
}
