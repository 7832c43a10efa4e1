package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type PropertyStore struct {
	locked
	properties map[primitive.ObjectID]models.Property
	seq        int64
}

func NewPropertyStore() *PropertyStore {
	return &PropertyStore{properties: map[primitive.ObjectID]models.Property{}}
}

// checkUnique must be called with the lock held.
func (s *PropertyStore) checkUnique(p *models.Property) error {
	for id, other := range s.properties {
		if id == p.ID {
			continue
		}
		if other.Slug == p.Slug {
			return &store.DuplicateError{Index: store.IndexPropertySlug}
		}
		if other.PropertyID == p.PropertyID {
			return &store.DuplicateError{Index: store.IndexPropertyCode}
		}
	}
	return nil
}

func (s *PropertyStore) Create(_ context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(property); err != nil {
		return err
	}
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	s.properties[property.ID] = clonePropertyValue(*property)
	return nil
}

func (s *PropertyStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p = clonePropertyValue(p)
	return &p, nil
}

func (s *PropertyStore) FindByCode(_ context.Context, code string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.PropertyID == code {
			p = clonePropertyValue(p)
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *PropertyStore) FindBySlug(_ context.Context, slug string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.Slug == slug {
			p = clonePropertyValue(p)
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *PropertyStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Property{}
	for _, id := range ids {
		if p, ok := s.properties[id]; ok {
			out = append(out, clonePropertyValue(p))
		}
	}
	return out, nil
}

func matchProperty(p models.Property, f models.PropertyFilter) bool {
	switch {
	case f.Active != nil && p.IsActive != *f.Active:
		return false
	case f.PropertyType != "" && p.PropertyType != f.PropertyType:
		return false
	case f.Status != "" && p.Status != f.Status:
		return false
	case f.ListingType != "" && p.ListingType != f.ListingType:
		return false
	case f.City != "" && !equalFold(p.Location.City, f.City):
		return false
	case f.District != "" && !equalFold(p.Location.District, f.District):
		return false
	case f.MinPrice != nil && p.Price < *f.MinPrice:
		return false
	case f.MaxPrice != nil && p.Price > *f.MaxPrice:
		return false
	case f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms:
		return false
	case f.Featured != nil && p.IsFeatured != *f.Featured:
		return false
	}
	if f.Search != "" {
		return contains(p.Name, f.Search) || contains(p.Description, f.Search) ||
			contains(p.PropertyID, f.Search) || contains(p.Location.City, f.Search) ||
			contains(p.Location.District, f.Search)
	}
	return true
}

func (s *PropertyStore) matching(f models.PropertyFilter) []models.Property {
	out := []models.Property{}
	for _, p := range s.properties {
		if matchProperty(p, f) {
			out = append(out, clonePropertyValue(p))
		}
	}
	sortStable(out, func(a, b models.Property) bool { return a.ID.Hex() > b.ID.Hex() })
	switch f.Sort {
	case models.SortOldest:
		sortStable(out, func(a, b models.Property) bool { return a.CreatedAt.Before(b.CreatedAt) })
	case models.SortPriceAsc:
		sortStable(out, func(a, b models.Property) bool { return a.Price < b.Price })
	case models.SortPriceDesc:
		sortStable(out, func(a, b models.Property) bool { return a.Price > b.Price })
	case models.SortViews:
		sortStable(out, func(a, b models.Property) bool { return a.Views > b.Views })
	default:
		sortStable(out, func(a, b models.Property) bool { return a.CreatedAt.After(b.CreatedAt) })
	}
	return out
}

func (s *PropertyStore) List(_ context.Context, filter models.PropertyFilter, page models.Page) ([]models.Property, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.matching(filter)
	return paginate(all, page), int64(len(all)), nil
}

func (s *PropertyStore) Count(_ context.Context, filter models.PropertyFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(filter))), nil
}

func (s *PropertyStore) Replace(_ context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[property.ID]; !ok {
		return store.ErrNotFound
	}
	if err := s.checkUnique(property); err != nil {
		return err
	}
	s.properties[property.ID] = clonePropertyValue(*property)
	return nil
}

func (s *PropertyStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.properties, id)
	return nil
}

func (s *PropertyStore) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.properties[id]; ok {
		p.Views++
		s.properties[id] = p
	}
	return nil
}

func (s *PropertyStore) Districts(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	districts := []string{}
	for _, p := range s.properties {
		d := p.Location.District
		if !p.IsActive || d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		districts = append(districts, d)
	}
	sort.Strings(districts)
	return districts, nil
}

func (s *PropertyStore) NextCode(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return 999 + s.seq, nil
}

func clonePropertyValue(p models.Property) models.Property {
	p.Images = cloneSlice(p.Images)
	p.Amenities = cloneSlice(p.Amenities)
	if p.Location.Coordinates != nil {
		c := *p.Location.Coordinates
		p.Location.Coordinates = &c
	}
	return p
}
