package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/logger"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

const (
	propertyCachePrefix = "properties"
	districtsCacheKey   = "properties:districts"
)

type PropertyService struct {
	properties store.PropertyStore
	favorites  store.FavoriteStore
	cache      *utils.Cache
	now        func() time.Time
}

// NewPropertyService takes an optional cache; nil disables caching.
func NewPropertyService(properties store.PropertyStore, favorites store.FavoriteStore, cache *utils.Cache) *PropertyService {
	return &PropertyService{properties: properties, favorites: favorites, cache: cache, now: time.Now}
}

type cachedPropertyPage struct {
	Properties []models.Property `json:"properties"`
	Total      int64             `json:"total"`
}

// List serves public listings through the cache; admin listings that include
// inactive properties always hit the store.
func (s *PropertyService) List(ctx context.Context, filter models.PropertyFilter, page models.Page) ([]models.Property, models.Pagination, error) {
	public := filter.Active != nil && *filter.Active
	var key string
	if public {
		params := filter.CacheParams()
		params["page"] = formatInt(page.Page)
		params["limit"] = formatInt(page.Limit)
		key = utils.GenerateQueryCacheKey(propertyCachePrefix, params)

		var cached cachedPropertyPage
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.FromContext(ctx).Warn("property cache read failed", "key", key, "error", err)
		}
		if hit && err == nil {
			return cached.Properties, models.NewPagination(page, cached.Total), nil
		}
	}

	properties, total, err := s.properties.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, apperr.Internal("Failed to fetch properties", err)
	}
	if public {
		if err := s.cache.SetJSON(ctx, key, cachedPropertyPage{Properties: properties, Total: total}); err != nil {
			logger.FromContext(ctx).Warn("property cache write failed", "key", key, "error", err)
		}
	}
	return properties, models.NewPagination(page, total), nil
}

func (s *PropertyService) Districts(ctx context.Context) ([]string, error) {
	var districts []string
	hit, err := s.cache.GetJSON(ctx, districtsCacheKey, &districts)
	if err != nil {
		logger.FromContext(ctx).Warn("district cache read failed", "error", err)
	}
	if hit && err == nil {
		return districts, nil
	}

	districts, err = s.properties.Districts(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch districts", err)
	}
	if err := s.cache.SetJSON(ctx, districtsCacheKey, districts); err != nil {
		logger.FromContext(ctx).Warn("district cache write failed", "error", err)
	}
	return districts, nil
}

// Find loads a property by id without counting a view.
func (s *PropertyService) Find(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "Property not found", "Failed to fetch property")
	}
	return p, nil
}

// Get resolves a slug or id and counts a view. Inactive listings are only
// visible to admins.
func (s *PropertyService) Get(ctx context.Context, session *models.Session, slugOrID string) (*models.Property, error) {
	p, err := s.lookup(ctx, slugOrID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive && !session.IsAdmin() {
		return nil, apperr.NotFound("Property not found")
	}
	if err := s.properties.IncrementViews(ctx, p.ID); err != nil {
		logger.FromContext(ctx).Warn("failed to count property view", "property_id", p.ID.Hex(), "error", err)
	} else {
		p.Views++
	}
	return p, nil
}

func (s *PropertyService) lookup(ctx context.Context, slugOrID string) (*models.Property, error) {
	if utils.IsValidObjectID(slugOrID) {
		oid, _ := primitive.ObjectIDFromHex(slugOrID)
		p, err := s.properties.FindByID(ctx, oid)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Internal("Failed to fetch property", err)
		}
	}
	if code := strings.ToUpper(slugOrID); utils.IsValidPropertyCode(code) {
		p, err := s.properties.FindByCode(ctx, code)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Internal("Failed to fetch property", err)
		}
	}
	p, err := s.properties.FindBySlug(ctx, strings.ToLower(slugOrID))
	if err != nil {
		return nil, storeErr(err, "Property not found", "Failed to fetch property")
	}
	return p, nil
}

func applyPropertyInput(p *models.Property, in models.PropertyInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.PropertyType = in.PropertyType
	p.Status = in.Status
	if p.Status == "" {
		p.Status = models.PropertyStatusAvailable
	}
	p.ListingType = in.ListingType
	p.Price = in.Price
	p.Area = in.Area
	p.AreaUnit = in.AreaUnit
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.Amenities = in.Amenities
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	p.Images = models.NormalizeImages(in.Images)
	p.Location = in.Location
	p.IsActive = in.IsActive == nil || *in.IsActive
	p.IsFeatured = in.IsFeatured
}

func (s *PropertyService) Create(ctx context.Context, session *models.Session, in models.PropertyInput) (*models.Property, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}

	code, err := s.properties.NextCode(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to create property", err)
	}
	now := s.now().UTC()
	p := &models.Property{
		PropertyID: utils.FormatPropertyCode(code),
		OwnerID:    session.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyPropertyInput(p, in)

	base := Slugify(p.Name)
	if base == "" {
		base = "property"
	}
	if _, err := claimSlug(ctx, base, store.IndexPropertySlug, func(ctx context.Context, slug string) error {
		p.Slug = slug
		return s.properties.Create(ctx, p)
	}); err != nil {
		return nil, storeErr(err, "Property not found", "Failed to create property")
	}

	s.invalidate(ctx)
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, session *models.Session, id primitive.ObjectID, in models.PropertyInput) (*models.Property, error) {
	if err := RequireAdmin(session); err != nil {
		return nil, err
	}
	p, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	oldBase := Slugify(p.Name)
	applyPropertyInput(p, in)
	p.UpdatedAt = s.now().UTC()

	newBase := Slugify(p.Name)
	if newBase == "" {
		newBase = "property"
	}
	if newBase == oldBase {
		err = s.properties.Replace(ctx, p)
	} else {
		_, err = claimSlug(ctx, newBase, store.IndexPropertySlug, func(ctx context.Context, slug string) error {
			p.Slug = slug
			return s.properties.Replace(ctx, p)
		})
	}
	if err != nil {
		return nil, storeErr(err, "Property not found", "Failed to update property")
	}

	s.invalidate(ctx)
	return p, nil
}

// Delete removes the listing and every favorite pointing at it.
func (s *PropertyService) Delete(ctx context.Context, session *models.Session, id primitive.ObjectID) error {
	if err := RequireAdmin(session); err != nil {
		return err
	}
	if err := s.properties.Delete(ctx, id); err != nil {
		return storeErr(err, "Property not found", "Failed to delete property")
	}
	if err := s.favorites.DeleteByProperty(ctx, id); err != nil {
		logger.FromContext(ctx).Warn("failed to remove favorites of deleted property", "property_id", id.Hex(), "error", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *PropertyService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, propertyCachePrefix); err != nil {
		logger.FromContext(ctx).Warn("property cache invalidation failed", "error", err)
	}
}
