package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeOffice     PropertyType = "office"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusPending   PropertyStatus = "pending"
)

var PropertyStatuses = []PropertyStatus{
	PropertyStatusAvailable,
	PropertyStatusSold,
	PropertyStatusRented,
	PropertyStatusPending,
}

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

type Image struct {
	URL       string `json:"url" bson:"url" validate:"required,url"`
	PublicID  string `json:"publicId" bson:"publicId"`
	IsPrimary bool   `json:"isPrimary" bson:"isPrimary"`
}

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" bson:"lng" validate:"gte=-180,lte=180"`
}

type Location struct {
	Address     string       `json:"address" bson:"address" validate:"required,max=200"`
	City        string       `json:"city" bson:"city" validate:"required,max=100"`
	District    string       `json:"district" bson:"district" validate:"required,max=100"`
	Province    string       `json:"province,omitempty" bson:"province,omitempty" validate:"max=100"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

type Property struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PropertyID   string             `json:"propertyId" bson:"propertyId"`
	Slug         string             `json:"slug" bson:"slug"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	PropertyType PropertyType       `json:"propertyType" bson:"propertyType"`
	Status       PropertyStatus     `json:"status" bson:"status"`
	ListingType  ListingType        `json:"listingType" bson:"listingType"`
	Price        float64            `json:"price" bson:"price"`
	Area         float64            `json:"area,omitempty" bson:"area,omitempty"`
	AreaUnit     string             `json:"areaUnit,omitempty" bson:"areaUnit,omitempty"`
	Bedrooms     int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms    int                `json:"bathrooms" bson:"bathrooms"`
	Amenities    []string           `json:"amenities" bson:"amenities"`
	Images       []Image            `json:"images" bson:"images"`
	Location     Location           `json:"location" bson:"location"`
	OwnerID      primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	IsFeatured   bool               `json:"isFeatured" bson:"isFeatured"`
	Views        int64              `json:"views" bson:"views"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PrimaryImage returns the primary image, or the first image when none is flagged.
func (p *Property) PrimaryImage() *Image {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

func (p *Property) Summary() PropertySummary {
	summary := PropertySummary{
		ID:           p.ID,
		PropertyID:   p.PropertyID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		Status:       p.Status,
		ListingType:  p.ListingType,
		PropertyType: p.PropertyType,
		City:         p.Location.City,
		District:     p.Location.District,
	}
	if img := p.PrimaryImage(); img != nil {
		summary.Image = img.URL
	}
	return summary
}

type PropertySummary struct {
	ID           primitive.ObjectID `json:"id"`
	PropertyID   string             `json:"propertyId"`
	Name         string             `json:"name"`
	Slug         string             `json:"slug"`
	Image        string             `json:"image,omitempty"`
	Price        float64            `json:"price"`
	Status       PropertyStatus     `json:"status"`
	ListingType  ListingType        `json:"listingType"`
	PropertyType PropertyType       `json:"propertyType"`
	City         string             `json:"city,omitempty"`
	District     string             `json:"district,omitempty"`
}

type PropertyInput struct {
	Name         string         `json:"name" validate:"required,min=3,max=200"`
	Description  string         `json:"description" validate:"required,min=10,max=5000"`
	PropertyType PropertyType   `json:"propertyType" validate:"required,oneof=house apartment land commercial villa office"`
	Status       PropertyStatus `json:"status" validate:"omitempty,oneof=available sold rented pending"`
	ListingType  ListingType    `json:"listingType" validate:"required,oneof=sale rent"`
	Price        float64        `json:"price" validate:"required,gt=0"`
	Area         float64        `json:"area" validate:"gte=0"`
	AreaUnit     string         `json:"areaUnit" validate:"omitempty,max=20"`
	Bedrooms     int            `json:"bedrooms" validate:"gte=0,lte=100"`
	Bathrooms    int            `json:"bathrooms" validate:"gte=0,lte=100"`
	Amenities    []string       `json:"amenities" validate:"dive,max=60"`
	Images       []Image        `json:"images" validate:"dive"`
	Location     Location       `json:"location" validate:"required"`
	IsActive     *bool          `json:"isActive"`
	IsFeatured   bool           `json:"isFeatured"`
}

const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortViews     = "views"
)

type PropertyFilter struct {
	PropertyType PropertyType
	Status       PropertyStatus
	ListingType  ListingType
	City         string
	District     string
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	Featured     *bool
	Search       string
	// Active is nil for admin listings that include inactive properties.
	Active *bool
	Sort   string
}

func (f PropertyFilter) CacheParams() map[string]string {
	params := map[string]string{
		"type":        string(f.PropertyType),
		"status":      string(f.Status),
		"listingType": string(f.ListingType),
		"city":        f.City,
		"district":    f.District,
		"search":      f.Search,
		"sort":        f.Sort,
	}
	if f.MinPrice != nil {
		params["minPrice"] = formatFloat(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		params["maxPrice"] = formatFloat(*f.MaxPrice)
	}
	if f.MinBedrooms != nil {
		params["bedrooms"] = formatInt(*f.MinBedrooms)
	}
	if f.Featured != nil {
		params["featured"] = formatBool(*f.Featured)
	}
	if f.Active != nil {
		params["active"] = formatBool(*f.Active)
	}
	return params
}

// NormalizeImages leaves exactly one primary image: the first flagged one, or
// the first image when none is flagged.
func NormalizeImages(images []Image) []Image {
	if len(images) == 0 {
		return []Image{}
	}
	out := make([]Image, len(images))
	copy(out, images)
	primary := 0
	for i := range out {
		if out[i].IsPrimary {
			primary = i
			break
		}
	}
	for i := range out {
		out[i].IsPrimary = i == primary
	}
	return out
}

// InputFromProperty seeds a partial update with the stored values.
func InputFromProperty(p *Property) PropertyInput {
	active := p.IsActive
	return PropertyInput{
		Name:         p.Name,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		ListingType:  p.ListingType,
		Price:        p.Price,
		Area:         p.Area,
		AreaUnit:     p.AreaUnit,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Amenities:    p.Amenities,
		Images:       p.Images,
		Location:     p.Location,
		IsActive:     &active,
		IsFeatured:   p.IsFeatured,
	}
}
