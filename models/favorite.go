package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Favorite struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type FavoriteRequest struct {
	PropertyID string `json:"propertyId" form:"propertyId" query:"propertyId" validate:"required"`
}

// FavoriteEntry is a favorite joined with the listing it points at. Property
// is nil when the listing was removed after it was favorited.
type FavoriteEntry struct {
	ID        primitive.ObjectID `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	Property  *PropertySummary   `json:"property"`
}
