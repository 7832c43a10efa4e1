package mongostore

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/prajwal000/Egharbari-sub001/models"
)

func userQuery(f models.UserFilter) bson.M {
	query := bson.M{}
	if f.Role != "" {
		query["role"] = f.Role
	}
	if f.IsActive != nil {
		query["isActive"] = *f.IsActive
	}
	if f.Search != "" {
		pattern := bson.M{"$regex": containsPattern(f.Search), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
		}
	}
	return query
}

func propertyQuery(f models.PropertyFilter) bson.M {
	query := bson.M{}
	if f.Active != nil {
		query["isActive"] = *f.Active
	}
	if f.PropertyType != "" {
		query["propertyType"] = f.PropertyType
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.ListingType != "" {
		query["listingType"] = f.ListingType
	}
	if f.City != "" {
		query["location.city"] = bson.M{"$regex": exactPattern(f.City), "$options": "i"}
	}
	if f.District != "" {
		query["location.district"] = bson.M{"$regex": exactPattern(f.District), "$options": "i"}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}
	if f.MinBedrooms != nil {
		query["bedrooms"] = bson.M{"$gte": *f.MinBedrooms}
	}
	if f.Featured != nil {
		query["isFeatured"] = *f.Featured
	}
	if f.Search != "" {
		pattern := bson.M{"$regex": containsPattern(f.Search), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"propertyId": pattern},
			bson.M{"location.city": pattern},
			bson.M{"location.district": pattern},
		}
	}
	return query
}

func propertySort(sort string) bson.D {
	switch sort {
	case models.SortOldest:
		return bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
	case models.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}
	case models.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: -1}}
	case models.SortViews:
		return bson.D{{Key: "views", Value: -1}, {Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}

func inquiryQuery(f models.InquiryFilter) bson.M {
	query := bson.M{}
	if f.Email != "" {
		query["email"] = f.Email
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.IsRead != nil {
		query["isRead"] = *f.IsRead
	}
	if f.Search != "" {
		pattern := bson.M{"$regex": containsPattern(f.Search), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"subject": pattern},
			bson.M{"message": pattern},
		}
	}
	return query
}

func blogQuery(f models.BlogFilter) bson.M {
	query := bson.M{}
	if f.Published != nil {
		query["isPublished"] = *f.Published
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Tag != "" {
		query["tags"] = f.Tag
	}
	if f.Search != "" {
		pattern := bson.M{"$regex": containsPattern(f.Search), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"excerpt": pattern},
			bson.M{"content": pattern},
		}
	}
	return query
}
