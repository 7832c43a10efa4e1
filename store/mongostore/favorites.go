package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwal000/Egharbari-sub001/models"
)

type FavoriteStore struct {
	base
}

func (s *FavoriteStore) Insert(ctx context.Context, favorite *models.Favorite) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if favorite.ID.IsZero() {
		favorite.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, favorite); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *FavoriteStore) Delete(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *FavoriteStore) Exists(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	count, err := s.collection.CountDocuments(ctx,
		bson.M{"userId": userID, "propertyId": propertyID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

func (s *FavoriteStore) ListByUser(ctx context.Context, userID primitive.ObjectID, page models.Page) ([]models.Favorite, int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	query := bson.M{"userId": userID}
	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count favorites: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find favorites: %w", err)
	}
	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, 0, fmt.Errorf("decode favorites: %w", err)
	}
	return favorites, total, nil
}

func (s *FavoriteStore) Count(ctx context.Context, userID *primitive.ObjectID) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	query := bson.M{}
	if userID != nil {
		query["userId"] = *userID
	}
	return s.collection.CountDocuments(ctx, query)
}

func (s *FavoriteStore) DeleteByProperty(ctx context.Context, propertyID primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if _, err := s.collection.DeleteMany(ctx, bson.M{"propertyId": propertyID}); err != nil {
		return fmt.Errorf("delete favorites of property: %w", err)
	}
	return nil
}
