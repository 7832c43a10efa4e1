package mongostore

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

const firstPropertyCode = 1000

type PropertyStore struct {
	base
	counters *mongo.Collection
}

func (s *PropertyStore) Create(ctx context.Context, property *models.Property) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, property); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *PropertyStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *PropertyStore) FindBySlug(ctx context.Context, slug string) (*models.Property, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *PropertyStore) FindByCode(ctx context.Context, code string) (*models.Property, error) {
	return s.findOne(ctx, bson.M{"propertyId": code})
}

func (s *PropertyStore) findOne(ctx context.Context, filter bson.M) (*models.Property, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	var property models.Property
	if err := s.collection.FindOne(ctx, filter).Decode(&property); err != nil {
		return nil, mapErr(err)
	}
	return &property, nil
}

func (s *PropertyStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return properties, nil
}

func (s *PropertyStore) List(ctx context.Context, filter models.PropertyFilter, page models.Page) ([]models.Property, int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	query := propertyQuery(filter)
	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	opts := options.Find().
		SetSort(propertySort(filter.Sort)).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find properties: %w", err)
	}
	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, fmt.Errorf("decode properties: %w", err)
	}
	return properties, total, nil
}

func (s *PropertyStore) Count(ctx context.Context, filter models.PropertyFilter) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return s.collection.CountDocuments(ctx, propertyQuery(filter))
}

func (s *PropertyStore) Replace(ctx context.Context, property *models.Property) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": property.ID}, property)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *PropertyStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *PropertyStore) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (s *PropertyStore) Districts(ctx context.Context) ([]string, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	values, err := s.collection.Distinct(ctx, "location.district", bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("distinct districts: %w", err)
	}
	districts := make([]string, 0, len(values))
	for _, v := range values {
		if d, ok := v.(string); ok && d != "" {
			districts = append(districts, d)
		}
	}
	sort.Strings(districts)
	return districts, nil
}

func (s *PropertyStore) NextCode(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "propertyId"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next property code: %w", err)
	}
	return firstPropertyCode - 1 + counter.Seq, nil
}
