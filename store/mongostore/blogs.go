package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type BlogStore struct {
	base
}

func (s *BlogStore) Create(ctx context.Context, blog *models.Blog) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, blog); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *BlogStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *BlogStore) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *BlogStore) findOne(ctx context.Context, filter bson.M) (*models.Blog, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	var blog models.Blog
	if err := s.collection.FindOne(ctx, filter).Decode(&blog); err != nil {
		return nil, mapErr(err)
	}
	return &blog, nil
}

func (s *BlogStore) List(ctx context.Context, filter models.BlogFilter, page models.Page) ([]models.Blog, int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	query := blogQuery(filter)
	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find blogs: %w", err)
	}
	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, total, nil
}

func (s *BlogStore) Count(ctx context.Context, filter models.BlogFilter) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return s.collection.CountDocuments(ctx, blogQuery(filter))
}

func (s *BlogStore) Replace(ctx context.Context, blog *models.Blog) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": blog.ID}, blog)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *BlogStore) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}
