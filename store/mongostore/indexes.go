package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/store"
)

// EnsureIndexes creates the unique and lookup indexes the application relies on.
// Creating an index that already exists is a no-op on the server.
func EnsureIndexes(ctx context.Context, client *mongo.Client, cfg config.MongoConfig) error {
	db := client.Database(cfg.Database)
	unique := func(name string) *options.IndexOptions {
		return options.Index().SetName(name).SetUnique(true)
	}

	plan := map[string][]mongo.IndexModel{
		cfg.Collections.Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique(store.IndexUserEmail)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		cfg.Collections.Properties: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique(store.IndexPropertySlug)},
			{Keys: bson.D{{Key: "propertyId", Value: 1}}, Options: unique(store.IndexPropertyCode)},
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "location.district", Value: 1}}},
		},
		cfg.Collections.Inquiries: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		cfg.Collections.Favorites: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "propertyId", Value: 1}}, Options: unique(store.IndexFavoritePair)},
			{Keys: bson.D{{Key: "propertyId", Value: 1}}},
		},
		cfg.Collections.Blogs: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique(store.IndexBlogSlug)},
			{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "publishedAt", Value: -1}}},
		},
	}

	for name, indexes := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}
