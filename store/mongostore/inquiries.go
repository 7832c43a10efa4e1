package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

type InquiryStore struct {
	base
}

func (s *InquiryStore) Create(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if inquiry.ID.IsZero() {
		inquiry.ID = primitive.NewObjectID()
	}
	if inquiry.Replies == nil {
		inquiry.Replies = []models.Reply{}
	}
	if _, err := s.collection.InsertOne(ctx, inquiry); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *InquiryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	var inquiry models.Inquiry
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry); err != nil {
		return nil, mapErr(err)
	}
	return &inquiry, nil
}

func (s *InquiryStore) List(ctx context.Context, filter models.InquiryFilter, page models.Page) ([]models.Inquiry, int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	query := inquiryQuery(filter)
	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find inquiries: %w", err)
	}
	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, fmt.Errorf("decode inquiries: %w", err)
	}
	return inquiries, total, nil
}

func (s *InquiryStore) Count(ctx context.Context, filter models.InquiryFilter) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return s.collection.CountDocuments(ctx, inquiryQuery(filter))
}

func (s *InquiryStore) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("mark inquiry read: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *InquiryStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InquiryStatus) (*models.Inquiry, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var inquiry models.Inquiry
	if err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&inquiry); err != nil {
		return nil, mapErr(err)
	}
	return &inquiry, nil
}

func (s *InquiryStore) AppendReply(ctx context.Context, id primitive.ObjectID, reply models.Reply, promote bool) (*models.Inquiry, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var inquiry models.Inquiry
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, replyUpdate(reply, promote), opts).Decode(&inquiry)
	if err != nil {
		return nil, mapErr(err)
	}
	return &inquiry, nil
}

// replyUpdate is an aggregation pipeline update so the append and the
// pending to in_progress promotion land in a single document write.
func replyUpdate(reply models.Reply, promote bool) mongo.Pipeline {
	set := bson.D{
		{Key: "replies", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
			bson.D{{Key: "$ifNull", Value: bson.A{"$replies", bson.A{}}}},
			bson.A{bson.D{{Key: "$literal", Value: reply}}},
		}}}},
		{Key: "updatedAt", Value: reply.CreatedAt},
	}
	if promote {
		set = append(set, bson.E{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$eq", Value: bson.A{"$status", models.InquiryStatusPending}}},
			models.InquiryStatusInProgress,
			"$status",
		}}}})
	}
	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

func (s *InquiryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
