package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/store"
)

func TestPropertyUniqueIndexes(t *testing.T) {
	ctx := context.Background()
	s := NewPropertyStore()

	require.NoError(t, s.Create(ctx, &models.Property{Slug: "nice-house", PropertyID: "EGB-1000"}))

	err := s.Create(ctx, &models.Property{Slug: "nice-house", PropertyID: "EGB-1001"})
	index, ok := store.DuplicateIndex(err)
	require.True(t, ok)
	assert.Equal(t, store.IndexPropertySlug, index)

	err = s.Create(ctx, &models.Property{Slug: "other", PropertyID: "EGB-1000"})
	index, _ = store.DuplicateIndex(err)
	assert.Equal(t, store.IndexPropertyCode, index)
}

func TestPropertyReplaceKeepsOwnSlug(t *testing.T) {
	ctx := context.Background()
	s := NewPropertyStore()
	p := &models.Property{Slug: "nice-house", PropertyID: "EGB-1000"}
	require.NoError(t, s.Create(ctx, p))

	p.Price = 100
	require.NoError(t, s.Replace(ctx, p))

	assert.ErrorIs(t, s.Replace(ctx, &models.Property{ID: primitive.NewObjectID()}), store.ErrNotFound)
}

func TestPropertyListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	s := NewPropertyStore()
	now := time.Now()
	for i, city := range []string{"Kathmandu", "Pokhara", "kathmandu"} {
		require.NoError(t, s.Create(ctx, &models.Property{
			Slug:       city + string(rune('a'+i)),
			PropertyID: string(rune('a' + i)),
			IsActive:   i != 1,
			Price:      float64(i+1) * 100,
			Location:   models.Location{City: city, District: city},
			CreatedAt:  now.Add(time.Duration(i) * time.Minute),
		}))
	}

	active := true
	list, total, err := s.List(ctx, models.PropertyFilter{Active: &active, City: "KATHMANDU"}, models.Page{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 1)
	assert.Equal(t, 300.0, list[0].Price, "newest first")

	districts, err := s.Districts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kathmandu", "kathmandu"}, districts)
}

func TestNextCodeStartsAtThousand(t *testing.T) {
	s := NewPropertyStore()
	first, _ := s.NextCode(context.Background())
	second, _ := s.NextCode(context.Background())
	assert.Equal(t, int64(1000), first)
	assert.Equal(t, int64(1001), second)
}

func TestFavoritePairIsUnique(t *testing.T) {
	ctx := context.Background()
	s := NewFavoriteStore()
	user, property := primitive.NewObjectID(), primitive.NewObjectID()

	require.NoError(t, s.Insert(ctx, &models.Favorite{UserID: user, PropertyID: property}))
	assert.ErrorIs(t, s.Insert(ctx, &models.Favorite{UserID: user, PropertyID: property}), store.ErrDuplicate)

	n, _ := s.Count(ctx, &user)
	assert.Equal(t, int64(1), n)

	removed, err := s.Delete(ctx, user, property)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.Delete(ctx, user, property)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAppendReplyPromotesOnlyPending(t *testing.T) {
	ctx := context.Background()
	s := NewInquiryStore()
	inq := &models.Inquiry{Status: models.InquiryStatusPending}
	require.NoError(t, s.Create(ctx, inq))

	out, err := s.AppendReply(ctx, inq.ID, models.Reply{Message: "one"}, false)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusPending, out.Status)

	out, err = s.AppendReply(ctx, inq.ID, models.Reply{Message: "two"}, true)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusInProgress, out.Status)
	assert.Len(t, out.Replies, 2)

	_, err = s.UpdateStatus(ctx, inq.ID, models.InquiryStatusResolved)
	require.NoError(t, err)
	out, err = s.AppendReply(ctx, inq.ID, models.Reply{Message: "three"}, true)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusResolved, out.Status)
}

func TestUserEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	require.NoError(t, s.Create(ctx, &models.User{Email: "asha@example.com"}))
	err := s.Create(ctx, &models.User{Email: "asha@example.com"})
	index, ok := store.DuplicateIndex(err)
	require.True(t, ok)
	assert.Equal(t, store.IndexUserEmail, index)
}
