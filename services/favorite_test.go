package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestSetFavoriteIsIdempotent(t *testing.T) {
	stores := newStores()
	svc := NewFavoriteService(stores.Favorites, stores.Properties)
	p := seedProperty(t, stores, "Nice House")
	user := userSession("asha@example.com")
	ctx := context.Background()

	changed, err := svc.SetFavorite(ctx, user.UserID, p.ID, true)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.SetFavorite(ctx, user.UserID, p.ID, true)
	require.NoError(t, err)
	assert.False(t, changed)

	n, err := stores.Favorites.Count(ctx, &user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := svc.IsFavorite(ctx, user, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	changed, err = svc.SetFavorite(ctx, user.UserID, p.ID, false)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.SetFavorite(ctx, user.UserID, p.ID, false)
	require.NoError(t, err)
	assert.False(t, changed, "removing a missing favorite is a no-op")
}

func TestSetFavoriteUnknownProperty(t *testing.T) {
	stores := newStores()
	svc := NewFavoriteService(stores.Favorites, stores.Properties)

	_, err := svc.SetFavorite(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), true)
	requireKind(t, err, apperr.KindNotFound)
}

func TestIsFavoriteAnonymous(t *testing.T) {
	stores := newStores()
	svc := NewFavoriteService(stores.Favorites, stores.Properties)

	ok, err := svc.IsFavorite(context.Background(), nil, primitive.NewObjectID())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListFavoritesJoinsProperties(t *testing.T) {
	stores := newStores()
	svc := NewFavoriteService(stores.Favorites, stores.Properties)
	first := seedProperty(t, stores, "First House")
	second := seedProperty(t, stores, "Second House")
	user := userSession("asha@example.com")
	ctx := context.Background()

	for _, p := range []*models.Property{first, second} {
		_, err := svc.SetFavorite(ctx, user.UserID, p.ID, true)
		require.NoError(t, err)
	}
	_, err := svc.SetFavorite(ctx, primitive.NewObjectID(), first.ID, true)
	require.NoError(t, err)

	entries, pg, err := svc.List(ctx, user.UserID, models.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), pg.Total)

	slugs := []string{}
	for _, e := range entries {
		require.NotNil(t, e.Property)
		slugs = append(slugs, e.Property.Slug)
	}
	assert.ElementsMatch(t, []string{"first-house", "second-house"}, slugs)
}

func TestDeletePropertyCascadesFavorites(t *testing.T) {
	stores := newStores()
	favs := NewFavoriteService(stores.Favorites, stores.Properties)
	props := NewPropertyService(stores.Properties, stores.Favorites, nil)
	p := seedProperty(t, stores, "Nice House")
	user := userSession("asha@example.com")
	ctx := context.Background()

	_, err := favs.SetFavorite(ctx, user.UserID, p.ID, true)
	require.NoError(t, err)
	require.NoError(t, props.Delete(ctx, adminSession(), p.ID))

	ok, err := favs.IsFavorite(ctx, user, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	requireKind(t, props.Delete(ctx, adminSession(), p.ID), apperr.KindNotFound)
}
