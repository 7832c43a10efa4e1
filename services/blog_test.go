package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func blogInput(title string, published bool) models.BlogInput {
	return models.BlogInput{
		Title:       title,
		Excerpt:     "What to check before you sign.",
		Content:     "Start with the lalpurja and the blueprint approval.",
		Category:    models.BlogCategoryBuying,
		Tags:        []string{" Land ", "land", "Kathmandu", ""},
		IsPublished: published,
	}
}

func TestBlogDraftsAreAdminOnly(t *testing.T) {
	stores := newStores()
	svc := NewBlogService(stores.Blogs)
	admin := adminSession()
	ctx := context.Background()

	draft, err := svc.Create(ctx, admin, blogInput("Buying Land in Nepal", false))
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, blogInput("Renting Guide", true))
	require.NoError(t, err)

	assert.Equal(t, "buying-land-in-nepal", draft.Slug)
	assert.Equal(t, []string{"land", "kathmandu"}, draft.Tags)
	assert.Nil(t, draft.PublishedAt)

	_, err = svc.Get(ctx, nil, draft.Slug)
	requireKind(t, err, apperr.KindNotFound)
	_, err = svc.Get(ctx, admin, draft.Slug)
	assert.NoError(t, err)

	page := models.Page{Page: 1, Limit: 10}
	public, _, err := svc.List(ctx, nil, models.BlogFilter{}, true, page)
	require.NoError(t, err)
	assert.Len(t, public, 1, "drafts flag is ignored for non-admins")

	all, _, err := svc.List(ctx, admin, models.BlogFilter{}, true, page)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogPublishedAtSetOnce(t *testing.T) {
	stores := newStores()
	svc := NewBlogService(stores.Blogs)
	admin := adminSession()
	ctx := context.Background()

	b, err := svc.Create(ctx, admin, blogInput("Market News", false))
	require.NoError(t, err)

	b, err = svc.Update(ctx, admin, b.ID, blogInput("Market News", true))
	require.NoError(t, err)
	require.NotNil(t, b.PublishedAt)
	first := *b.PublishedAt

	b, err = svc.Update(ctx, admin, b.ID, blogInput("Market News Update", true))
	require.NoError(t, err)
	assert.Equal(t, first, *b.PublishedAt)
	assert.Equal(t, "market-news-update", b.Slug)

	_, err = svc.Create(ctx, userSession("asha@example.com"), blogInput("Nope", true))
	requireKind(t, err, apperr.KindForbidden)
}
