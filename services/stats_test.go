package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
)

func TestStats(t *testing.T) {
	stores := newStores()
	ctx := context.Background()
	admin := adminSession()
	asha := userSession("asha@example.com")

	p := seedProperty(t, stores, "Nice House")
	inquiries := NewInquiryService(stores.Inquiries, stores.Properties, NewIntake(nil, time.Second, time.Hour), nil)
	first, err := inquiries.Create(ctx, asha, contactRequest("asha@example.com"), "")
	require.NoError(t, err)
	_, err = inquiries.Create(ctx, nil, contactRequest("ram@example.com"), "")
	require.NoError(t, err)
	_, err = inquiries.Reply(ctx, admin, first.ID, "On it.")
	require.NoError(t, err)

	favorites := NewFavoriteService(stores.Favorites, stores.Properties)
	_, err = favorites.SetFavorite(ctx, asha.UserID, p.ID, true)
	require.NoError(t, err)

	svc := NewStatsService(stores)

	mine, err := svc.User(ctx, asha)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Favorites)
	assert.Equal(t, int64(1), mine.Inquiries)
	assert.Equal(t, int64(1), mine.InquiriesByStatus[string(models.InquiryStatusInProgress)])
	assert.Equal(t, int64(0), mine.InquiriesByStatus[string(models.InquiryStatusPending)])

	all, err := svc.Admin(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), all.Properties.Total)
	assert.Equal(t, int64(1), all.Properties.Active)
	assert.Equal(t, int64(1), all.Properties.ByStatus[string(models.PropertyStatusAvailable)])
	assert.Equal(t, int64(2), all.Inquiries.Total)
	assert.Equal(t, int64(2), all.Inquiries.Unread)
	assert.Equal(t, int64(1), all.Inquiries.ByStatus[string(models.InquiryStatusPending)])
	assert.Equal(t, int64(1), all.Favorites)

	_, err = svc.Admin(ctx, asha)
	requireKind(t, err, apperr.KindForbidden)
	_, err = svc.User(ctx, nil)
	requireKind(t, err, apperr.KindUnauthenticated)
}
