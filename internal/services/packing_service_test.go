package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/localstore"
	"wanderlust/pkg/utils"
)

func newPackingFixture(t *testing.T) (PackingServiceInterface, string, string) {
	t.Helper()

	store := localstore.New("")
	trips := repositories.NewLocalTripRepository(store)
	packing := repositories.NewLocalPackingRepository(store)

	userID := "guest_test"
	tripID, err := trips.Save(context.Background(), userID, response_models.SavedTrip{
		Title:       "Kyoto Trip",
		Destination: "Kyoto, Japan",
		Itinerary:   json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	return NewPackingService(packing, trips), userID, tripID
}

func TestInitPackingList(t *testing.T) {
	service, userID, tripID := newPackingFixture(t)

	items, err := service.InitPackingList(context.Background(), userID, tripID, request_models.InitPackingListRequest{
		Items: []string{"Comfortable shoes", "Passport", "Phone charger", "", "Snacks"},
	})
	require.NoError(t, err)
	require.Len(t, items, 4, "blank labels are dropped")

	byItem := map[string]response_models.PackingItemResponse{}
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.False(t, item.IsChecked)
		byItem[item.Item] = item
	}
	assert.Equal(t, CategoryClothing, byItem["Comfortable shoes"].Category)
	assert.Equal(t, CategoryDocuments, byItem["Passport"].Category)
	assert.Equal(t, CategoryElectronics, byItem["Phone charger"].Category)
	assert.Equal(t, CategoryMiscellaneous, byItem["Snacks"].Category)
}

func TestInitPackingListReplaces(t *testing.T) {
	service, userID, tripID := newPackingFixture(t)
	ctx := context.Background()

	_, err := service.InitPackingList(ctx, userID, tripID, request_models.InitPackingListRequest{
		Items: []string{"Old item one", "Old item two"},
	})
	require.NoError(t, err)

	items, err := service.InitPackingList(ctx, userID, tripID, request_models.InitPackingListRequest{
		Items: []string{"Fresh start"},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fresh start", items[0].Item)
}

func TestAddPackingItem(t *testing.T) {
	service, userID, tripID := newPackingFixture(t)
	ctx := context.Background()

	_, err := service.InitPackingList(ctx, userID, tripID, request_models.InitPackingListRequest{
		Items: []string{"Passport"},
	})
	require.NoError(t, err)

	items, err := service.AddPackingItem(ctx, userID, tripID, request_models.AddPackingItemRequest{Item: "Sunscreen"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, CategoryToiletries, items[1].Category)
}

func TestToggleItem(t *testing.T) {
	service, userID, tripID := newPackingFixture(t)
	ctx := context.Background()

	items, err := service.InitPackingList(ctx, userID, tripID, request_models.InitPackingListRequest{
		Items: []string{"Passport"},
	})
	require.NoError(t, err)

	require.NoError(t, service.ToggleItem(ctx, userID, tripID, items[0].ID))

	items, err = service.ListPackingItems(ctx, userID, tripID)
	require.NoError(t, err)
	assert.True(t, items[0].IsChecked)

	require.NoError(t, service.ToggleItem(ctx, userID, tripID, items[0].ID))

	items, err = service.ListPackingItems(ctx, userID, tripID)
	require.NoError(t, err)
	assert.False(t, items[0].IsChecked)
}

func TestToggleUnknownItem(t *testing.T) {
	service, userID, tripID := newPackingFixture(t)

	err := service.ToggleItem(context.Background(), userID, tripID, "item_missing")
	assert.ErrorIs(t, err, utils.ErrItemNotFound)
}

func TestPackingUnknownTrip(t *testing.T) {
	service, userID, _ := newPackingFixture(t)

	_, err := service.InitPackingList(context.Background(), userID, "trip_missing", request_models.InitPackingListRequest{
		Items: []string{"Passport"},
	})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
