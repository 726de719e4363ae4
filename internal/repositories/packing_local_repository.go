package repositories

import (
	"context"
	"fmt"
	"time"

	resp "wanderlust/internal/models/response_models"
	"wanderlust/pkg/localstore"
	"wanderlust/pkg/utils"
)

type localPackingRepository struct {
	store *localstore.Store
}

func NewLocalPackingRepository(store *localstore.Store) PackingRepository {
	return &localPackingRepository{store: store}
}

func packingKey(tripID string) string {
	return localstore.PackingKeyPrefix + tripID
}

func (r *localPackingRepository) Replace(ctx context.Context, userID string, tripID string, items []resp.PackingItemResponse) error {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = fmt.Sprintf("item_%d_%d", time.Now().UnixMilli(), i)
		}
	}
	return r.store.Set(packingKey(tripID), items)
}

func (r *localPackingRepository) List(ctx context.Context, userID string, tripID string) ([]resp.PackingItemResponse, error) {
	var items []resp.PackingItemResponse
	r.store.Get(packingKey(tripID), &items)
	return items, nil
}

func (r *localPackingRepository) Toggle(ctx context.Context, userID string, tripID string, itemID string) error {
	var items []resp.PackingItemResponse
	r.store.Get(packingKey(tripID), &items)

	for i := range items {
		if items[i].ID == itemID {
			items[i].IsChecked = !items[i].IsChecked
			return r.store.Set(packingKey(tripID), items)
		}
	}
	return utils.ErrItemNotFound
}
