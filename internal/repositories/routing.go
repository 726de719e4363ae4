package repositories

import (
	"context"
	"log"

	req "wanderlust/internal/models/request_models"
	resp "wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

// The routed repositories are the single place the guest/cloud policy lives:
// guest-prefixed identities target only the local store; everyone else targets
// the cloud store, and any cloud error re-runs the same operation against the
// local store. The fallback is one-way; nothing reconciles the stores later.

type routedTripRepository struct {
	local TripRepository
	cloud TripRepository
}

func NewRoutedTripRepository(local LocalTripRepository, cloud TripRepository) TripRepository {
	return &routedTripRepository{local: local, cloud: cloud}
}

func (r *routedTripRepository) Save(ctx context.Context, userID string, trip resp.SavedTrip) (string, error) {
	if utils.IsGuestID(userID) {
		return r.local.Save(ctx, userID, trip)
	}
	id, err := r.cloud.Save(ctx, userID, trip)
	if err != nil {
		log.Printf("cloud trip save failed, falling back to local: %v", err)
		return r.local.Save(ctx, userID, trip)
	}
	return id, nil
}

func (r *routedTripRepository) List(ctx context.Context, userID string) ([]resp.SavedTrip, error) {
	if utils.IsGuestID(userID) {
		return r.local.List(ctx, userID)
	}
	trips, err := r.cloud.List(ctx, userID)
	if err != nil {
		log.Printf("cloud trip list failed, falling back to local: %v", err)
		return r.local.List(ctx, userID)
	}
	return trips, nil
}

func (r *routedTripRepository) Get(ctx context.Context, userID string, tripID string) (*resp.SavedTrip, error) {
	if utils.IsGuestID(userID) {
		return r.local.Get(ctx, userID, tripID)
	}
	trip, err := r.cloud.Get(ctx, userID, tripID)
	if err != nil {
		log.Printf("cloud trip get failed, falling back to local: %v", err)
		return r.local.Get(ctx, userID, tripID)
	}
	if trip == nil {
		// A cloud write may have fallen back earlier; the trip could live locally.
		return r.local.Get(ctx, userID, tripID)
	}
	return trip, nil
}

func (r *routedTripRepository) Delete(ctx context.Context, userID string, tripID string) error {
	if utils.IsGuestID(userID) {
		return r.local.Delete(ctx, userID, tripID)
	}
	if err := r.cloud.Delete(ctx, userID, tripID); err != nil {
		log.Printf("cloud trip delete failed, falling back to local: %v", err)
		return r.local.Delete(ctx, userID, tripID)
	}
	return nil
}

func (r *routedTripRepository) ToggleFavorite(ctx context.Context, userID string, tripID string) error {
	if utils.IsGuestID(userID) {
		return r.local.ToggleFavorite(ctx, userID, tripID)
	}
	if err := r.cloud.ToggleFavorite(ctx, userID, tripID); err != nil {
		log.Printf("cloud favorite toggle failed, falling back to local: %v", err)
		return r.local.ToggleFavorite(ctx, userID, tripID)
	}
	return nil
}

type routedExpenseRepository struct {
	local ExpenseRepository
	cloud ExpenseRepository
}

func NewRoutedExpenseRepository(local, cloud ExpenseRepository) ExpenseRepository {
	return &routedExpenseRepository{local: local, cloud: cloud}
}

func (r *routedExpenseRepository) Save(ctx context.Context, userID string, tripID string, expense resp.ExpenseResponse) (string, error) {
	if utils.IsGuestID(userID) {
		return r.local.Save(ctx, userID, tripID, expense)
	}
	id, err := r.cloud.Save(ctx, userID, tripID, expense)
	if err != nil {
		log.Printf("cloud expense save failed, falling back to local: %v", err)
		return r.local.Save(ctx, userID, tripID, expense)
	}
	return id, nil
}

func (r *routedExpenseRepository) List(ctx context.Context, userID string, tripID string) ([]resp.ExpenseResponse, error) {
	if utils.IsGuestID(userID) {
		return r.local.List(ctx, userID, tripID)
	}
	expenses, err := r.cloud.List(ctx, userID, tripID)
	if err != nil {
		log.Printf("cloud expense list failed, falling back to local: %v", err)
		return r.local.List(ctx, userID, tripID)
	}
	return expenses, nil
}

func (r *routedExpenseRepository) Delete(ctx context.Context, userID string, tripID string, expenseID string) error {
	if utils.IsGuestID(userID) {
		return r.local.Delete(ctx, userID, tripID, expenseID)
	}
	if err := r.cloud.Delete(ctx, userID, tripID, expenseID); err != nil {
		log.Printf("cloud expense delete failed, falling back to local: %v", err)
		return r.local.Delete(ctx, userID, tripID, expenseID)
	}
	return nil
}

func (r *routedExpenseRepository) Update(ctx context.Context, userID string, tripID string, expenseID string, updates req.UpdateExpenseRequest) error {
	if utils.IsGuestID(userID) {
		return r.local.Update(ctx, userID, tripID, expenseID, updates)
	}
	if err := r.cloud.Update(ctx, userID, tripID, expenseID, updates); err != nil {
		log.Printf("cloud expense update failed, falling back to local: %v", err)
		return r.local.Update(ctx, userID, tripID, expenseID, updates)
	}
	return nil
}

type routedPackingRepository struct {
	local PackingRepository
	cloud PackingRepository
}

func NewRoutedPackingRepository(local, cloud PackingRepository) PackingRepository {
	return &routedPackingRepository{local: local, cloud: cloud}
}

func (r *routedPackingRepository) Replace(ctx context.Context, userID string, tripID string, items []resp.PackingItemResponse) error {
	if utils.IsGuestID(userID) {
		return r.local.Replace(ctx, userID, tripID, items)
	}
	if err := r.cloud.Replace(ctx, userID, tripID, items); err != nil {
		log.Printf("cloud packing replace failed, falling back to local: %v", err)
		return r.local.Replace(ctx, userID, tripID, items)
	}
	return nil
}

func (r *routedPackingRepository) List(ctx context.Context, userID string, tripID string) ([]resp.PackingItemResponse, error) {
	if utils.IsGuestID(userID) {
		return r.local.List(ctx, userID, tripID)
	}
	items, err := r.cloud.List(ctx, userID, tripID)
	if err != nil {
		log.Printf("cloud packing list failed, falling back to local: %v", err)
		return r.local.List(ctx, userID, tripID)
	}
	return items, nil
}

func (r *routedPackingRepository) Toggle(ctx context.Context, userID string, tripID string, itemID string) error {
	if utils.IsGuestID(userID) {
		return r.local.Toggle(ctx, userID, tripID, itemID)
	}
	if err := r.cloud.Toggle(ctx, userID, tripID, itemID); err != nil {
		log.Printf("cloud packing toggle failed, falling back to local: %v", err)
		return r.local.Toggle(ctx, userID, tripID, itemID)
	}
	return nil
}
