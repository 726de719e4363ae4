package services

import (
	"context"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type PackingServiceInterface interface {
	InitPackingList(ctx context.Context, userID string, tripID string, request request_models.InitPackingListRequest) ([]response_models.PackingItemResponse, error)
	ListPackingItems(ctx context.Context, userID string, tripID string) ([]response_models.PackingItemResponse, error)
	AddPackingItem(ctx context.Context, userID string, tripID string, request request_models.AddPackingItemRequest) ([]response_models.PackingItemResponse, error)
	ToggleItem(ctx context.Context, userID string, tripID string, itemID string) error
}

type PackingService struct {
	packing repositories.PackingRepository
	trips   repositories.TripRepository
}

func NewPackingService(packing repositories.PackingRepository, trips repositories.TripRepository) PackingServiceInterface {
	return &PackingService{packing: packing, trips: trips}
}

// InitPackingList replaces the trip's packing list with the given items,
// each categorized by keyword.
func (s *PackingService) InitPackingList(ctx context.Context, userID string, tripID string, request request_models.InitPackingListRequest) ([]response_models.PackingItemResponse, error) {
	if err := s.requireTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	items := make([]response_models.PackingItemResponse, 0, len(request.Items))
	for _, name := range request.Items {
		if name == "" {
			continue
		}
		items = append(items, response_models.PackingItemResponse{
			Item:     name,
			Category: CategorizeItem(name),
		})
	}

	if err := s.packing.Replace(ctx, userID, tripID, items); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.ListPackingItems(ctx, userID, tripID)
}

func (s *PackingService) ListPackingItems(ctx context.Context, userID string, tripID string) ([]response_models.PackingItemResponse, error) {
	items, err := s.packing.List(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if items == nil {
		items = []response_models.PackingItemResponse{}
	}
	return items, nil
}

func (s *PackingService) AddPackingItem(ctx context.Context, userID string, tripID string, request request_models.AddPackingItemRequest) ([]response_models.PackingItemResponse, error) {
	if err := s.requireTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	items, err := s.packing.List(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	items = append(items, response_models.PackingItemResponse{
		Item:     request.Item,
		Category: CategorizeItem(request.Item),
	})

	if err := s.packing.Replace(ctx, userID, tripID, items); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.ListPackingItems(ctx, userID, tripID)
}

func (s *PackingService) ToggleItem(ctx context.Context, userID string, tripID string, itemID string) error {
	if err := s.packing.Toggle(ctx, userID, tripID, itemID); err != nil {
		return utils.ErrItemNotFound
	}
	return nil
}

func (s *PackingService) requireTrip(ctx context.Context, userID string, tripID string) error {
	trip, err := s.trips.Get(ctx, userID, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	return nil
}
