package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/localstore"
	"wanderlust/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userID string, request request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, userID string) ([]response_models.SavedTrip, error)
	GetTrip(ctx context.Context, userID string, tripID string) (*response_models.SavedTrip, error)
	DeleteTrip(ctx context.Context, userID string, tripID string) error
	ToggleFavorite(ctx context.Context, userID string, tripID string) error
	MigrateGuestTrips(ctx context.Context, userID string, guestID string) (int, error)
	SyncStatus(ctx context.Context, userID string) (*response_models.SyncStatus, error)
}

type TripService struct {
	trips     repositories.TripRepository
	localRepo repositories.LocalTripRepository
	cloudRepo repositories.TripRepository
	store     *localstore.Store
}

func NewTripService(
	trips repositories.TripRepository,
	localRepo repositories.LocalTripRepository,
	cloudRepo repositories.TripRepository,
	store *localstore.Store,
) TripServiceInterface {
	return &TripService{
		trips:     trips,
		localRepo: localRepo,
		cloudRepo: cloudRepo,
		store:     store,
	}
}

func (s *TripService) SaveTrip(ctx context.Context, userID string, request request_models.SaveTripRequest) (string, error) {
	title := request.Title
	if title == "" {
		title = fmt.Sprintf("%s Trip", request.Destination)
	}
	travelers := request.Travelers
	if travelers < 1 {
		travelers = 1
	}
	tripType := request.TripType
	if tripType == "" {
		tripType = "leisure"
	}

	trip := response_models.SavedTrip{
		Title:       title,
		Destination: request.Destination,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Budget:      request.Budget,
		Travelers:   travelers,
		TripType:    tripType,
		Itinerary:   request.Itinerary,
	}

	id, err := s.trips.Save(ctx, userID, trip)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	s.touchSync(ctx, userID)
	return id, nil
}

func (s *TripService) ListTrips(ctx context.Context, userID string) ([]response_models.SavedTrip, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trips == nil {
		trips = []response_models.SavedTrip{}
	}
	return trips, nil
}

func (s *TripService) GetTrip(ctx context.Context, userID string, tripID string) (*response_models.SavedTrip, error) {
	trip, err := s.trips.Get(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID string, tripID string) error {
	if err := s.trips.Delete(ctx, userID, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	s.touchSync(ctx, userID)
	return nil
}

func (s *TripService) ToggleFavorite(ctx context.Context, userID string, tripID string) error {
	if err := s.trips.ToggleFavorite(ctx, userID, tripID); err != nil {
		return utils.ErrTripNotFound
	}
	return nil
}

// MigrateGuestTrips copies every locally stored trip of a guest identity into
// the cloud store for the upgraded user, then clears the local collection.
// Expenses and packing items are not migrated; their trip-id mapping would
// change under new cloud ids.
func (s *TripService) MigrateGuestTrips(ctx context.Context, userID string, guestID string) (int, error) {
	if utils.IsGuestID(userID) {
		return 0, utils.ErrInvalidInput
	}
	if !utils.IsGuestID(guestID) {
		return 0, utils.ErrNotGuest
	}

	trips, err := s.localRepo.List(ctx, guestID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	migrated := 0
	for _, trip := range trips {
		trip.ID = ""
		if _, err := s.cloudRepo.Save(ctx, userID, trip); err != nil {
			log.Printf("Migration aborted after %d trips: %v", migrated, err)
			return migrated, utils.ErrDatabaseError
		}
		migrated++
	}

	s.localRepo.ClearTrips(guestID)
	s.touchSync(ctx, userID)
	return migrated, nil
}

func (s *TripService) SyncStatus(ctx context.Context, userID string) (*response_models.SyncStatus, error) {
	var status response_models.SyncStatus
	if !s.store.Get(localstore.OfflineKeyPrefix+userID, &status) {
		trips, _ := s.trips.List(ctx, userID)
		status = response_models.SyncStatus{
			SavedTrips: len(trips),
			LastSync:   time.Now().UTC().Format(time.RFC3339),
		}
	}
	return &status, nil
}

func (s *TripService) touchSync(ctx context.Context, userID string) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return
	}
	status := response_models.SyncStatus{
		SavedTrips: len(trips),
		LastSync:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Set(localstore.OfflineKeyPrefix+userID, status); err != nil {
		log.Printf("Sync metadata write failed: %v", err)
	}
}
