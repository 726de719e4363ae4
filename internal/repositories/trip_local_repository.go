package repositories

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/localstore"
	"wanderlust/pkg/utils"
)

// LocalTripRepository adds the migration-only collection wipe on top of the
// store contract.
type LocalTripRepository interface {
	TripRepository
	ClearTrips(userID string)
}

// localTripRepository keeps each user's trips as one JSON collection under
// wanderlust_trips_<userID>. Writes replace the whole collection.
type localTripRepository struct {
	store *localstore.Store
}

func NewLocalTripRepository(store *localstore.Store) LocalTripRepository {
	return &localTripRepository{store: store}
}

func tripsKey(userID string) string {
	return localstore.TripsKeyPrefix + userID
}

func (r *localTripRepository) Save(ctx context.Context, userID string, trip response_models.SavedTrip) (string, error) {
	trips, _ := r.load(userID)

	if trip.ID == "" {
		trip.ID = newLocalTripID()
	}
	if trip.SavedAt == "" {
		trip.SavedAt = time.Now().UTC().Format(time.RFC3339)
	}
	trips = append(trips, trip)

	if err := r.store.Set(tripsKey(userID), trips); err != nil {
		return "", err
	}
	return trip.ID, nil
}

func (r *localTripRepository) List(ctx context.Context, userID string) ([]response_models.SavedTrip, error) {
	trips, _ := r.load(userID)
	return trips, nil
}

func (r *localTripRepository) Get(ctx context.Context, userID string, tripID string) (*response_models.SavedTrip, error) {
	trips, _ := r.load(userID)
	for i := range trips {
		if trips[i].ID == tripID {
			return &trips[i], nil
		}
	}
	return nil, nil
}

func (r *localTripRepository) Delete(ctx context.Context, userID string, tripID string) error {
	trips, _ := r.load(userID)

	filtered := trips[:0]
	for _, t := range trips {
		if t.ID != tripID {
			filtered = append(filtered, t)
		}
	}
	return r.store.Set(tripsKey(userID), filtered)
}

func (r *localTripRepository) ToggleFavorite(ctx context.Context, userID string, tripID string) error {
	trips, _ := r.load(userID)
	for i := range trips {
		if trips[i].ID == tripID {
			trips[i].IsFavorite = !trips[i].IsFavorite
			return r.store.Set(tripsKey(userID), trips)
		}
	}
	return utils.ErrTripNotFound
}

// ClearTrips drops a user's whole local trip collection. Used once, after a
// successful guest-to-cloud migration.
func (r *localTripRepository) ClearTrips(userID string) {
	r.store.Delete(tripsKey(userID))
}

func (r *localTripRepository) load(userID string) ([]response_models.SavedTrip, bool) {
	var trips []response_models.SavedTrip
	ok := r.store.Get(tripsKey(userID), &trips)
	return trips, ok
}

func newLocalTripID() string {
	return fmt.Sprintf("trip_%d_%06d", time.Now().UnixMilli(), rand.Intn(1000000))
}
