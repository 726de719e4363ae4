package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wanderlust/internal/models/db_models"
	resp "wanderlust/internal/models/response_models"
)

// TripRepository is the per-entity store contract. Three implementations exist:
// a cloud (Postgres) store, a local store with localStorage semantics, and a
// routed store that picks between them by identity class.
type TripRepository interface {
	Save(ctx context.Context, userID string, trip resp.SavedTrip) (string, error)
	List(ctx context.Context, userID string) ([]resp.SavedTrip, error)
	Get(ctx context.Context, userID string, tripID string) (*resp.SavedTrip, error)
	Delete(ctx context.Context, userID string, tripID string) error
	ToggleFavorite(ctx context.Context, userID string, tripID string) error
}

type cloudTripRepository struct {
	db *gorm.DB
}

func NewCloudTripRepository(db *gorm.DB) TripRepository {
	return &cloudTripRepository{db: db}
}

func (r *cloudTripRepository) Save(ctx context.Context, userID string, trip resp.SavedTrip) (string, error) {
	row := dbm.Trip{
		UserID:        userID,
		Title:         trip.Title,
		Destination:   trip.Destination,
		StartDate:     trip.StartDate,
		EndDate:       trip.EndDate,
		Budget:        trip.Budget,
		Travelers:     trip.Travelers,
		TripType:      trip.TripType,
		ItineraryData: string(trip.Itinerary),
		IsFavorite:    trip.IsFavorite,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID.String(), nil
}

func (r *cloudTripRepository) List(ctx context.Context, userID string) ([]resp.SavedTrip, error) {
	var rows []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]resp.SavedTrip, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSavedTrip(row))
	}
	return out, nil
}

func (r *cloudTripRepository) Get(ctx context.Context, userID string, tripID string) (*resp.SavedTrip, error) {
	row, err := r.findRow(ctx, userID, tripID)
	if err != nil || row == nil {
		return nil, err
	}
	trip := toSavedTrip(*row)
	return &trip, nil
}

func (r *cloudTripRepository) Delete(ctx context.Context, userID string, tripID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Delete(&dbm.Trip{}).Error
}

// ToggleFavorite is read-then-write with no wrapping transaction; concurrent
// toggles on the same trip can race.
func (r *cloudTripRepository) ToggleFavorite(ctx context.Context, userID string, tripID string) error {
	row, err := r.findRow(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if row == nil {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ? AND user_id = ?", tripID, userID).
		Update("is_favorite", !row.IsFavorite).Error
}

func (r *cloudTripRepository) findRow(ctx context.Context, userID string, tripID string) (*dbm.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}

	var row dbm.Trip
	err = r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func toSavedTrip(row dbm.Trip) resp.SavedTrip {
	return resp.SavedTrip{
		ID:          row.ID.String(),
		Title:       row.Title,
		Destination: row.Destination,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Budget:      row.Budget,
		Travelers:   row.Travelers,
		TripType:    row.TripType,
		Itinerary:   []byte(row.ItineraryData),
		IsFavorite:  row.IsFavorite,
		SavedAt:     time.Unix(row.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
