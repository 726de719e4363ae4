package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wanderlust/internal/models/db_models"
	resp "wanderlust/internal/models/response_models"
)

type PackingRepository interface {
	// Replace writes the whole checklist snapshot for a trip.
	Replace(ctx context.Context, userID string, tripID string, items []resp.PackingItemResponse) error
	List(ctx context.Context, userID string, tripID string) ([]resp.PackingItemResponse, error)
	Toggle(ctx context.Context, userID string, tripID string, itemID string) error
}

type cloudPackingRepository struct {
	db *gorm.DB
}

func NewCloudPackingRepository(db *gorm.DB) PackingRepository {
	return &cloudPackingRepository{db: db}
}

func (r *cloudPackingRepository) Replace(ctx context.Context, userID string, tripID string, items []resp.PackingItemResponse) error {
	tid, err := uuid.Parse(tripID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ? AND user_id = ?", tid, userID).
			Delete(&dbm.PackingItem{}).Error; err != nil {
			return err
		}

		for _, item := range items {
			row := dbm.PackingItem{
				TripID:    tid,
				UserID:    userID,
				Item:      item.Item,
				Category:  item.Category,
				IsChecked: item.IsChecked,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *cloudPackingRepository) List(ctx context.Context, userID string, tripID string) ([]resp.PackingItemResponse, error) {
	var rows []dbm.PackingItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]resp.PackingItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, resp.PackingItemResponse{
			ID:        row.ID.String(),
			Item:      row.Item,
			Category:  row.Category,
			IsChecked: row.IsChecked,
		})
	}
	return out, nil
}

// Toggle is read-then-write, same caveat as the favorite flag.
func (r *cloudPackingRepository) Toggle(ctx context.Context, userID string, tripID string, itemID string) error {
	var row dbm.PackingItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&row).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&dbm.PackingItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("is_checked", !row.IsChecked).Error
}
