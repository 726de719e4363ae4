package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wanderlust/internal/models/db_models"
	req "wanderlust/internal/models/request_models"
	resp "wanderlust/internal/models/response_models"
)

type ExpenseRepository interface {
	Save(ctx context.Context, userID string, tripID string, expense resp.ExpenseResponse) (string, error)
	List(ctx context.Context, userID string, tripID string) ([]resp.ExpenseResponse, error)
	Delete(ctx context.Context, userID string, tripID string, expenseID string) error
	Update(ctx context.Context, userID string, tripID string, expenseID string, updates req.UpdateExpenseRequest) error
}

type cloudExpenseRepository struct {
	db *gorm.DB
}

func NewCloudExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &cloudExpenseRepository{db: db}
}

func (r *cloudExpenseRepository) Save(ctx context.Context, userID string, tripID string, expense resp.ExpenseResponse) (string, error) {
	tid, err := uuid.Parse(tripID)
	if err != nil {
		return "", err
	}

	row := dbm.Expense{
		TripID:      tid,
		UserID:      userID,
		Category:    expense.Category,
		Description: expense.Description,
		Amount:      expense.Amount,
		Date:        expense.Date,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID.String(), nil
}

func (r *cloudExpenseRepository) List(ctx context.Context, userID string, tripID string) ([]resp.ExpenseResponse, error) {
	var rows []dbm.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]resp.ExpenseResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, resp.ExpenseResponse{
			ID:          row.ID.String(),
			Category:    row.Category,
			Amount:      row.Amount,
			Description: row.Description,
			Date:        row.Date,
			CreatedAt:   time.Unix(row.CreatedAt, 0).UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

func (r *cloudExpenseRepository) Delete(ctx context.Context, userID string, tripID string, expenseID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Delete(&dbm.Expense{}).Error
}

func (r *cloudExpenseRepository) Update(ctx context.Context, userID string, tripID string, expenseID string, updates req.UpdateExpenseRequest) error {
	fields := map[string]interface{}{}
	if updates.Category != nil {
		fields["category"] = *updates.Category
	}
	if updates.Amount != nil {
		fields["amount"] = *updates.Amount
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Date != nil {
		fields["date"] = *updates.Date
	}
	if len(fields) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&dbm.Expense{}).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("expense not found")
	}
	return nil
}
