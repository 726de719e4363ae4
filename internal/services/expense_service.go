package services

import (
	"context"
	"time"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, userID string, tripID string, request request_models.AddExpenseRequest) (string, error)
	GetBudgetTracking(ctx context.Context, userID string, tripID string) (*response_models.BudgetTracking, error)
	UpdateExpense(ctx context.Context, userID string, tripID string, expenseID string, request request_models.UpdateExpenseRequest) error
	DeleteExpense(ctx context.Context, userID string, tripID string, expenseID string) error
}

type ExpenseService struct {
	expenses repositories.ExpenseRepository
	trips    repositories.TripRepository
}

func NewExpenseService(expenses repositories.ExpenseRepository, trips repositories.TripRepository) ExpenseServiceInterface {
	return &ExpenseService{expenses: expenses, trips: trips}
}

func (s *ExpenseService) AddExpense(ctx context.Context, userID string, tripID string, request request_models.AddExpenseRequest) (string, error) {
	trip, err := s.trips.Get(ctx, userID, tripID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if trip == nil {
		return "", utils.ErrTripNotFound
	}

	date := request.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	expense := response_models.ExpenseResponse{
		Category:    request.Category,
		Amount:      request.Amount,
		Description: request.Description,
		Date:        date,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	id, err := s.expenses.Save(ctx, userID, tripID, expense)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id, nil
}

// GetBudgetTracking totals recorded spending against the trip budget.
// RemainingBudget may go negative when the trip runs over.
func (s *ExpenseService) GetBudgetTracking(ctx context.Context, userID string, tripID string) (*response_models.BudgetTracking, error) {
	trip, err := s.trips.Get(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	expenses, err := s.expenses.List(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expenses == nil {
		expenses = []response_models.ExpenseResponse{}
	}

	totalSpent := 0.0
	categorySpending := map[string]float64{}
	for _, expense := range expenses {
		totalSpent += expense.Amount
		categorySpending[expense.Category] += expense.Amount
	}

	return &response_models.BudgetTracking{
		TripID:           tripID,
		Expenses:         expenses,
		TotalSpent:       totalSpent,
		RemainingBudget:  trip.Budget - totalSpent,
		CategorySpending: categorySpending,
	}, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, userID string, tripID string, expenseID string, request request_models.UpdateExpenseRequest) error {
	if request.Category == nil && request.Amount == nil && request.Description == nil && request.Date == nil {
		return utils.ErrInvalidInput
	}
	if err := s.expenses.Update(ctx, userID, tripID, expenseID, request); err != nil {
		return utils.ErrExpenseNotFound
	}
	return nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID string, tripID string, expenseID string) error {
	if err := s.expenses.Delete(ctx, userID, tripID, expenseID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
