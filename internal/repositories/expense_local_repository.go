package repositories

import (
	"context"
	"strconv"
	"time"

	req "wanderlust/internal/models/request_models"
	resp "wanderlust/internal/models/response_models"
	"wanderlust/pkg/localstore"
	"wanderlust/pkg/utils"
)

// localExpenseRepository keys the ledger by trip only, matching the original
// single-profile storage scheme: wanderlust_expenses_<tripID>.
type localExpenseRepository struct {
	store *localstore.Store
}

func NewLocalExpenseRepository(store *localstore.Store) ExpenseRepository {
	return &localExpenseRepository{store: store}
}

func expensesKey(tripID string) string {
	return localstore.ExpensesKeyPrefix + tripID
}

func (r *localExpenseRepository) Save(ctx context.Context, userID string, tripID string, expense resp.ExpenseResponse) (string, error) {
	var expenses []resp.ExpenseResponse
	r.store.Get(expensesKey(tripID), &expenses)

	if expense.ID == "" {
		expense.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if expense.CreatedAt == "" {
		expense.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	expenses = append(expenses, expense)

	if err := r.store.Set(expensesKey(tripID), expenses); err != nil {
		return "", err
	}
	return expense.ID, nil
}

func (r *localExpenseRepository) List(ctx context.Context, userID string, tripID string) ([]resp.ExpenseResponse, error) {
	var expenses []resp.ExpenseResponse
	r.store.Get(expensesKey(tripID), &expenses)
	return expenses, nil
}

func (r *localExpenseRepository) Delete(ctx context.Context, userID string, tripID string, expenseID string) error {
	var expenses []resp.ExpenseResponse
	r.store.Get(expensesKey(tripID), &expenses)

	filtered := expenses[:0]
	for _, e := range expenses {
		if e.ID != expenseID {
			filtered = append(filtered, e)
		}
	}
	return r.store.Set(expensesKey(tripID), filtered)
}

func (r *localExpenseRepository) Update(ctx context.Context, userID string, tripID string, expenseID string, updates req.UpdateExpenseRequest) error {
	var expenses []resp.ExpenseResponse
	r.store.Get(expensesKey(tripID), &expenses)

	for i := range expenses {
		if expenses[i].ID != expenseID {
			continue
		}
		if updates.Category != nil {
			expenses[i].Category = *updates.Category
		}
		if updates.Amount != nil {
			expenses[i].Amount = *updates.Amount
		}
		if updates.Description != nil {
			expenses[i].Description = *updates.Description
		}
		if updates.Date != nil {
			expenses[i].Date = *updates.Date
		}
		return r.store.Set(expensesKey(tripID), expenses)
	}
	return utils.ErrExpenseNotFound
}
