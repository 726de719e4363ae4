package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// AddExpense godoc
// @Summary Record an expense against a trip
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Param request body request_models.AddExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips/{id}/expenses [post]
func (e *ExpenseController) AddExpense(c *gin.Context) {
	var req request_models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := e.expenseService.AddExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Expense added")
}

// GetBudgetTracking godoc
// @Summary Get the expense ledger and budget totals for a trip
// @Tags Expenses
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/expenses [get]
func (e *ExpenseController) GetBudgetTracking(c *gin.Context) {
	tracking, err := e.expenseService.GetBudgetTracking(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tracking, "Budget tracking retrieved")
}

// UpdateExpense godoc
// @Summary Partially update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Param expenseId path string true "Expense id"
// @Param request body request_models.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/expenses/{expenseId} [patch]
func (e *ExpenseController) UpdateExpense(c *gin.Context) {
	var req request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := e.expenseService.UpdateExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("expenseId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense updated")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Trip id"
// @Param expenseId path string true "Expense id"
// @Success 200 {object} utils.APIResponse
// @Router /api/trips/{id}/expenses/{expenseId} [delete]
func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	err := e.expenseService.DeleteExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("expenseId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted")
}
