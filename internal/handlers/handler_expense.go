package handlers

import (
	"net/http"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers expense CRUD. Listing supports an optional
// paymentCenterID filter.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, userService portssvc.UserSvcFacade, adminEmail string) {
	h := newExpenseHandler(expenseService)
	write := requirePermission(userService, adminEmail, domain.PermExpensesWrite)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.POST("", write, h.createExpense)
		expenses.PUT("/:id", write, h.updateExpense)
		expenses.DELETE("/:id", write, h.deleteExpense)
	}
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorID, _ := middleware.GetUserIDFromContext(c)
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	if centerID := c.Query("paymentCenterID"); centerID != "" {
		expenses, err := h.expenseService.FilterExpensesByCenter(c.Request.Context(), centerID)
		if err != nil {
			respondError(c, err, "failed to filter expenses")
			return
		}
		c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updaterID, _ := middleware.GetUserIDFromContext(c)
	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	deleterID, _ := middleware.GetUserIDFromContext(c)
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id"), deleterID); err != nil {
		respondError(c, err, "failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
