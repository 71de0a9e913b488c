package handlers

import (
	"net/http"
	"strconv"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers the batch budget save and budget reads.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, userService portssvc.UserSvcFacade, adminEmail string) {
	h := newBudgetHandler(budgetService)
	write := requirePermission(userService, adminEmail, domain.PermBudgetsWrite)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.PUT("", write, h.saveBudgets)
	}
}

func (h *budgetHandler) saveBudgets(c *gin.Context) {
	var req dto.SaveBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	saved, err := h.budgetService.SaveBudgets(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "failed to save budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(saved))
}

func (h *budgetHandler) listBudgets(c *gin.Context) {
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
			return
		}
		budgets, err := h.budgetService.ListBudgetsForYear(c.Request.Context(), year)
		if err != nil {
			respondError(c, err, "failed to list budgets")
			return
		}
		c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}
