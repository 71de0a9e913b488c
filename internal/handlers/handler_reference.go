package handlers

import (
	"net/http"

	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

// registerReferenceRoutes registers reads over the lookup tables.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	reference := rg.Group("/reference")
	{
		reference.GET("/payment-centers", h.listPaymentCenters)
		reference.GET("/payment-types", h.listPaymentTypes)
		reference.GET("/expense-statuses", h.listExpenseStatuses)
		reference.GET("/programs", h.listPrograms)
	}
}

func (h *referenceHandler) listPaymentCenters(c *gin.Context) {
	centers, err := h.referenceService.ListPaymentCenters(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list payment centers")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentCenterResponses(centers))
}

func (h *referenceHandler) listPaymentTypes(c *gin.Context) {
	types, err := h.referenceService.ListPaymentTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list payment types")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentTypeResponses(types))
}

func (h *referenceHandler) listExpenseStatuses(c *gin.Context) {
	statuses, err := h.referenceService.ListExpenseStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list expense statuses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseStatusResponses(statuses))
}

func (h *referenceHandler) listPrograms(c *gin.Context) {
	programs, err := h.referenceService.ListPrograms(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list programs")
		return
	}
	c.JSON(http.StatusOK, dto.ToProgramResponses(programs))
}
