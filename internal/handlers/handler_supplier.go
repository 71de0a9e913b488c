package handlers

import (
	"net/http"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers supplier CRUD. Reads are open to any
// authenticated user; writes need the suppliers capability.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade, userService portssvc.UserSvcFacade, adminEmail string) {
	h := newSupplierHandler(supplierService)
	write := requirePermission(userService, adminEmail, domain.PermSuppliersWrite)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.POST("", write, h.createSupplier)
		suppliers.PUT("/:id", write, h.updateSupplier)
		suppliers.DELETE("/:id", write, h.deleteSupplier)
	}
}

func (h *supplierHandler) createSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorID, _ := middleware.GetUserIDFromContext(c)
	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) listSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}

func (h *supplierHandler) getSupplier(c *gin.Context) {
	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) updateSupplier(c *gin.Context) {
	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updaterID, _ := middleware.GetUserIDFromContext(c)
	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	deleterID, _ := middleware.GetUserIDFromContext(c)
	if err := h.supplierService.DeleteSupplier(c.Request.Context(), c.Param("id"), deleterID); err != nil {
		respondError(c, err, "failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
