package handlers

import (
	"net/http"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers reads over the append-only audit log.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade, userService portssvc.UserSvcFacade, adminEmail string) {
	h := newAuditHandler(auditService)
	view := requirePermission(userService, adminEmail, domain.PermAuditView)

	audit := rg.Group("/audit")
	{
		audit.GET("", view, h.listEntries)
	}
}

func (h *auditHandler) listEntries(c *gin.Context) {
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	entries, err := h.auditService.ListEntries(c.Request.Context(), domain.Collection(params.EntityType), params.Limit)
	if err != nil {
		respondError(c, err, "failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}
