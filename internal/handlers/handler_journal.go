package handlers

import (
	"net/http"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers journal entry CRUD and the draft approval
// transitions.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, userService portssvc.UserSvcFacade, adminEmail string) {
	h := newJournalHandler(journalService)
	write := requirePermission(userService, adminEmail, domain.PermJournalsWrite)
	approve := requirePermission(userService, adminEmail, domain.PermJournalsApprove)

	journals := rg.Group("/journal-entries")
	{
		journals.GET("", h.listJournalEntries)
		journals.GET("/:id", h.getJournalEntry)
		journals.POST("", write, h.createJournalEntry)
		journals.PUT("/:id", write, h.updateJournalEntry)
		journals.DELETE("/:id", write, h.deleteJournalEntry)
		journals.POST("/:id/approve", approve, h.approveJournalEntry)
		journals.POST("/:id/reject", approve, h.rejectJournalEntry)
	}
}

func (h *journalHandler) createJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "failed to create journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) listJournalEntries(c *gin.Context) {
	entries, err := h.journalService.ListJournalEntries(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
}

func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) updateJournalEntry(c *gin.Context) {
	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updaterID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) deleteJournalEntry(c *gin.Context) {
	deleterID, _ := middleware.GetUserIDFromContext(c)
	if err := h.journalService.DeleteJournalEntry(c.Request.Context(), c.Param("id"), deleterID); err != nil {
		respondError(c, err, "failed to delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *journalHandler) approveJournalEntry(c *gin.Context) {
	approverID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.journalService.ApproveJournalEntry(c.Request.Context(), c.Param("id"), approverID)
	if err != nil {
		respondError(c, err, "failed to approve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) rejectJournalEntry(c *gin.Context) {
	approverID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.journalService.RejectJournalEntry(c.Request.Context(), c.Param("id"), approverID)
	if err != nil {
		respondError(c, err, "failed to reject journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
