package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to user administration.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user administration routes. The whole
// group is administrative.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, adminEmail string) {
	h := newUserHandler(userService)

	users := rg.Group("/users", adminOnly(userService, adminEmail))
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.POST("/:id/approve", h.approveUser)
		users.POST("/:id/reject", h.rejectUser)
		users.DELETE("/:id", h.deactivateUser)
	}
}

func (h *userHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.CreateUser(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "failed to create user")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("user created", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *userHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updaterID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) approveUser(c *gin.Context) {
	approverID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.ApproveUser(c.Request.Context(), c.Param("id"), approverID)
	if err != nil {
		respondError(c, err, "failed to approve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) rejectUser(c *gin.Context) {
	approverID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.RejectUser(c.Request.Context(), c.Param("id"), approverID)
	if err != nil {
		respondError(c, err, "failed to reject user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) deactivateUser(c *gin.Context) {
	updaterID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.DeactivateUser(c.Request.Context(), c.Param("id"), updaterID)
	if err != nil {
		respondError(c, err, "failed to deactivate user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
