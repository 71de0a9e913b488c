package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

type authHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newAuthHandler(ss portssvc.SessionSvcFacade) *authHandler {
	return &authHandler{sessionService: ss}
}

// registerAuthRoutes registers the public, rate-limited authentication
// routes.
func registerAuthRoutes(r *gin.Engine, limiterInstance *limiter.Limiter, sessionService portssvc.SessionSvcFacade) {
	h := newAuthHandler(sessionService)

	auth := r.Group("/auth", middleware.RateLimit(limiterInstance))
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
	}
}

// registerSessionRoutes registers the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newAuthHandler(sessionService)

	auth := rg.Group("/auth")
	{
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
		auth.POST("/change-password", h.changePassword)
		auth.GET("/me", h.me)
	}
}

func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.sessionService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "registration failed")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("user registered, pending approval", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToRegisterResponse(user))
}

func (h *authHandler) refresh(c *gin.Context) {
	resp, err := h.sessionService.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to refresh session")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *authHandler) logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		respondError(c, err, "logout failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *authHandler) changePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.sessionService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "failed to change password")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *authHandler) me(c *gin.Context) {
	user := h.sessionService.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
