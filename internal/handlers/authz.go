package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requirePermission gates a route on a capability tag. Administrative users
// (by role or by the designated admin email) bypass the explicit set.
func requirePermission(userSvc portssvc.UserSvcFacade, adminEmail string, perm domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := callerFromContext(c, userSvc)
		if !ok {
			return
		}
		if !user.HasPermission(perm, adminEmail) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("permission denied",
				slog.String("user_id", user.UserID), slog.String("permission", string(perm)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// adminOnly gates a route on administrative status.
func adminOnly(userSvc portssvc.UserSvcFacade, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := callerFromContext(c, userSvc)
		if !ok {
			return
		}
		if !user.IsAdmin(adminEmail) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("admin-only route denied",
				slog.String("user_id", user.UserID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// callerFromContext resolves the authenticated caller's user record. It
// aborts the request when the token subject no longer resolves.
func callerFromContext(c *gin.Context, userSvc portssvc.UserSvcFacade) (*domain.User, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}
	user, err := userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}
	return user, true
}
