package handlers

import (
	"log"
	"net/http"

	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
	"github.com/fintrackhq/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(r, newAuthLimiter(cfg), services.Session)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSessionRoutes(v1, services.Session)
	registerUserRoutes(v1, services.User, cfg.AdminEmail)
	registerSupplierRoutes(v1, services.Supplier, services.User, cfg.AdminEmail)
	registerExpenseRoutes(v1, services.Expense, services.User, cfg.AdminEmail)
	registerJournalRoutes(v1, services.Journal, services.User, cfg.AdminEmail)
	registerBudgetRoutes(v1, services.Budget, services.User, cfg.AdminEmail)
	registerReferenceRoutes(v1, services.Reference)
	registerAuditRoutes(v1, services.Audit, services.User, cfg.AdminEmail)
}

// newAuthLimiter builds the per-IP rate limiter applied to the public auth
// routes.
func newAuthLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		log.Printf("Warning: invalid AUTH_RATE_LIMIT (%q), defaulting to 10-M: %v", cfg.AuthRateLimit, err)
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
