package handlers

import (
	"fmt"

	"github.com/SscSPs/currency_exchange/cmd/docs"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/SscSPs/currency_exchange/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// HTTP metrics are registered with reg and served from /metrics.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	reg *prometheus.Registry,
) error {
	metrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to set up HTTP metrics: %w", err)
	}
	writeLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins), metrics.Middleware())

	registerRootRoutes(r, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	setupAPIRoutes(r, services, middleware.RateLimit(writeLimiter))

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes delegates to the entity route registrations, passing required services.
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer, writeGuard gin.HandlerFunc) {
	api := r.Group("")

	registerCurrencyRoutes(api, services.Currency, writeGuard)
	registerExchangeRateRoutes(api, services.ExchangeRate, writeGuard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
