// Package app provides router configuration.
package app

import (
	"github.com/guttosm/drone-fulfillment/config"
	"github.com/guttosm/drone-fulfillment/internal/http"
	"github.com/guttosm/drone-fulfillment/internal/middleware"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var (
		ledger         service.ShipmentLedger
		loggingService service.LoggingService
	)
	if dbComponents != nil {
		ledger = dbComponents.Ledger
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(services.Fulfillment, ledger, loggingService)

	healthHandler := http.NewHealthHandler()
	healthHandler.SetCatalogState(services.Fulfillment)
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_shipments", dbComponents.ShipmentsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	var tokens service.TokenService
	if cfg.Auth.JWTSecretKey != "" {
		tokens = service.NewTokenService(service.TokenConfig{
			SecretKey: cfg.Auth.JWTSecretKey,
			Issuer:    cfg.Auth.JWTIssuer,
			TTL:       cfg.Auth.TokenTTL,
		})
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		TokenService:   tokens,
		Idempotency:    middleware.NewIdempotencyStore(cfg.Fulfillment.IdempotencyTTL, 0),
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
