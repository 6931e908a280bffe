// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/config"
	"github.com/guttosm/drone-fulfillment/internal/http"
	"github.com/guttosm/drone-fulfillment/internal/jobs"
	"github.com/guttosm/drone-fulfillment/internal/middleware"
	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

// App is the wired service together with everything that needs stopping.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents

	cfg         config.Config
	db          *DatabaseComponents
	backlogJob  *jobs.BacklogReportJob
	idempotency *middleware.IdempotencyStore
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var services *ServiceComponents
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		services = InitializeServices(cfg.Fulfillment, dbComponents.Ledger)
	} else {
		services = InitializeServices(cfg.Fulfillment, nil)
	}

	a := &App{Services: services, cfg: cfg, db: dbComponents}

	if _, err := BootstrapCatalog(context.Background(), services.Fulfillment, cfg.Fulfillment); err != nil {
		a.Close()
		return nil, fmt.Errorf("bootstrap catalog: %w", err)
	}

	routerComponents := InitializeRouter(services, dbComponents, cfg)
	a.idempotency = routerComponents.Config.Idempotency
	a.Router = http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	if cfg.Fulfillment.BacklogReportSchedule != "" {
		a.backlogJob = jobs.NewBacklogReportJob(services.Fulfillment, cfg.Fulfillment.BacklogReportSchedule)
		if err := a.backlogJob.Start(); err != nil {
			a.backlogJob = nil
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// Run serves HTTP until a shutdown signal and then releases every component.
func (a *App) Run() error {
	server := NewServer(a.Router, a.cfg.Server.Port, a.cfg.Server.ShutdownTimeout)
	err := server.Run()
	a.Close()
	return err
}

// Close stops background work in dependency order: no new reports, then
// pending ledger writes and request logs, then the database.
func (a *App) Close() {
	if a.backlogJob != nil {
		a.backlogJob.Stop()
	}
	if a.idempotency != nil {
		a.idempotency.Stop()
	}
	if a.Services != nil {
		a.Services.Stop()
	}
	middleware.StopAsyncLogger()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	a.db.Close(ctx)

	log.Info().Msg("Application stopped")
}
