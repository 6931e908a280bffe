// Package app provides service initialization.
package app

import (
	"context"
	"errors"

	"github.com/guttosm/drone-fulfillment/config"
	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Fulfillment *service.FulfillmentService
	// Dispatcher writes notices to the ledger; nil without MongoDB.
	Dispatcher *service.AsyncDispatcher
}

// InitializeServices builds the warehouse. Shipment notices are always
// logged and, when a ledger is available, recorded through a worker pool.
func InitializeServices(cfg config.FulfillmentConfig, ledger service.ShipmentLedger) *ServiceComponents {
	components := &ServiceComponents{}

	dispatchers := service.MultiDispatcher{service.LogDispatcher{}}
	if ledger != nil {
		components.Dispatcher = service.NewAsyncDispatcher(
			service.NewLedgerDispatcher(ledger),
			service.DefaultAsyncDispatcherConfig(),
		)
		dispatchers = append(dispatchers, components.Dispatcher)
	}

	components.Fulfillment = service.NewFulfillmentService(
		service.WithCapacity(cfg.CapacityG),
		service.WithStrictRestock(cfg.StrictRestock),
		service.WithDispatcher(dispatchers),
	)
	return components
}

// Stop drains pending ledger writes.
func (s *ServiceComponents) Stop() {
	if s.Dispatcher != nil {
		s.Dispatcher.Stop()
	}
}

// BootstrapCatalog loads the startup catalog: CatalogFile when set, else the
// built-in catalog when autoload is on. Returns false when nothing was loaded.
func BootstrapCatalog(ctx context.Context, svc service.FulfillmentManager, cfg config.FulfillmentConfig) (bool, error) {
	var (
		entries []model.CatalogEntry
		source  string
	)
	switch {
	case cfg.CatalogFile != "":
		loaded, err := service.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return false, err
		}
		entries, source = loaded, cfg.CatalogFile
	case cfg.CatalogAutoload:
		entries, source = service.DefaultCatalog, "built-in"
	default:
		log.Info().Msg("Catalog autoload disabled, waiting for POST /api/catalog")
		return false, nil
	}

	if err := svc.LoadCatalog(ctx, entries); err != nil {
		if errors.Is(err, service.ErrCatalogAlreadyLoaded) {
			return false, nil
		}
		return false, err
	}
	log.Info().Str("source", source).Int("products", len(entries)).Msg("Startup catalog loaded")
	return true, nil
}
