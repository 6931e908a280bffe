// Package main is the entry point for the drone fulfillment service.
//
// @title           Drone Fulfillment API
// @version         1.0.0
// @description     Inventory, backlog and drone container packing for a blood product warehouse.
//
//	Orders are filled from stock, packed first-fit into capacity-bounded drone containers
//	and shipped; whatever cannot be filled waits in a FIFO backlog until the next restock.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/drone-fulfillment
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Operator token from POST /api/auth/token, as "Bearer <token>".
//
// @tag.name        Inventory
// @tag.description Catalog, stock levels and restocking
//
// @tag.name        Orders
// @tag.description Order submission, backlog and shipment history
//
// @tag.name        Audit
// @tag.description Operations log of requests and state changes
//
// @tag.name        Auth
// @tag.description Operator token issuance
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/drone-fulfillment/docs" // swagger docs

	"github.com/guttosm/drone-fulfillment/config"
	"github.com/guttosm/drone-fulfillment/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
