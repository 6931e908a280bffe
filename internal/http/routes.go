package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/middleware"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// FulfillmentRoutes registers the inventory and order endpoints.
type FulfillmentRoutes struct {
	handler *Handler
}

// NewFulfillmentRoutes creates a new FulfillmentRoutes instance.
func NewFulfillmentRoutes(handler *Handler) *FulfillmentRoutes {
	return &FulfillmentRoutes{handler: handler}
}

// RegisterPublicRoutes registers every endpoint without authentication.
func (r *FulfillmentRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.registerReads(rg)
	r.registerOperatorReads(rg)
	r.registerWrites(rg)
}

// RegisterProtectedRoutes registers reads for any authenticated caller and
// writes and the operations log for operators only. rg must already authenticate.
func (r *FulfillmentRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	r.registerReads(rg)
	operators := rg.Group("", middleware.RequireRole(dto.RoleOperator))
	r.registerOperatorReads(operators)
	r.registerWrites(operators)
}

func (r *FulfillmentRoutes) registerReads(rg *gin.RouterGroup) {
	rg.GET("/inventory", r.handler.GetInventory)
	rg.GET("/inventory/:product_id", r.handler.GetProduct)
	rg.GET("/backlog", r.handler.GetBacklog)
	rg.GET("/orders/:order_id/shipments", r.handler.GetShipments)
}

// registerOperatorReads registers reads that expose operator activity.
func (r *FulfillmentRoutes) registerOperatorReads(rg *gin.RouterGroup) {
	rg.GET("/logs", r.handler.GetLogs)
}

func (r *FulfillmentRoutes) registerWrites(rg *gin.RouterGroup) {
	rg.POST("/catalog", r.handler.LoadCatalog)
	rg.POST("/restock", r.handler.Restock)
	rg.POST("/orders", r.handler.SubmitOrder)
}

// TokenRoutes registers POST /auth/token behind API key authentication.
type TokenRoutes struct {
	handler *TokenHandler
}

// NewTokenRoutes creates a new TokenRoutes instance.
func NewTokenRoutes(handler *TokenHandler) *TokenRoutes {
	return &TokenRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the token endpoint. Only API key holders
// may mint tokens, so bearer tokens cannot renew themselves.
func (r *TokenRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/auth/token", middleware.APIKeyAuth(cfg.APIKeys), r.handler.IssueToken)
}
