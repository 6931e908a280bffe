package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/middleware"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

const (
	defaultShipmentsLimit = 50
	maxShipmentsLimit     = 500
	defaultLogsLimit      = 100
	maxLogsLimit          = 1000
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// BacklogView is the body of GET /api/backlog.
type BacklogView struct {
	Fragments []model.BacklogFragment `json:"fragments"`
	Count     int                     `json:"count" example:"1"`
	Units     int                     `json:"units" example:"4"`
} // @name BacklogView

// CatalogView is the body of a successful catalog load.
type CatalogView struct {
	Products int `json:"products" example:"13"`
} // @name CatalogView

// LogsView is the body of GET /api/logs.
type LogsView struct {
	Entries []model.LogEntry `json:"entries"`
	// Total counts every matching entry, ignoring limit
	Total int64 `json:"total" example:"42"`
} // @name LogsView

// Handler serves the fulfillment API. ledger and logging may be nil when
// MongoDB is disabled.
type Handler struct {
	manager service.FulfillmentManager
	ledger  service.ShipmentLedger
	logging service.LoggingService
}

// NewHandler creates a new Handler instance.
func NewHandler(manager service.FulfillmentManager, ledger service.ShipmentLedger, logging service.LoggingService) *Handler {
	return &Handler{manager: manager, ledger: ledger, logging: logging}
}

// LoadCatalog handles POST /api/catalog.
//
// @Summary      Load the product catalog
// @Description  Initializes the inventory with every product at zero stock. The catalog can be loaded once per process.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        request body dto.LoadCatalogRequest true "Catalog"
// @Success      201 {object} dto.SuccessResponse{data=CatalogView}
// @Failure      400 {object} dto.ErrorResponse "Invalid product"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Operator role required"
// @Failure      409 {object} dto.ErrorResponse "Duplicate product or catalog already loaded"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/catalog [post]
func (h *Handler) LoadCatalog(c *gin.Context) {
	req, ok := bindRequest[dto.LoadCatalogRequest](c)
	if !ok {
		return
	}

	entries := req.ToEntries()
	if err := h.manager.LoadCatalog(c.Request.Context(), entries); err != nil {
		middleware.AuditLogError(h.logging, c, model.ActionLoadCatalog, "catalog load rejected", err,
			map[string]interface{}{"products": len(entries)})
		h.writeError(c, err)
		return
	}

	middleware.AuditLog(h.logging, c, model.ActionLoadCatalog, "catalog loaded",
		map[string]interface{}{"products": len(entries)})
	NewResponseBuilder(c).SuccessCreated(CatalogView{Products: len(entries)}, i18n.SuccessKeyCatalogLoaded)
}

// GetInventory handles GET /api/inventory.
//
// @Summary      List inventory
// @Description  Returns every catalog product with its on-hand quantity, ordered by product id.
// @Tags         Inventory
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.ProductRecord}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/inventory [get]
func (h *Handler) GetInventory(c *gin.Context) {
	records := h.manager.Inventory()
	if records == nil {
		records = []model.ProductRecord{}
	}
	NewResponseBuilder(c).SuccessOK(records)
}

// GetProduct handles GET /api/inventory/:product_id.
//
// @Summary      Get one product
// @Tags         Inventory
// @Produce      json
// @Param        product_id path int true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=model.ProductRecord}
// @Failure      400 {object} dto.ErrorResponse "Malformed product id"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/inventory/{product_id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := intParam(c, "product_id")
	if !ok {
		return
	}

	record, err := h.manager.Product(productID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(record)
}

// Restock handles POST /api/restock.
//
// @Summary      Restock products
// @Description  Adds stock and re-drives every backlogged order fragment in arrival order. Unknown products are reported per item; with strict restock the whole batch is rejected instead.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Key making retries safe"
// @Param        request body dto.RestockRequest true "Stock arriving"
// @Success      200 {object} dto.SuccessResponse{data=model.RestockReport}
// @Failure      400 {object} dto.ErrorResponse "Invalid quantity"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Failure      409 {object} dto.ErrorResponse "Catalog not loaded"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/restock [post]
func (h *Handler) Restock(c *gin.Context) {
	req, ok := bindRequest[dto.RestockRequest](c)
	if !ok {
		return
	}

	report, err := h.manager.Restock(c.Request.Context(), req.ToDeltas())
	if err != nil {
		middleware.AuditLogError(h.logging, c, model.ActionRestock, "restock rejected", err,
			map[string]interface{}{"items": len(req.Restock)})
		h.writeError(c, err)
		return
	}

	middleware.AuditLog(h.logging, c, model.ActionRestock, "restock applied", map[string]interface{}{
		"applied":           len(report.Applied),
		"failed":            len(report.Failed),
		"redriven":          len(report.Redriven),
		"backlog_remaining": report.Backlog,
	})
	NewResponseBuilder(c).Success(http.StatusOK, report, i18n.SuccessKeyRestocked)
}

// SubmitOrder handles POST /api/orders.
//
// @Summary      Submit a hospital order
// @Description  Fulfills what current stock allows, packs it into drone containers, dispatches one shipment per container and defers the rest to the backlog.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Key making retries safe"
// @Param        request body dto.SubmitOrderRequest true "Order"
// @Success      200 {object} dto.SuccessResponse{data=model.OrderResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid quantity or empty order"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Failure      409 {object} dto.ErrorResponse "Catalog not loaded or Idempotency-Key conflict"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	req, ok := bindRequest[dto.SubmitOrderRequest](c)
	if !ok {
		return
	}

	order := req.ToOrder()
	result, err := h.manager.ProcessOrder(c.Request.Context(), order)
	if err != nil {
		middleware.AuditLogError(h.logging, c, model.ActionSubmitOrder, "order rejected", err,
			map[string]interface{}{"order_id": order.OrderID})
		h.writeError(c, err)
		return
	}

	middleware.AuditLog(h.logging, c, model.ActionSubmitOrder, "order processed", map[string]interface{}{
		"order_id":   order.OrderID,
		"containers": len(result.Containers),
		"fulfilled":  result.FulfilledUnits(),
		"deferred":   result.DeferredUnits(),
	})
	NewResponseBuilder(c).Success(http.StatusOK, result, i18n.SuccessKeyOrderProcessed)
}

// GetBacklog handles GET /api/backlog.
//
// @Summary      List the backlog
// @Description  Returns the order fragments waiting for stock, oldest first.
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=BacklogView}
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/backlog [get]
func (h *Handler) GetBacklog(c *gin.Context) {
	fragments := h.manager.Backlog()
	if fragments == nil {
		fragments = []model.BacklogFragment{}
	}
	units := 0
	for _, f := range fragments {
		units += model.Order{Requested: f.Requested}.TotalUnits()
	}
	NewResponseBuilder(c).SuccessOK(BacklogView{Fragments: fragments, Count: len(fragments), Units: units})
}

// GetShipments handles GET /api/orders/:order_id/shipments.
//
// @Summary      List shipments of an order
// @Description  Returns dispatch notices recorded for the order, oldest first. Needs MongoDB.
// @Tags         Orders
// @Produce      json
// @Param        order_id path int true "Order id"
// @Param        limit query int false "Maximum notices (default 50, max 500)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.DispatchNotice}
// @Failure      400 {object} dto.ErrorResponse "Malformed order id or limit"
// @Failure      503 {object} dto.ErrorResponse "Dispatch ledger unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/orders/{order_id}/shipments [get]
func (h *Handler) GetShipments(c *gin.Context) {
	orderID, ok := intParam(c, "order_id")
	if !ok {
		return
	}

	limit, ok := limitQuery(c, defaultShipmentsLimit, maxShipmentsLimit)
	if !ok {
		return
	}

	if h.ledger == nil {
		h.writeError(c, service.ErrLedgerUnavailable)
		return
	}

	notices, err := h.ledger.ListByOrder(c.Request.Context(), orderID, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if notices == nil {
		notices = []model.DispatchNotice{}
	}
	NewResponseBuilder(c).SuccessOK(notices)
}

// GetLogs handles GET /api/logs.
//
// @Summary      Query the operations log
// @Description  Returns request and audit entries, newest first. Needs MongoDB.
// @Tags         Audit
// @Produce      json
// @Param        request_id query string false "Request id"
// @Param        action_type query string false "Audit action" Enums(load_catalog, restock, submit_order)
// @Param        level query string false "Level" Enums(debug, info, warn, error)
// @Param        since query string false "RFC 3339 lower bound"
// @Param        until query string false "RFC 3339 upper bound"
// @Param        limit query int false "Maximum entries (default 100, max 1000)"
// @Success      200 {object} dto.SuccessResponse{data=LogsView}
// @Failure      400 {object} dto.ErrorResponse "Malformed filter"
// @Failure      403 {object} dto.ErrorResponse "Operator role required"
// @Failure      503 {object} dto.ErrorResponse "Operations log unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *Handler) GetLogs(c *gin.Context) {
	opts, ok := logQuery(c)
	if !ok {
		return
	}

	if h.logging == nil {
		h.writeError(c, service.ErrLogsUnavailable)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.logging.QueryLogs(ctx, opts)
	if err != nil {
		h.writeError(c, err)
		return
	}
	total, err := h.logging.CountLogs(ctx, opts)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}
	NewResponseBuilder(c).SuccessOK(LogsView{Entries: entries, Total: total})
}

func logQuery(c *gin.Context) (model.LogQueryOptions, bool) {
	opts := model.LogQueryOptions{
		RequestID:  c.Query("request_id"),
		ActionType: c.Query("action_type"),
		Level:      c.Query("level"),
	}
	if opts.Level != "" && !logLevels[opts.Level] {
		badQuery(c, "level", "must be one of debug, info, warn, error", nil)
		return opts, false
	}

	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{{"since", &opts.StartTime}, {"until", &opts.EndTime}} {
		raw := c.Query(bound.name)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badQuery(c, bound.name, "must be an RFC 3339 timestamp", err)
			return opts, false
		}
		*bound.dst = &ts
	}
	if opts.StartTime != nil && opts.EndTime != nil && opts.EndTime.Before(*opts.StartTime) {
		badQuery(c, "until", "must not be before since", nil)
		return opts, false
	}

	limit, ok := limitQuery(c, defaultLogsLimit, maxLogsLimit)
	opts.Limit = limit
	return opts, ok
}

func limitQuery(c *gin.Context, defaultLimit, maxLimit int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxLimit {
		badQuery(c, "limit", "must be between 1 and "+strconv.Itoa(maxLimit), err)
		return 0, false
	}
	return n, true
}

func badQuery(c *gin.Context, field, message string, err error) {
	NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
		map[string]string{field: message}, err)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status, key := classifyError(err)
	NewResponseBuilder(c).ErrorWithDetails(status, key, productDetails(err), err)
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{name: "must be a non-negative integer"}, err)
		return 0, false
	}
	return v, true
}
