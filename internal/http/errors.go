package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/guttosm/drone-fulfillment/internal/circuitbreaker"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

// errorMappings tie a service error to its status and message key. Order
// matters: a joined batch error gets the status of its first matching entry.
var errorMappings = []struct {
	target error
	status int
	key    string
}{
	{service.ErrCatalogAlreadyLoaded, http.StatusConflict, i18n.ErrKeyCatalogLoaded},
	{service.ErrCatalogNotLoaded, http.StatusConflict, i18n.ErrKeyCatalogNotLoaded},
	{service.ErrDuplicateProduct, http.StatusConflict, i18n.ErrKeyDuplicateProduct},
	{service.ErrUnknownProduct, http.StatusNotFound, i18n.ErrKeyUnknownProduct},
	{service.ErrInvalidQuantity, http.StatusBadRequest, i18n.ErrKeyInvalidQuantity},
	{service.ErrInvalidMass, http.StatusBadRequest, i18n.ErrKeyInvalidMass},
	{service.ErrEmptyOrder, http.StatusBadRequest, i18n.ErrKeyEmptyOrder},
	{service.ErrLedgerUnavailable, http.StatusServiceUnavailable, i18n.ErrKeyLedgerUnavailable},
	{service.ErrLogsUnavailable, http.StatusServiceUnavailable, i18n.ErrKeyLogsUnavailable},
	{circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyLedgerUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
}

// classifyError returns the HTTP status and i18n key for a service error.
func classifyError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.key
		}
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

// productDetails lists every product level failure in err, keyed by product id.
func productDetails(err error) map[string]string {
	details := make(map[string]string)
	collectProductErrors(err, details)
	if len(details) == 0 {
		return nil
	}
	return details
}

func collectProductErrors(err error, into map[string]string) {
	if err == nil {
		return
	}
	if perr, ok := err.(*service.ProductError); ok {
		into["product_"+strconv.Itoa(perr.ProductID)] = perr.Err.Error()
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectProductErrors(e, into)
		}
		return
	}
	collectProductErrors(errors.Unwrap(err), into)
}
