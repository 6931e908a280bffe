package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/middleware"
)

var successResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.SuccessResponse{}
	},
}

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// Validator is implemented by request bodies that check themselves.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the body and runs Validate when T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// bindRequest binds and validates T and writes the 400 itself on failure.
func bindRequest[T any](c *gin.Context) (*T, bool) {
	req, err := BuildRequestAndValidate[T](c)
	if err == nil {
		return req, true
	}

	builder := NewResponseBuilder(c)
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.ErrorWithDetails(http.StatusBadRequest, validationMessageKey(verr), map[string]string{verr.Field: verr.Message}, err)
		return nil, false
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	return nil, false
}

func validationMessageKey(verr *dto.ValidationError) string {
	switch {
	case strings.HasSuffix(verr.Field, ".quantity"):
		return i18n.ErrKeyInvalidQuantity
	case strings.HasSuffix(verr.Field, ".mass_g"):
		return i18n.ErrKeyInvalidMass
	case verr.Field == "requested":
		return i18n.ErrKeyEmptyOrder
	default:
		return i18n.ErrKeyInvalidRequest
	}
}

// ResponseBuilder writes the standard success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data in a SuccessResponse. messageKey may be empty.
func (b *ResponseBuilder) Success(statusCode int, data interface{}, messageKey string) {
	resp := getSuccessResponse()
	defer putSuccessResponse(resp)

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()
	if messageKey != "" {
		resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	}

	// gin serializes synchronously, so the pooled value can be reused afterwards
	b.c.JSON(statusCode, resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data, "")
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}, messageKey string) {
	b.Success(http.StatusCreated, data, messageKey)
}

// Error sends an ErrorResponse with a translated message and attaches err to
// the gin context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with per-field or per-product details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
	if len(details) > 0 {
		resp.Details = details
	}

	// 5xx are logged by ErrorHandler; client errors are only in the request log
	if err != nil && statusCode >= http.StatusInternalServerError {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
}
