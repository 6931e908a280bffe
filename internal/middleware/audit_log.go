package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/logger"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

// AuditLog records a state changing action: catalog load, restock or order.
// It always writes a log line and also persists to the operations log when a
// logging service is configured.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	entry := newAuditEntry(c, "info", actionType, message, fields)
	log := logger.WithRequestID(entry.RequestID)
	log.Info().
		Str("action", actionType).
		Str("operator", entry.Operator).
		Fields(fields).
		Msg(message)

	if loggingService != nil {
		persistLog(loggingService, entry)
	}
}

// AuditLogError records a rejected state changing action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	log := logger.WithRequestID(entry.RequestID)
	log.Warn().
		Err(err).
		Str("action", actionType).
		Str("operator", entry.Operator).
		Fields(fields).
		Msg(message)

	if loggingService != nil {
		persistLog(loggingService, entry)
	}
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		Operator:   GetOperator(c),
		ActionType: actionType,
		Fields:     fields,
	}
}
