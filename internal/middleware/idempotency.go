package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/metrics"
)

const (
	// IdempotencyKeyHeader is the request header naming a retry safe operation.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader is set on responses served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"

	maxIdempotencyKeyLen = 255
)

// Idempotency makes POST, PUT and PATCH requests carrying an Idempotency-Key
// safe to retry. The first successful (2xx) response is stored per operator,
// route and key; a retry with the same body gets that response back unchanged,
// a retry with another body or one racing the original gets 409. Failed
// responses are not stored so the client can try again.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || !isWriteMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequest)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		scope := scopeKey(GetOperator(c), c.Request.Method, c.FullPath(), key)
		fingerprint := digest(body)

		result, cached := store.begin(scope, fingerprint)
		switch result {
		case beginReplay:
			metrics.RecordIdempotency("replayed")
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		case beginInFlight:
			metrics.RecordIdempotency("in_flight")
			abortWithError(c, http.StatusConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		case beginMismatch:
			metrics.RecordIdempotency("mismatch")
			abortWithError(c, http.StatusConflict, i18n.ErrKeyIdempotencyMismatch)
			return
		}

		capture := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = capture

		defer func() {
			status := capture.Status()
			if capture.Written() && status >= 200 && status < 300 {
				store.complete(scope, &cachedResponse{
					StatusCode:  status,
					ContentType: capture.Header().Get("Content-Type"),
					Body:        capture.body.Bytes(),
				})
				metrics.RecordIdempotency("stored")
				return
			}
			store.abandon(scope)
		}()

		c.Next()
	}
}

func isWriteMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func scopeKey(operator, method, route, key string) string {
	return digest([]byte(operator + "\x00" + method + "\x00" + route + "\x00" + key))
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// captureWriter copies the response body while it is written through.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
