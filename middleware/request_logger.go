package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"eazywed/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id back to the caller.
const RequestIDHeader = "X-Request-ID"

var redactedFields = []string{"password", "otp"}

// RequestLogger logs every request with its status and duration, records
// HTTP metrics, and logs non-GET bodies with secrets redacted. Bodies whose
// serialized form reaches bodyLimit characters are replaced by their size.
func RequestLogger(logger *zap.Logger, bodyLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)
		reqLogger := logger.With(zap.String("requestID", requestID))
		c.Set("logger", reqLogger)

		method := c.Request.Method
		url := c.Request.URL.RequestURI()
		reqLogger.Info(fmt.Sprintf("%s %s", method, url),
			zap.String("ip", getClientIP(c)),
			zap.Time("timestamp", start.UTC()),
		)

		if method != http.MethodGet && c.Request.Body != nil {
			raw, err := io.ReadAll(c.Request.Body)
			if err != nil {
				reqLogger.Warn("failed to read request body", zap.Error(err))
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			if hasBody(raw) {
				reqLogger.Info("request body", zap.String("body", sanitizeBody(raw, bodyLimit)))
			}
		}

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		msg := fmt.Sprintf("%s %s - Status: %d - Duration: %dms", method, url, status, elapsed.Milliseconds())
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		}
		switch {
		case status >= http.StatusInternalServerError:
			reqLogger.Error(msg, fields...)
		case status >= http.StatusBadRequest:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
		metrics.ObserveHTTP(method, c.FullPath(), status, elapsed)
	}
}

// hasBody reports whether raw is worth logging. Empty JSON objects are not.
func hasBody(raw []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) == 0 {
		return false
	}
	return true
}

// sanitizeBody redacts sensitive top level JSON fields and replaces large
// payloads with a size notice.
func sanitizeBody(raw []byte, limit int) string {
	out := raw
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, key := range redactedFields {
			if _, ok := fields[key]; ok {
				fields[key] = "[REDACTED]"
			}
		}
		if encoded, err := json.Marshal(fields); err == nil {
			out = encoded
		}
	}
	if limit > 0 && len(out) >= limit {
		return fmt.Sprintf("[Large payload - %d bytes]", len(out))
	}
	return string(out)
}
