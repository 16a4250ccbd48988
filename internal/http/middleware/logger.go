package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// Logger is a middleware that logs each HTTP request as one JSON object per
// line on stdout, with request_id (from the RequestID middleware), method,
// path, status and latency in milliseconds. When a trace span is active the
// trace_id is included as well.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.UTC)
}

// LoggerWithWriter is Logger with an injectable destination and timestamp
// location, mainly for tests.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after the handler executed to capture the final status.
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		latency := float64(time.Since(start).Milliseconds())

		fields := map[string]any{
			"ts":         time.Now().In(loc).Format(time.RFC3339Nano),
			"level":      "info",
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    latency,
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
		_ = enc.Encode(fields)

		return err
	}
}
