package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const loggerKey = "logger"

// TraceLoggerMiddleware stores a request logger carrying trace_id and span_id
// in the fiber locals, so log lines can be joined with traces.
func TraceLoggerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spanContext := trace.SpanFromContext(c.UserContext()).SpanContext()

		requestLogger := logger.With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)

		if spanContext.IsValid() {
			requestLogger = requestLogger.With(
				zap.String("trace_id", spanContext.TraceID().String()),
				zap.String("span_id", spanContext.SpanID().String()),
			)
		}

		c.Locals(loggerKey, requestLogger)

		return c.Next()
	}
}
