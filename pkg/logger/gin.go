package logger

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const HeaderRequestID = "X-Request-ID"

type ctxKey struct{}

// WithContext stores a request-scoped logger in ctx.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger, or fallback when none was set.
func FromContext(ctx context.Context, fallback Logger) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return fallback
}

// GinMiddleware assigns a request ID, attaches trace/span IDs when a span is
// active and logs the completed request.
func GinMiddleware(log Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		fields := []Field{
			{Key: "request_id", Value: reqID},
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.Request.URL.Path},
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			traceID := span.SpanContext().TraceID().String()
			spanID := span.SpanContext().SpanID().String()
			c.Set("trace_id", traceID)
			c.Set("span_id", spanID)
			fields = append(fields,
				Field{Key: "trace_id", Value: traceID},
				Field{Key: "span_id", Value: spanID},
			)
		}

		child := log.With(fields...)
		c.Header(HeaderRequestID, reqID)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), child))

		c.Next()

		child.Info("request completed",
			Field{Key: "status", Value: c.Writer.Status()},
			Field{Key: "latency_ms", Value: time.Since(start).Milliseconds()},
		)
	}
}
