// Package context carries the request id from the fiber layer into the
// context.Context handed to services and repositories, so every log line of a
// request shares one id.
package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const (
	// RequestIDKey is the context key services and repositories read.
	RequestIDKey = "request_id"

	// fiberLocalsKey is where the request-id middleware parks the minted id.
	fiberLocalsKey = "X-Request-ID"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID never fails: a context without an id reports "unknown" so log
// fields stay populated.
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx derives a fresh context carrying the request id, preferring
// the id minted by the middleware over a client-supplied header. Handlers
// wrap the result with their own timeout.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	if requestID, ok := c.Locals(fiberLocalsKey).(string); ok && requestID != "" {
		return WithRequestID(context.Background(), requestID)
	}

	if requestID := c.Get(fiberLocalsKey); requestID != "" {
		return WithRequestID(context.Background(), requestID)
	}

	return WithRequestID(context.Background(), "unknown")
}
