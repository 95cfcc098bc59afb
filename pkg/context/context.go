package context

import (
	"context"
	"github.com/gofiber/fiber/v2"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	AuthorIDKey  contextKey = "author_id"

	// RequestIDLocal is the fiber Locals / header key the request id middleware writes.
	RequestIDLocal = "X-Request-ID"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx builds a request-scoped context carrying the request id.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := context.Background()

	requestID, ok := c.Locals(RequestIDLocal).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDLocal)

		if requestID == "" {
			requestID = "unknown"
		}
	}
	return WithRequestID(ctx, requestID)
}
