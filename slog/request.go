package slog

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// withRequestID returns ctx carrying a request ID, reusing an existing one.
func withRequestID(ctx context.Context) (context.Context, string) {
	if id := requestID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return context.WithValue(ctx, requestIDKey{}, id), id
}

// requestID returns the request ID carried by ctx, or "" if none.
func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
