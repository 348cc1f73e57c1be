// Package requestcontext provides HTTP-independent accessors for request-scoped
// values. Middleware sets them; services read them. Keeping the package free of
// net/http lets domain code depend on a clock and an actor identity without
// pulling in transport concerns, and lets tests inject both deterministically:
//
//	ctx = requestcontext.WithTime(ctx, fixedNow)
//	ctx = requestcontext.WithActor(ctx, "Test User")
package requestcontext

import (
	"context"
	"time"
)

type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	actorKey       struct{}
)

// DefaultActor is used when no actor identity was attached to the request.
const DefaultActor = "Current User"

// WithRequestID attaches the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the correlation ID, or "" when unset.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithTime pins the request-scoped "now". All time-sensitive operations within
// one request observe the same instant.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now returns the request-scoped time, falling back to the wall clock when no
// middleware ran (direct service calls in tests that don't care about time).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithActor attaches the identity performing the request.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, name)
}

// Actor returns the acting identity, defaulting when unset.
func Actor(ctx context.Context) string {
	if name, ok := ctx.Value(actorKey{}).(string); ok && name != "" {
		return name
	}
	return DefaultActor
}
