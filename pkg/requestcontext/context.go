// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets values, services read them, and neither side needs net/http
// for it. Tests inject values directly:
//
//	ctx = requestcontext.WithSupplierID(ctx, supplierID)
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "supplierhub/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	supplierIDKey  struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// SupplierID retrieves the acting supplier's ID from the context.
// Returns the zero value if not set.
func SupplierID(ctx context.Context) id.SupplierID {
	if supplierID, ok := ctx.Value(supplierIDKey{}).(id.SupplierID); ok {
		return supplierID
	}
	return id.SupplierID{}
}

// WithSupplierID injects a supplier ID into the context.
func WithSupplierID(ctx context.Context, supplierID id.SupplierID) context.Context {
	return context.WithValue(ctx, supplierIDKey{}, supplierID)
}

// RequestID retrieves the correlation ID for the current request.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a correlation ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now returns the request timestamp if middleware captured one, falling
// back to the wall clock. Keeps a single time observation per request so
// created/updated stamps agree, and lets tests pin time.
func Now(ctx context.Context) time.Time {
	if ts, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return ts
	}
	return time.Now()
}

// WithTime pins the request timestamp. Used by middleware and tests.
func WithTime(ctx context.Context, ts time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, ts)
}
