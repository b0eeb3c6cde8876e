// Package middleware provides the HTTP middleware chain shared by all routes.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/httputil"
	"supplierhub/pkg/requestcontext"
)

// RequestTime captures the current time at the start of the request so all
// operations within it observe the same "now".
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID propagates the caller's X-Request-ID header, minting one when
// absent, and echoes it back on the response for correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SupplierContext lifts the {supplierID} route parameter into the
// request context as a typed ID and rejects malformed values before the
// handler runs. Mount inside routes that carry the parameter.
func SupplierContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supplierID, err := id.ParseSupplierID(chi.URLParam(r, "supplierID"))
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		ctx := requestcontext.WithSupplierID(r.Context(), supplierID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
