package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request ID in both directions.
// An incoming value is trusted and echoed; otherwise a fresh UUID is issued.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a middleware that ensures every request has an ID.
// The ID is stored under chi's RequestIDKey so GetReqID and the request
// logger pick it up, and is echoed on the response for client-side
// correlation.
func NewRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
			w.Header().Set(RequestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
