package middleware

import (
	"net/http"
	"strings"

	"github.com/davidbz/sticker/internal/observability"
)

const (
	headerRequestID = "X-Request-Id"
	headerTraceID   = "X-Trace-Id"

	quotePathPrefix = "/v1/quotes/"
)

// Trace stamps each request with trace, span and request IDs and echoes them
// in response headers. A client-supplied X-Request-Id is kept. Requests that
// address a stored quote also carry its ID, so lookups log under quote_id.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := observability.GenerateTraceID()
			requestID := r.Header.Get(headerRequestID)
			if requestID == "" {
				requestID = observability.GenerateRequestID()
			}

			ctx := observability.WithTraceID(r.Context(), traceID)
			ctx = observability.WithSpanID(ctx, observability.GenerateSpanID())
			ctx = observability.WithRequestID(ctx, requestID)
			if quoteID := quoteIDFromPath(r.URL.Path); quoteID != "" {
				ctx = observability.WithQuoteID(ctx, quoteID)
			}

			w.Header().Set(headerTraceID, traceID)
			w.Header().Set(headerRequestID, requestID)

			observability.FromContext(ctx).Info("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// quoteIDFromPath returns the {id} segment of /v1/quotes/{id}, or "".
func quoteIDFromPath(path string) string {
	id, ok := strings.CutPrefix(path, quotePathPrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return ""
	}
	return id
}
