package middleware

import (
	"net/http"

	"github.com/davidbz/sticker/internal/config"
)

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds middlewares into one. The first argument sees the request first.
func Chain(middlewares ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}

// BuildMiddlewareChain is the chain the quote API is served with: CORS
// answers preflights before any IDs are minted.
func BuildMiddlewareChain(corsConfig *config.CORSConfig) Middleware {
	return Chain(
		CORS(corsConfig),
		Trace(),
	)
}
