// Package server wires the HTTP surface: routes plus the middleware chain.
package server

import (
	"log/slog"
	"net/http"

	"github.com/nkarpenko/bookshelf/internal/server/authn"
	"github.com/nkarpenko/bookshelf/internal/server/config"
	"github.com/nkarpenko/bookshelf/internal/server/handlers"
	"github.com/nkarpenko/bookshelf/internal/server/middleware"
	"github.com/nkarpenko/bookshelf/internal/server/service"
)

// NewRouter builds the HTTP handler: all routes behind the full
// middleware chain (recovery, logging, rate limit, auth context).
func NewRouter(logger *slog.Logger, cfg *config.Config, collection *service.Collection, resolver *authn.Resolver, version string) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, collection)
	booksHandler := handlers.NewBooksHandler(logger, collection)
	usersHandler := handlers.NewUsersHandler(logger, collection)
	healthHandler := handlers.NewHealthHandler(logger, version)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	mux.HandleFunc("GET /api/v1/me", booksHandler.Me)
	mux.HandleFunc("PUT /api/v1/me/books", booksHandler.SaveBook)
	mux.HandleFunc("DELETE /api/v1/me/books/{bookId}", booksHandler.RemoveBook)

	mux.HandleFunc("GET /api/v1/users", usersHandler.List)
	mux.HandleFunc("GET /api/v1/users/{username}", usersHandler.Get)

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Auth context runs innermost so every handler sees the resolved
	// identity; recovery wraps everything.
	var handler http.Handler = mux
	handler = middleware.AuthContext(logger, resolver)(handler)
	handler = middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow, logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
