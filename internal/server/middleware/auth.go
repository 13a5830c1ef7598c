package middleware

import (
	"log/slog"
	"net/http"

	"github.com/nkarpenko/bookshelf/internal/server/authn"
)

// AuthContext resolves the Authorization header once per request and
// attaches the resulting identity to the request context. A missing or
// failing credential leaves the request anonymous; it is not rejected
// here. Operations that need an identity fail later, at the guard.
func AuthContext(logger *slog.Logger, resolver *authn.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			identity, ok := resolver.Resolve(header)
			if !ok {
				if header != "" {
					logger.Debug("credential did not resolve, proceeding as anonymous",
						"path", r.URL.Path)
				}
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug("request authenticated",
				"user_id", identity.ID,
				"username", identity.Username)

			ctx := authn.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
