// Package authn resolves bearer credentials into a request-scoped identity
// and guards the operations that require one.
//
// Resolution runs once per request, before any handler. A missing, expired
// or otherwise invalid token is not a request failure: the request proceeds
// as anonymous and only fails if it reaches an operation guarded by
// RequireIdentity.
package authn

import (
	"context"
	"errors"
	"strings"

	"github.com/nkarpenko/bookshelf/internal/models"
	"github.com/nkarpenko/bookshelf/internal/server/jwt"
)

// ErrNotLoggedIn is returned by RequireIdentity for anonymous requests.
var ErrNotLoggedIn = errors.New("you need to be logged in to perform this action")

type ctxKey int

const identityKey ctxKey = 0

// Resolver turns a raw Authorization header value into an identity.
type Resolver struct {
	tokens *jwt.Service
}

// NewResolver creates a resolver backed by the given token service.
func NewResolver(tokens *jwt.Service) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve extracts a bearer token from a free-form header value and
// verifies it. It tolerates a missing value, an optional "Bearer" scheme
// prefix in any case, and surrounding whitespace. On any verification
// failure it returns (zero, false): anonymous, never an error.
func (r *Resolver) Resolve(headerValue string) (models.Identity, bool) {
	token := strings.TrimSpace(headerValue)
	if token == "" {
		return models.Identity{}, false
	}

	// "Bearer <token>" or a bare token string.
	if parts := strings.Fields(token); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		token = parts[1]
	}

	identity, err := r.tokens.Verify(token)
	if err != nil {
		return models.Identity{}, false
	}

	return identity, true
}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity attached to the request
// context, if any.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}

// RequireIdentity is the single authorization checkpoint: it returns the
// request identity or ErrNotLoggedIn when the context is anonymous.
// Callers must scope every store operation to the returned identity's ID,
// never to a client-supplied user id.
func RequireIdentity(ctx context.Context) (models.Identity, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return models.Identity{}, ErrNotLoggedIn
	}
	return identity, nil
}
