package authn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkarpenko/bookshelf/internal/models"
	"github.com/nkarpenko/bookshelf/internal/server/jwt"
)

var testIdentity = models.Identity{
	ID:       "user-123",
	Username: "alice",
	Email:    "alice@example.com",
}

func TestResolver_Resolve(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", 2*time.Hour)
	resolver := NewResolver(tokens)

	valid, err := tokens.Issue(testIdentity)
	require.NoError(t, err)

	expired := jwt.NewService("test-secret-key", -time.Hour)
	expiredToken, err := expired.Issue(testIdentity)
	require.NoError(t, err)

	other := jwt.NewService("other-secret", 2*time.Hour)
	foreignToken, err := other.Issue(testIdentity)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		wantOK bool
	}{
		{name: "bearer scheme", header: "Bearer " + valid, wantOK: true},
		{name: "lowercase scheme", header: "bearer " + valid, wantOK: true},
		{name: "bare token", header: valid, wantOK: true},
		{name: "surrounding whitespace", header: "  Bearer " + valid + "  ", wantOK: true},
		{name: "empty header", header: "", wantOK: false},
		{name: "whitespace only", header: "   ", wantOK: false},
		{name: "scheme without token", header: "Bearer", wantOK: false},
		{name: "wrong scheme", header: "Basic " + valid, wantOK: false},
		{name: "expired token", header: "Bearer " + expiredToken, wantOK: false},
		{name: "wrong secret", header: "Bearer " + foreignToken, wantOK: false},
		{name: "malformed token", header: "Bearer not.a.jwt", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, ok := resolver.Resolve(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, testIdentity, identity)
			} else {
				assert.Empty(t, identity.ID)
			}
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	ctx := context.Background()

	// Anonymous context fails.
	_, err := RequireIdentity(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// Authenticated context succeeds.
	ctx = WithIdentity(ctx, testIdentity)
	identity, err := RequireIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestIdentityFromContext_Anonymous(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)
}
