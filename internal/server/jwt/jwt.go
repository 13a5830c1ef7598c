// Package jwt issues and verifies the signed identity tokens handed to
// clients on login and registration.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nkarpenko/bookshelf/internal/models"
)

// Verification errors. Handlers and middleware distinguish expiry from
// everything else only for logging; both resolve to anonymous.
var (
	// ErrTokenExpired indicates the token was valid but is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed token or a signature mismatch
	ErrTokenInvalid = errors.New("invalid token")
)

const issuer = "bookshelf"

// Claims are the JWT claims carried by an identity token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a process-wide HMAC
// secret. The secret is fixed at construction and never changes while the
// server runs.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token service.
// secret should be a cryptographically secure random string; ttl is the
// token lifetime from issuance (2h in the default configuration).
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token embedding the identity, valid from now
// until now+ttl. Two calls for the same identity produce distinct tokens.
func (s *Service) Issue(identity models.Identity) (string, error) {
	now := s.now()

	claims := Claims{
		UserID:   identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string and returns the embedded
// identity. It returns ErrTokenExpired for a well-signed token past its
// expiry and ErrTokenInvalid for everything else. Verification is pure:
// only the token, the secret and the clock are consulted.
func (s *Service) Verify(tokenString string) (models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, ErrTokenExpired
		}
		return models.Identity{}, ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return models.Identity{}, ErrTokenInvalid
	}

	return models.Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
