package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"eventsgateway/internal/domain"
)

// jwtClaims are the claims the platform puts in its access tokens.
type jwtClaims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns an IdentityResolver that verifies HS256 access tokens locally with
// the platform's JWT secret instead of asking the platform. Tokens must carry exp and sub.
func NewJWTVerifier(secret string) domain.IdentityResolver {
	return &jwtVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *jwtVerifier) ResolveUser(_ context.Context, token string) (*domain.User, error) {
	claims := &jwtClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}
	user := &domain.User{
		ID:           claims.Subject,
		Email:        claims.Email,
		Role:         claims.Role,
		AppMetadata:  claims.AppMetadata,
		UserMetadata: claims.UserMetadata,
	}
	if len(claims.Audience) > 0 {
		user.Aud = claims.Audience[0]
	}
	return user, nil
}
