package domain

import (
	"context"
	"time"
)

// User is an identity as reported by the identity provider.
// swagger:model User
type User struct {
	ID           string         `json:"id"`
	Aud          string         `json:"aud,omitempty"`
	Role         string         `json:"role,omitempty"`
	Email        string         `json:"email,omitempty"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	LastSignInAt *time.Time     `json:"last_sign_in_at,omitempty"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// Session is the result of a successful password sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         *User  `json:"user"`
}

// IdentityResolver resolves a bearer token to the user it was issued for.
// Implementations return ErrUnauthorized when the token is rejected.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, token string) (*User, error)
}

// PasswordAuthenticator signs a user in with email and password.
// Implementations return an error wrapping ErrInvalidCredentials when the provider rejects them.
type PasswordAuthenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
}

// AuthService defines caller authentication and sign-in.
type AuthService interface {
	// Authenticate resolves token into a request-scoped Credential.
	Authenticate(ctx context.Context, token string) (Credential, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
}
