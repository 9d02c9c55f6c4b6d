package provider

import (
	"context"
	"fmt"
	"net/http"

	"eventsgateway/internal/domain"
)

// Identity resolves bearer tokens and signs users in against the platform's auth service.
type Identity struct {
	client *Client
}

// NewIdentity returns an Identity using c.
func NewIdentity(c *Client) *Identity {
	return &Identity{client: c}
}

// ResolveUser returns the user the token was issued for. A token the platform refuses
// yields an error wrapping domain.ErrUnauthorized.
func (i *Identity) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	req, err := i.client.newRequest(ctx, http.MethodGet, "/auth/v1/user", token, nil)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := i.client.do(req, &user); err != nil {
		if be, ok := domain.AsBackendError(err); ok && isAuthRejection(be.Status) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, be.Message)
		}
		return nil, err
	}
	if user.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	return &user, nil
}

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithPassword exchanges email and password for a session. Rejected credentials yield
// an error wrapping both domain.ErrInvalidCredentials and the platform's *domain.BackendError.
func (i *Identity) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	req, err := i.client.newJSONRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", passwordGrant{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := i.client.do(req, &session); err != nil {
		if be, ok := domain.AsBackendError(err); ok && (be.Status == http.StatusBadRequest || isAuthRejection(be.Status)) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, be)
		}
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return &session, nil
}

func isAuthRejection(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
