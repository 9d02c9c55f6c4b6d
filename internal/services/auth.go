package services

import (
	"context"
	"fmt"
	"strings"

	"eventsgateway/internal/domain"
)

type authService struct {
	resolver      domain.IdentityResolver
	authenticator domain.PasswordAuthenticator
}

// NewAuthService creates an AuthService. Bearer tokens are resolved with resolver; password
// sign-in is delegated to authenticator.
func NewAuthService(resolver domain.IdentityResolver, authenticator domain.PasswordAuthenticator) domain.AuthService {
	return &authService{
		resolver:      resolver,
		authenticator: authenticator,
	}
}

func (s *authService) Authenticate(ctx context.Context, token string) (domain.Credential, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Credential{}, domain.ErrUnauthorized
	}
	user, err := s.resolver.ResolveUser(ctx, token)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil || user.ID == "" {
		return domain.Credential{}, domain.ErrUnauthorized
	}
	return domain.NewCredential(token, user), nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	session, err := s.authenticator.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if session == nil || session.AccessToken == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return session, nil
}
