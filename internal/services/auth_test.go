package services

import (
	"context"
	"errors"
	"testing"

	"eventsgateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	user      *domain.User
	err       error
	calls     int
	lastToken string
}

func (f *fakeResolver) ResolveUser(_ context.Context, token string) (*domain.User, error) {
	f.calls++
	f.lastToken = token
	return f.user, f.err
}

type fakeAuthenticator struct {
	session   *domain.Session
	err       error
	calls     int
	lastEmail string
}

func (f *fakeAuthenticator) SignInWithPassword(_ context.Context, email, _ string) (*domain.Session, error) {
	f.calls++
	f.lastEmail = email
	return f.session, f.err
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		token     string
		resolver  *fakeResolver
		wantErr   error
		wantCalls int
	}{
		{
			name:      "resolves user",
			token:     "abc",
			resolver:  &fakeResolver{user: &domain.User{ID: "user-1"}},
			wantCalls: 1,
		},
		{
			name:     "empty token never reaches provider",
			token:    "  ",
			resolver: &fakeResolver{user: &domain.User{ID: "user-1"}},
			wantErr:  domain.ErrUnauthorized,
		},
		{
			name:      "provider rejects token",
			token:     "abc",
			resolver:  &fakeResolver{err: domain.ErrUnauthorized},
			wantErr:   domain.ErrUnauthorized,
			wantCalls: 1,
		},
		{
			name:      "provider returns no user",
			token:     "abc",
			resolver:  &fakeResolver{},
			wantErr:   domain.ErrUnauthorized,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.resolver, &fakeAuthenticator{})
			cred, err := svc.Authenticate(ctx, tt.token)
			assert.Equal(t, tt.wantCalls, tt.resolver.calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, cred.UserID())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", cred.UserID())
			assert.Equal(t, tt.token, cred.AccessToken)
			assert.Equal(t, tt.token, tt.resolver.lastToken)
		})
	}
}

func TestAuthService_Authenticate_transportErrorIsNotUnauthorized(t *testing.T) {
	svc := NewAuthService(&fakeResolver{err: errors.New("dial tcp: connection refused")}, &fakeAuthenticator{})
	_, err := svc.Authenticate(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	okSession := &domain.Session{AccessToken: "at", RefreshToken: "rt", User: &domain.User{ID: "user-1"}}

	tests := []struct {
		name      string
		email     string
		password  string
		auth      *fakeAuthenticator
		wantErr   error
		wantCalls int
	}{
		{
			name:      "success",
			email:     " a@example.com ",
			password:  "secret",
			auth:      &fakeAuthenticator{session: okSession},
			wantCalls: 1,
		},
		{
			name:     "missing email",
			password: "secret",
			auth:     &fakeAuthenticator{session: okSession},
			wantErr:  domain.ErrMissingCredentials,
		},
		{
			name:    "missing password",
			email:   "a@example.com",
			auth:    &fakeAuthenticator{session: okSession},
			wantErr: domain.ErrMissingCredentials,
		},
		{
			name:      "rejected",
			email:     "a@example.com",
			password:  "wrong",
			auth:      &fakeAuthenticator{err: domain.ErrInvalidCredentials},
			wantErr:   domain.ErrInvalidCredentials,
			wantCalls: 1,
		},
		{
			name:      "no session returned",
			email:     "a@example.com",
			password:  "secret",
			auth:      &fakeAuthenticator{session: &domain.Session{}},
			wantErr:   domain.ErrInvalidCredentials,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&fakeResolver{}, tt.auth)
			session, err := svc.SignIn(ctx, tt.email, tt.password)
			assert.Equal(t, tt.wantCalls, tt.auth.calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, okSession, session)
			assert.Equal(t, "a@example.com", tt.auth.lastEmail)
		})
	}
}
