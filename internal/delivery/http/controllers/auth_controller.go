package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventsgateway/internal/delivery/http/helpers"
	"eventsgateway/internal/domain"
)

// LoginRequest is the request body for POST /login-user
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	if strings.TrimSpace(l.Email) == "" || l.Password == "" {
		return []string{domain.ErrMissingCredentials.Error()}
	}
	return nil
}

// LoginResponse is the response body for POST /login-user
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *domain.User `json:"user"`
}

// AuthCheckResponse is the response body for GET /auth-check
type AuthCheckResponse struct {
	User *domain.User `json:"user"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// AuthCheck godoc
// @Summary Check identity
// @Description Returns the user the bearer token resolves to.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.AuthCheckResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 405 {object} helpers.ErrorResponse
// @Router /auth-check [get]
func (c *AuthController) AuthCheck(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, AuthCheckResponse{User: cred.User})
}

// Login godoc
// @Summary Sign in
// @Description Exchange email and password for an access token and a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.ErrorResponse "missing email or password"
// @Failure 401 {object} helpers.ErrorResponse "invalid login credentials or the platform's reason"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /login-user [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			h.WriteJSONError(w, http.StatusBadRequest, domain.ErrMissingCredentials.Error())
		case errors.Is(err, domain.ErrInvalidCredentials):
			msg := domain.ErrInvalidCredentials.Error()
			if be, ok := domain.AsBackendError(err); ok && be.Message != "" {
				msg = be.Message
			}
			h.WriteJSONError(w, http.StatusUnauthorized, msg)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteInternalError(w)
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         session.User,
	})
}
