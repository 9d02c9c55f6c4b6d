package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services, adapters and controllers.
var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidCredentials     = errors.New("invalid login credentials")
	ErrMissingEventFields     = errors.New("missing title or event_date")
	ErrInvalidEventDate       = errors.New("invalid event_date format")
	ErrMissingCredentials     = errors.New("missing email or password")
	ErrMissingFile            = errors.New("missing file field")
	ErrUnsupportedContentType = errors.New("only PNG files allowed")
)

// BackendError is an operation the managed backend received and rejected, such as a
// constraint violation or a refused upload. Message is the backend's own text.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("backend rejected request (status %d): %s", e.Status, e.Message)
}

// AsBackendError reports whether err wraps a *BackendError and returns it.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
