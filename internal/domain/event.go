package domain

import (
	"context"
	"time"
)

// Event is a row of the events table owned by a single user.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventDate   time.Time `json:"event_date"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event owned by userID. CreatedAt and UpdatedAt are both set to now.
// ID is set by the store on create.
func NewEvent(title string, description *string, eventDate time.Time, userID string, now time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		EventDate:   eventDate,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateEventInput is the unvalidated payload for a new event. EventDate is kept as the raw
// string so the service decides which formats are accepted.
type CreateEventInput struct {
	Title       string
	Description *string
	EventDate   string
}

// EventStore is the row store holding the events table. Every call carries the caller's
// credential so stores that enforce row-level security can forward it.
type EventStore interface {
	// Create inserts e and updates it with the stored row (ID and server-side defaults).
	Create(ctx context.Context, cred Credential, e *Event) error
	// ListByUserID returns the rows owned by userID ordered by event_date ascending.
	ListByUserID(ctx context.Context, cred Credential, userID string) ([]*Event, error)
	// DeleteOlderThan removes the rows owned by userID with event_date strictly before cutoff
	// and returns how many rows were removed.
	DeleteOlderThan(ctx context.Context, cred Credential, userID string, cutoff time.Time) (int, error)
}

// EventService defines the event operations exposed by the gateway.
type EventService interface {
	ListEvents(ctx context.Context, cred Credential) ([]*Event, error)
	CreateEvent(ctx context.Context, cred Credential, in CreateEventInput) (*Event, error)
	// CleanupStaleEvents deletes the caller's events older than the stale age, measured from
	// the service clock at call time. It returns the number deleted and the cutoff used.
	CleanupStaleEvents(ctx context.Context, cred Credential) (deleted int, cutoff time.Time, err error)
}
