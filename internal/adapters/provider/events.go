package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"eventsgateway/internal/domain"
)

const eventsPath = "/rest/v1/events"

// EventStore is a domain.EventStore over the platform's row API. Calls are made with the
// caller's token so the platform's row-level policies apply on top of the owner filter.
type EventStore struct {
	client *Client
}

// NewEventStore returns an EventStore using c.
func NewEventStore(c *Client) *EventStore {
	return &EventStore{client: c}
}

// eventInsert is the insert payload; id is generated by the store.
type eventInsert struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventDate   time.Time `json:"event_date"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *EventStore) Create(ctx context.Context, cred domain.Credential, e *domain.Event) error {
	row := eventInsert{
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	req, err := s.client.newJSONRequest(ctx, http.MethodPost, eventsPath, cred.AccessToken, []eventInsert{row})
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")

	var created []eventRow
	if err := s.client.do(req, &created); err != nil {
		return err
	}
	if len(created) == 0 {
		return fmt.Errorf("insert into events returned no row")
	}
	*e = *created[0].toDomain()
	return nil
}

func (s *EventStore) ListByUserID(ctx context.Context, cred domain.Credential, userID string) ([]*domain.Event, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", "eq."+userID)
	q.Set("order", "event_date.asc")
	req, err := s.client.newRequest(ctx, http.MethodGet, eventsPath+"?"+q.Encode(), cred.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var rows []eventRow
	if err := s.client.do(req, &rows); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toDomain())
	}
	return events, nil
}

func (s *EventStore) DeleteOlderThan(ctx context.Context, cred domain.Credential, userID string, cutoff time.Time) (int, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+userID)
	q.Set("event_date", "lt."+cutoff.UTC().Format(time.RFC3339Nano))
	q.Set("select", "id")
	req, err := s.client.newRequest(ctx, http.MethodDelete, eventsPath+"?"+q.Encode(), cred.AccessToken, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "return=representation")

	var deleted []json.RawMessage
	if err := s.client.do(req, &deleted); err != nil {
		return 0, err
	}
	return len(deleted), nil
}
