package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventsgateway/internal/domain"
)

// Clock returns the current time. Services read it once per operation.
type Clock func() time.Time

// DefaultStaleEventAge is how old an event must be before cleanup removes it.
const DefaultStaleEventAge = 24 * time.Hour

// eventDateLayouts are tried in order when parsing event_date.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type eventService struct {
	store    domain.EventStore
	staleAge time.Duration
	now      Clock
}

// NewEventService creates an EventService backed by store. A zero staleAge falls back to
// DefaultStaleEventAge and a nil clock to time.Now.
func NewEventService(store domain.EventStore, staleAge time.Duration, clock Clock) domain.EventService {
	if staleAge <= 0 {
		staleAge = DefaultStaleEventAge
	}
	if clock == nil {
		clock = time.Now
	}
	return &eventService{
		store:    store,
		staleAge: staleAge,
		now:      clock,
	}
}

func (s *eventService) ListEvents(ctx context.Context, cred domain.Credential) ([]*domain.Event, error) {
	userID := cred.UserID()
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	events, err := s.store.ListByUserID(ctx, cred, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, cred domain.Credential, in domain.CreateEventInput) (*domain.Event, error) {
	userID := cred.UserID()
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	rawDate := strings.TrimSpace(in.EventDate)
	if title == "" || rawDate == "" {
		return nil, domain.ErrMissingEventFields
	}
	eventDate, err := ParseEventDate(rawDate)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := domain.NewEvent(title, in.Description, eventDate, userID, now)
	if err := s.store.Create(ctx, cred, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) CleanupStaleEvents(ctx context.Context, cred domain.Credential) (int, time.Time, error) {
	userID := cred.UserID()
	if userID == "" {
		return 0, time.Time{}, domain.ErrUnauthorized
	}
	cutoff := s.now().Add(-s.staleAge).UTC()
	deleted, err := s.store.DeleteOlderThan(ctx, cred, userID, cutoff)
	if err != nil {
		return 0, cutoff, fmt.Errorf("delete events before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return deleted, cutoff, nil
}

// ParseEventDate parses an ISO-8601 timestamp or date. Values without a zone are taken as UTC.
func ParseEventDate(s string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrInvalidEventDate
}
