package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"eventsgateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventStore is an in-memory EventStore that applies the same owner filter, ordering
// and cutoff semantics as the real stores.
type fakeEventStore struct {
	rows       []*domain.Event
	nextID     int
	err        error // if set, every call returns this error
	calls      int
	lastCred   domain.Credential
	lastCutoff time.Time
}

func newFakeEventStore(rows ...*domain.Event) *fakeEventStore {
	return &fakeEventStore{rows: rows, nextID: len(rows) + 1}
}

func (f *fakeEventStore) Create(_ context.Context, cred domain.Credential, e *domain.Event) error {
	f.calls++
	f.lastCred = cred
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.rows = append(f.rows, e)
	return nil
}

func (f *fakeEventStore) ListByUserID(_ context.Context, cred domain.Credential, userID string) ([]*domain.Event, error) {
	f.calls++
	f.lastCred = cred
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (f *fakeEventStore) DeleteOlderThan(_ context.Context, cred domain.Credential, userID string, cutoff time.Time) (int, error) {
	f.calls++
	f.lastCred = cred
	f.lastCutoff = cutoff
	if f.err != nil {
		return 0, f.err
	}
	kept := f.rows[:0]
	deleted := 0
	for _, e := range f.rows {
		if e.UserID == userID && e.EventDate.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	f.rows = kept
	return deleted, nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func credFor(userID string) domain.Credential {
	return domain.NewCredential("token-"+userID, &domain.User{ID: userID})
}

func strPtr(s string) *string { return &s }

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()
	d := func(day int) time.Time { return time.Date(2025, 6, day, 10, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		store   func() *fakeEventStore
		cred    domain.Credential
		wantIDs []string
		wantErr error
	}{
		{
			name: "returns only caller rows ascending by event_date",
			store: func() *fakeEventStore {
				return newFakeEventStore(
					&domain.Event{ID: "a", UserID: "user-1", EventDate: d(20)},
					&domain.Event{ID: "b", UserID: "user-2", EventDate: d(1)},
					&domain.Event{ID: "c", UserID: "user-1", EventDate: d(3)},
				)
			},
			cred:    credFor("user-1"),
			wantIDs: []string{"c", "a"},
		},
		{
			name:    "empty list is not nil",
			store:   func() *fakeEventStore { return newFakeEventStore() },
			cred:    credFor("user-1"),
			wantIDs: []string{},
		},
		{
			name:    "anonymous credential",
			store:   func() *fakeEventStore { return newFakeEventStore() },
			cred:    domain.Credential{},
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store()
			svc := NewEventService(store, 0, nil)
			got, err := svc.ListEvents(ctx, tt.cred)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, store.calls)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				assert.Equal(t, tt.cred.UserID(), e.UserID)
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.cred, store.lastCred, "credential is forwarded to the store")
		})
	}
}

func TestEventService_ListEvents_storeError(t *testing.T) {
	store := newFakeEventStore()
	store.err = &domain.BackendError{Status: 400, Message: "relation does not exist"}
	svc := NewEventService(store, 0, nil)

	_, err := svc.ListEvents(context.Background(), credFor("user-1"))
	require.Error(t, err)
	be, ok := domain.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, "relation does not exist", be.Message)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cred    domain.Credential
		in      domain.CreateEventInput
		wantErr error
		assert  func(t *testing.T, store *fakeEventStore, event *domain.Event)
	}{
		{
			name: "success stamps owner and timestamps",
			cred: credFor("user-1"),
			in:   domain.CreateEventInput{Title: "  Launch  ", Description: strPtr("party"), EventDate: "2025-04-01T18:00:00+02:00"},
			assert: func(t *testing.T, store *fakeEventStore, event *domain.Event) {
				require.NotEmpty(t, event.ID)
				assert.Equal(t, "Launch", event.Title)
				assert.Equal(t, "user-1", event.UserID)
				assert.Equal(t, now, event.CreatedAt)
				assert.Equal(t, event.CreatedAt, event.UpdatedAt)
				assert.Equal(t, time.Date(2025, 4, 1, 16, 0, 0, 0, time.UTC), event.EventDate)
				require.NotNil(t, event.Description)
				assert.Equal(t, "party", *event.Description)
				require.Len(t, store.rows, 1)
				assert.Equal(t, "user-1", store.rows[0].UserID)
			},
		},
		{
			name: "description optional",
			cred: credFor("user-1"),
			in:   domain.CreateEventInput{Title: "Standup", EventDate: "2025-04-01"},
			assert: func(t *testing.T, _ *fakeEventStore, event *domain.Event) {
				assert.Nil(t, event.Description)
				assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), event.EventDate)
			},
		},
		{
			name:    "missing title",
			cred:    credFor("user-1"),
			in:      domain.CreateEventInput{Title: "   ", EventDate: "2025-04-01"},
			wantErr: domain.ErrMissingEventFields,
		},
		{
			name:    "missing event_date",
			cred:    credFor("user-1"),
			in:      domain.CreateEventInput{Title: "Standup"},
			wantErr: domain.ErrMissingEventFields,
		},
		{
			name:    "unparsable event_date",
			cred:    credFor("user-1"),
			in:      domain.CreateEventInput{Title: "Standup", EventDate: "next tuesday"},
			wantErr: domain.ErrInvalidEventDate,
		},
		{
			name:    "anonymous credential",
			cred:    domain.Credential{},
			in:      domain.CreateEventInput{Title: "Standup", EventDate: "2025-04-01"},
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeEventStore()
			svc := NewEventService(store, 0, fixedClock(now))
			event, err := svc.CreateEvent(ctx, tt.cred, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, event)
				assert.Empty(t, store.rows, "no row is inserted")
				assert.Zero(t, store.calls)
				return
			}
			require.NoError(t, err)
			tt.assert(t, store, event)
		})
	}
}

func TestEventService_CreateEvent_storeError(t *testing.T) {
	store := newFakeEventStore()
	store.err = errors.New("connection reset")
	svc := NewEventService(store, 0, nil)

	_, err := svc.CreateEvent(context.Background(), credFor("user-1"), domain.CreateEventInput{Title: "x", EventDate: "2025-01-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestEventService_CleanupStaleEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)

	store := newFakeEventStore(
		&domain.Event{ID: "old", UserID: "user-1", EventDate: cutoff.Add(-time.Second)},
		&domain.Event{ID: "edge", UserID: "user-1", EventDate: cutoff},
		&domain.Event{ID: "fresh", UserID: "user-1", EventDate: now},
		&domain.Event{ID: "other", UserID: "user-2", EventDate: cutoff.Add(-time.Hour)},
	)
	svc := NewEventService(store, 24*time.Hour, fixedClock(now))

	deleted, gotCutoff, err := svc.CleanupStaleEvents(ctx, credFor("user-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, cutoff, gotCutoff)
	assert.Equal(t, cutoff, store.lastCutoff)

	var remaining []string
	for _, e := range store.rows {
		remaining = append(remaining, e.ID)
	}
	assert.ElementsMatch(t, []string{"edge", "fresh", "other"}, remaining)
}

func TestEventService_CleanupStaleEvents_errors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		store := newFakeEventStore()
		_, _, err := NewEventService(store, 0, nil).CleanupStaleEvents(context.Background(), domain.Credential{})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Zero(t, store.calls)
	})
	t.Run("store rejects", func(t *testing.T) {
		store := newFakeEventStore()
		store.err = &domain.BackendError{Status: 403, Message: "permission denied"}
		_, _, err := NewEventService(store, 0, nil).CleanupStaleEvents(context.Background(), credFor("user-1"))
		_, ok := domain.AsBackendError(err)
		assert.True(t, ok)
	})
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-01-02T03:04:05Z", want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{in: "2025-01-02T03:04:05.123Z", want: time.Date(2025, 1, 2, 3, 4, 5, 123000000, time.UTC)},
		{in: "2025-01-02T03:04:05-05:00", want: time.Date(2025, 1, 2, 8, 4, 5, 0, time.UTC)},
		{in: "2025-01-02T03:04:05", want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{in: "2025-01-02T03:04", want: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)},
		{in: "2025-01-02", want: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{in: "02/01/2025", wantErr: true},
		{in: "2025-13-01", wantErr: true},
		{in: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEventDate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidEventDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
