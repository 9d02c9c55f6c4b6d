package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"eventsgateway/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventStore reading and writing the events table directly.
// The credential is not used for authorization here: every statement filters on user_id.
func NewEventRepository(db *sql.DB) domain.EventStore {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, _ domain.Credential, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, event_date, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var desc sql.NullString
	if e.Description != nil {
		desc = sql.NullString{String: *e.Description, Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query, e.Title, desc, e.EventDate, e.UserID, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	return translateError(err)
}

func (r *eventRepository) ListByUserID(ctx context.Context, _ domain.Credential, userID string) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, event_date, user_id, created_at, updated_at
		FROM events
		WHERE user_id = $1
		ORDER BY event_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var descNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &descNull, &e.EventDate, &e.UserID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if descNull.Valid {
			e.Description = &descNull.String
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return events, nil
}

func (r *eventRepository) DeleteOlderThan(ctx context.Context, _ domain.Credential, userID string, cutoff time.Time) (int, error) {
	query := `DELETE FROM events WHERE user_id = $1 AND event_date < $2`
	result, err := r.DB.ExecContext(ctx, query, userID, cutoff)
	if err != nil {
		return 0, translateError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// translateError surfaces statements Postgres rejected as domain.BackendError with the
// server's message; connection-level errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &domain.BackendError{Message: pqErr.Message}
	}
	return err
}
