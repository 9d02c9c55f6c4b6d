package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"eventsgateway/internal/domain"
)

// rowTimeLayouts are tried in order. Columns typed timestamp without time zone come back
// with no offset and are read as UTC.
var rowTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// rowID is a primary key that the row API may render as a JSON string or number.
type rowID string

func (id *rowID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("row id: %w", err)
	}
	*id = rowID(n.String())
	return nil
}

// rowTime is a timestamp column with or without a zone offset.
type rowTime time.Time

func (t *rowTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = rowTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("row timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	for _, layout := range rowTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = rowTime(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("row timestamp: unrecognized format %q", s)
}

// eventRow is an events row as the row API returns it.
type eventRow struct {
	ID          rowID   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	EventDate   rowTime `json:"event_date"`
	UserID      rowID   `json:"user_id"`
	CreatedAt   rowTime `json:"created_at"`
	UpdatedAt   rowTime `json:"updated_at"`
}

func (r eventRow) toDomain() *domain.Event {
	return &domain.Event{
		ID:          string(r.ID),
		Title:       r.Title,
		Description: r.Description,
		EventDate:   time.Time(r.EventDate),
		UserID:      string(r.UserID),
		CreatedAt:   time.Time(r.CreatedAt),
		UpdatedAt:   time.Time(r.UpdatedAt),
	}
}
