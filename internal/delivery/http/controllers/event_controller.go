package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	h "eventsgateway/internal/delivery/http/helpers"
	"eventsgateway/internal/domain"
	"eventsgateway/internal/metrics"
)

// CreateEventRequest is the request body for POST /create-event.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	EventDate   string  `json:"event_date"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.EventDate) == "" {
		return []string{domain.ErrMissingEventFields.Error()}
	}
	return nil
}

// ListEventsResponse is the response body for GET /get-events.
type ListEventsResponse struct {
	Events []*domain.Event `json:"events"`
	UserID string          `json:"user_id"`
	Count  int             `json:"count"`
}

// CleanupEventsResponse is the response body for DELETE /cleanup-events.
type CleanupEventsResponse struct {
	Message string    `json:"message"`
	Count   int       `json:"count"`
	Cutoff  time.Time `json:"cutoff"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List my events
// @Description Returns the caller's events ordered by event_date ascending.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 400 {object} helpers.ErrorResponse "store rejected the query"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /get-events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListEvents(r.Context(), cred)
	if err != nil {
		writeStoreError(w, r, c.Logger, err, http.StatusBadRequest)
		return
	}
	h.WriteJSON(w, http.StatusOK, ListEventsResponse{
		Events: events,
		UserID: cred.UserID(),
		Count:  len(events),
	})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event owned by the caller. event_date accepts RFC 3339 or YYYY-MM-DD.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse "missing title or event_date, invalid event_date format, or store rejection"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /create-event [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), cred, domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingEventFields):
			h.WriteJSONError(w, http.StatusBadRequest, domain.ErrMissingEventFields.Error())
		case errors.Is(err, domain.ErrInvalidEventDate):
			h.WriteJSONError(w, http.StatusBadRequest, domain.ErrInvalidEventDate.Error())
		default:
			writeStoreError(w, r, c.Logger, err, http.StatusBadRequest)
		}
		return
	}
	h.WriteJSON(w, http.StatusCreated, event)
}

// CleanupEvents godoc
// @Summary Delete stale events
// @Description Deletes the caller's events whose event_date is more than 24 hours in the past.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.CleanupEventsResponse
// @Failure 400 {object} helpers.ErrorResponse "store rejected the delete"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /cleanup-events [delete]
func (c *EventController) CleanupEvents(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	deleted, cutoff, err := c.Service.CleanupStaleEvents(r.Context(), cred)
	if err != nil {
		writeStoreError(w, r, c.Logger, err, http.StatusBadRequest)
		return
	}
	metrics.StaleEventsDeleted.Add(float64(deleted))
	h.WriteJSON(w, http.StatusOK, CleanupEventsResponse{
		Message: strconv.Itoa(deleted) + " deleted",
		Count:   deleted,
		Cutoff:  cutoff,
	})
}
