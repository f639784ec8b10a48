package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "geoticket/internal/errors"
	"geoticket/internal/model"
	"geoticket/internal/service"
)

// EventHandler handles event management endpoints. Create, update, and
// delete sit behind the admin gate; listing is open to any authenticated
// user.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Name      string  `json:"name" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string  `json:"time" validate:"required,datetime=15:04"`
	Area      string  `json:"area" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusKm  float64 `json:"radius_km" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"min=0"`
}

// UpdateEventRequest represents an event update request.
type UpdateEventRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
	CreateEventRequest
}

// DeleteEventRequest represents an event deletion request.
type DeleteEventRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
}

func (r *CreateEventRequest) toModel() (*model.Event, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.Event{
		Name:      r.Name,
		Date:      date,
		Time:      r.Time,
		Area:      r.Area,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		RadiusKm:  r.RadiusKm,
		Price:     r.Price,
	}, nil
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/create [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	created, err := h.eventService.CreateEvent(c.Request().Context(), event)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateEventRequest true "Event data"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/update [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}
	event.ID, err = uuid.Parse(req.EventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event_id")
	}

	updated, err := h.eventService.UpdateEvent(c.Request().Context(), event)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteEventRequest true "Event reference"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/delete [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	var req DeleteEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event_id")
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), eventID); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "event deleted",
	})
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /events/all [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.ListEvents(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if events == nil {
		events = []model.Event{}
	}
	return c.JSON(http.StatusOK, events)
}
