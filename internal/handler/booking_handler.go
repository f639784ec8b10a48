package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "geoticket/internal/errors"
	"geoticket/internal/middleware"
	"geoticket/internal/model"
	"geoticket/internal/service"
)

// BookingHandler handles booking lifecycle endpoints. The owning user is
// always the authenticated identity attached by the access gate.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookRequest represents a ticket booking request.
type BookRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
}

// CancelRequest represents a booking cancellation request.
type CancelRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

// ValidateRequest represents a ticket validation request. EventID and the
// coordinates are consumed by the geofence gate before this handler runs.
type ValidateRequest struct {
	EventID   string  `json:"event_id" validate:"required,uuid"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	BookingID string  `json:"booking_id" validate:"required,uuid"`
}

// Book godoc
// @Summary Book a ticket for an event
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookRequest true "Booking data"
// @Success 201 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/book [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event_id")
	}

	booking, err := h.bookingService.Book(c.Request().Context(), claims.UserID, eventID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, booking)
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CancelRequest true "Cancellation data"
// @Success 200 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/cancel [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking_id")
	}

	booking, err := h.bookingService.Cancel(c.Request().Context(), bookingID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, booking)
}

// GetAll godoc
// @Summary List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/getall [get]
func (h *BookingHandler) GetAll(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	bookings, err := h.bookingService.ListForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// Validate godoc
// @Summary Validate a ticket at the venue gate
// @Description The geofence gate has already authorized the claimed position
// @Description when this handler runs; only the state transition remains.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ValidateRequest true "Validation data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bookings/validate [put]
func (h *BookingHandler) Validate(c echo.Context) error {
	var req ValidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking_id")
	}

	booking, err := h.bookingService.Validate(c.Request().Context(), bookingID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "booking successfully validated",
		"booking": booking,
	})
}
