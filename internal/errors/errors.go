package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown-email and wrong-password deliberately share this error so the
	// response does not leak account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	// ErrEventNotFound is returned when a referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrEventTimeConflict is returned when an event already occupies the
	// requested date and time.
	ErrEventTimeConflict = errors.New("an event already exists at this date and time")
	// ErrBookingNotFound is returned when a referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidTransition is returned when a booking is not in a state that
	// permits the requested transition. Re-validating an already validated
	// ticket lands here.
	ErrInvalidTransition = errors.New("booking is not in a validatable state")
	// ErrForbidden is returned when an authenticated identity lacks the role
	// or ownership required for an operation.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrPersistence is returned on storage layer failure or timeout. Retryable.
	ErrPersistence = errors.New("storage operation failed")
)

// OutsideGeofenceError is returned when a claimed position falls outside an
// event's admission radius. It carries the computed distance and the allowed
// radius for diagnostics. Not retryable until the user relocates.
type OutsideGeofenceError struct {
	DistanceKm float64
	RadiusKm   float64
}

func (e *OutsideGeofenceError) Error() string {
	return fmt.Sprintf("outside event geofence: %.2f km from center, allowed radius %.2f km", e.DistanceKm, e.RadiusKm)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The core never depends
// on transport status codes; this translation happens only at the boundary.
func MapErrorToHTTP(err error) *HTTPError {
	var geofenceErr *OutsideGeofenceError
	if errors.As(err, &geofenceErr) {
		return NewHTTPError(http.StatusForbidden, geofenceErr.Error(), "OUTSIDE_GEOFENCE")
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrEventTimeConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "EVENT_TIME_CONFLICT")
	case errors.Is(err, ErrBookingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrPersistence):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "PERSISTENCE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
