package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "geoticket/internal/errors"
	"geoticket/internal/service"
)

// proximityRequest is the slice of the request body the geofence gate needs.
// Latitude and longitude are pointers so a genuine 0 coordinate is not
// mistaken for a missing field.
type proximityRequest struct {
	EventID   string   `json:"event_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Geofence authorizes the request by proximity before the handler runs. It
// reads the JSON body, restores it for the handler's own bind, and
// short-circuits with the mapped status when the claimed position is outside
// the event's admission radius.
func Geofence(gate service.GeofenceService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
					Error: "unable to read request body",
					Code:  "BAD_REQUEST",
				})
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			var req proximityRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
					Error: "invalid request body",
					Code:  "BAD_REQUEST",
				})
			}

			if req.EventID == "" || req.Latitude == nil || req.Longitude == nil {
				return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
					Error: "missing event_id or user location in request body",
					Code:  "BAD_REQUEST",
				})
			}

			eventID, err := uuid.Parse(req.EventID)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
					Error: "invalid event_id",
					Code:  "BAD_REQUEST",
				})
			}

			if err := gate.AuthorizeProximity(c.Request().Context(), eventID, *req.Latitude, *req.Longitude); err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			return next(c)
		}
	}
}
