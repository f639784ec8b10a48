// Package middleware contains the request pipeline stages applied before
// protected operations: the access gate, the admin role gate, and the
// geofence gate. Each stage either attaches context for downstream stages or
// short-circuits with a mapped error.
package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"geoticket/internal/auth"
	apperrors "geoticket/internal/errors"
	"geoticket/internal/model"
)

const claimsContextKey = "user"

// AccessGate extracts the bearer token from the Authorization header,
// verifies it, and attaches the decoded claims to the request context.
// Missing, malformed, or expired tokens short-circuit with 401.
func AccessGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing, invalid, or expired token",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// CurrentClaims returns the verified claims attached by AccessGate.
func CurrentClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	return claims, ok
}

// RequireAdmin rejects any authenticated identity whose role is not admin.
// Applied after AccessGate on event management routes.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := CurrentClaims(c)
		if !ok || claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}
