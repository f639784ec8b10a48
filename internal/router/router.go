package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"geoticket/internal/auth"
	"geoticket/internal/handler"
	"geoticket/internal/metrics"
	"geoticket/internal/middleware"
	"geoticket/internal/service"
)

// Register wires routes and the request pipeline. Protected routes pass
// through the access gate; ticket validation additionally passes through the
// geofence gate before reaching its handler.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	geofenceService service.GeofenceService,
	gatherer prometheus.Gatherer,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/signUp", authHandler.SignUp)
	authGroup.POST("/login", authHandler.Login)

	accessGate := middleware.AccessGate(jwtService)

	// Event management: admin-gated writes, authenticated reads
	events := e.Group("/events", accessGate)
	events.GET("/all", eventHandler.List)
	events.POST("/create", eventHandler.Create, middleware.RequireAdmin)
	events.PUT("/update", eventHandler.Update, middleware.RequireAdmin)
	events.DELETE("/delete", eventHandler.Delete, middleware.RequireAdmin)

	// Booking lifecycle
	bookings := e.Group("/bookings", accessGate)
	bookings.POST("/book", bookingHandler.Book)
	bookings.DELETE("/cancel", bookingHandler.Cancel)
	bookings.GET("/getall", bookingHandler.GetAll)
	bookings.PUT("/validate", bookingHandler.Validate, middleware.Geofence(geofenceService))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
