package main

import (
	"log"
	"net/http"

	_ "geoticket/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"geoticket/internal/auth"
	"geoticket/internal/cache"
	"geoticket/internal/config"
	"geoticket/internal/db"
	"geoticket/internal/handler"
	"geoticket/internal/metrics"
	"geoticket/internal/model"
	"geoticket/internal/repository"
	"geoticket/internal/router"
	"geoticket/internal/service"
)

// @title Geoticket API
// @version 1.0
// @description Event ticketing API with geofenced ticket validation and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	eventService := service.NewEventService(eventRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, collector)
	geofenceService := service.NewGeofenceService(eventService, collector)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	router.Register(
		e,
		jwtService,
		geofenceService,
		registry,
		authHandler,
		eventHandler,
		bookingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
