package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"geoticket/internal/config"
	"geoticket/internal/db"
	"geoticket/internal/model"
	"geoticket/internal/repository"
)

// Seeds an admin account and a pair of demo events so the API is usable
// immediately after a fresh deploy.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Event{}, &model.Booking{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, "admin@geoticket.local"); err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin-change-me"), 10)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			Name:         "Admin",
			Email:        "admin@geoticket.local",
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Println("Seeded admin user admin@geoticket.local")
	}

	events := []model.Event{
		{
			Name:      "Connaught Place Open Air Concert",
			Date:      time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour),
			Time:      "19:00",
			Area:      "Connaught Place, New Delhi",
			Latitude:  28.6139,
			Longitude: 77.2090,
			RadiusKm:  1.0,
			Price:     499,
		},
		{
			Name:      "Marine Drive Tech Meetup",
			Date:      time.Now().AddDate(0, 1, 7).Truncate(24 * time.Hour),
			Time:      "10:30",
			Area:      "Marine Drive, Mumbai",
			Latitude:  18.9440,
			Longitude: 72.8230,
			RadiusKm:  0.5,
			Price:     0,
		},
	}

	seeded := 0
	for i := range events {
		existing, err := eventRepo.FindByDateTime(ctx, events[i].Date, events[i].Time)
		if err == nil && existing != nil {
			continue
		}
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			log.Printf("Failed to seed event %q: %v", events[i].Name, err)
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d demo events", seeded)

	log.Println("Seed script completed")
}
