package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event represents a venue event with a circular admission geofence.
// Latitude/Longitude is the registered center; RadiusKm is the admission
// radius in kilometers.
type Event struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Date      time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_events_date_time"`
	Time      string    `json:"time" gorm:"size:5;not null;uniqueIndex:idx_events_date_time"` // HH:MM
	Area      string    `json:"area" gorm:"size:255;not null"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	RadiusKm  float64   `json:"radius_km" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
