package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status values. A booking is created as StatusBooked and moves to
// StatusValidated exactly once, at the venue gate. Cancellation deletes the
// row rather than storing a terminal status.
const (
	StatusBooked    = "booked"
	StatusValidated = "validated"
	StatusCancelled = "cancelled"
)

// Booking ties a user to an event. UserID and EventID are plain foreign
// keys, never embedded copies of the referenced records.
type Booking struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:char(36);not null;index"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	BookedAt  time.Time `json:"booked_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
