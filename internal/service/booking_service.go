package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "geoticket/internal/errors"
	"geoticket/internal/metrics"
	"geoticket/internal/model"
	"geoticket/internal/repository"
)

// BookingService owns the booking state machine: book, cancel, validate.
// Validation is the only guarded transition; it may happen exactly once and
// only from the booked status.
type BookingService interface {
	Book(ctx context.Context, userID, eventID uuid.UUID) (*model.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	Validate(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	collector   *metrics.Collector
}

// NewBookingService creates a new booking lifecycle service.
func NewBookingService(bookingRepo repository.BookingRepository, collector *metrics.Collector) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		collector:   collector,
	}
}

// Book creates a new booking in the booked status. A user may hold several
// bookings for the same event; no uniqueness is enforced here.
func (s *bookingService) Book(ctx context.Context, userID, eventID uuid.UUID) (*model.Booking, error) {
	booking := &model.Booking{
		UserID:   userID,
		EventID:  eventID,
		Status:   model.StatusBooked,
		BookedAt: time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.collector.RecordBookingCreated()
	return booking, nil
}

// Cancel removes a booking by id regardless of its status, returning the
// removed record. Ownership checks are the caller's responsibility.
func (s *bookingService) Cancel(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	affected, err := s.bookingRepo.Delete(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	if affected == 0 {
		return nil, apperrors.ErrBookingNotFound
	}

	s.collector.RecordBookingCancelled()
	booking.Status = model.StatusCancelled
	return booking, nil
}

// ListForUser returns all bookings owned by the user. An empty result is not
// an error.
func (s *bookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return bookings, nil
}

// Validate transitions a booking from booked to validated, exactly once.
// The transition is a single conditional update at the storage layer, so two
// concurrent validations of the same booking cannot both succeed; the loser
// observes ErrInvalidTransition. This is the replay guard: an already
// validated or deleted booking can never be re-validated.
func (s *bookingService) Validate(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error) {
	affected, err := s.bookingRepo.UpdateStatusIfBooked(ctx, bookingID, model.StatusValidated)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	if affected == 0 {
		// Either the booking does not exist or it is past the booked
		// status; a follow-up read tells the two apart.
		if _, err := s.bookingRepo.FindByID(ctx, bookingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.collector.RecordValidationRejected("not_found")
				return nil, apperrors.ErrBookingNotFound
			}
			return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
		}
		s.collector.RecordValidationRejected("invalid_transition")
		return nil, apperrors.ErrInvalidTransition
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.collector.RecordBookingValidated()
	return booking, nil
}
