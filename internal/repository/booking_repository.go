package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoticket/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateStatusIfBooked(ctx context.Context, id uuid.UUID, newStatus string) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	var booking model.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete removes a booking by id and reports the number of rows removed.
func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Booking{})
	return res.RowsAffected, res.Error
}

// UpdateStatusIfBooked is a single conditional update: the status changes
// only if the current status is still "booked". Two concurrent validations
// of the same booking therefore resolve to exactly one affected row; the
// loser sees zero rows and must re-read to learn why.
func (r *bookingRepository) UpdateStatusIfBooked(ctx context.Context, id uuid.UUID, newStatus string) (int64, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	res := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ? AND status = ?", id, model.StatusBooked).
		Update("status", newStatus)
	return res.RowsAffected, res.Error
}
