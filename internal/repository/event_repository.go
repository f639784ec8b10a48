package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoticket/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindByDateTime(ctx context.Context, date time.Time, timeOfDay string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes an event by id and reports the number of rows removed.
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{})
	return res.RowsAffected, res.Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByDateTime(ctx context.Context, date time.Time, timeOfDay string) (*model.Event, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	var event model.Event
	if err := r.db.WithContext(ctx).Where("date = ? AND time = ?", date, timeOfDay).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	ctx, cancel := boundedCtx(ctx)
	defer cancel()
	var events []model.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
