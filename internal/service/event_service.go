package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoticket/internal/cache"
	apperrors "geoticket/internal/errors"
	"geoticket/internal/model"
	"geoticket/internal/repository"
)

const eventCacheTTL = 5 * time.Minute

// EventService exposes event management and lookup. The geofence gate
// consumes GetEvent; everything else is plain admin-facing persistence.
type EventService interface {
	CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) (*model.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
}

type eventService struct {
	repo  repository.EventRepository
	cache *cache.Client
}

// NewEventService builds an EventService with repository and cache.
func NewEventService(repo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{repo: repo, cache: cache}
}

func (s *eventService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("event:%s", id)
}

// CreateEvent stores a new event after checking that no other event occupies
// the same (date, time) slot.
func (s *eventService) CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	existing, err := s.repo.FindByDateTime(ctx, event.Date, event.Time)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEventTimeConflict
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check event slot: %w", err)
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	if _, err := s.repo.FindByID(ctx, event.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(event.ID))
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// GetEvent is a read-through cache over the event repository. Only event
// records are cached; proximity decisions never are.
func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if payload, err := json.Marshal(event); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, eventCacheTTL)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.repo.List(ctx)
}
