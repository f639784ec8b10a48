package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "geoticket/internal/errors"
	"geoticket/internal/model"
)

// MockEventService is a mock implementation of EventService.
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func TestGeofenceService_AuthorizeProximity(t *testing.T) {
	eventID := uuid.New()

	// Event centered on Connaught Place, New Delhi, 1 km admission radius.
	event := &model.Event{
		ID:        eventID,
		Latitude:  28.6139,
		Longitude: 77.2090,
		RadiusKm:  1.0,
	}

	tests := []struct {
		name          string
		latitude      float64
		longitude     float64
		expectOutside bool
	}{
		{
			name:      "exact center passes",
			latitude:  28.6139,
			longitude: 77.2090,
		},
		{
			name:      "point just inside the radius passes",
			latitude:  28.6179, // ~0.44 km north
			longitude: 77.2090,
		},
		{
			name:          "point about 1.11 km north is outside",
			latitude:      28.6239,
			longitude:     77.2090,
			expectOutside: true,
		},
		{
			name:          "point far away is outside",
			latitude:      19.0760, // Mumbai
			longitude:     72.8777,
			expectOutside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEvents := new(MockEventService)
			mockEvents.On("GetEvent", mock.Anything, eventID).Return(event, nil)

			service := NewGeofenceService(mockEvents, newTestCollector())
			err := service.AuthorizeProximity(context.Background(), eventID, tt.latitude, tt.longitude)

			if tt.expectOutside {
				var geofenceErr *apperrors.OutsideGeofenceError
				assert.ErrorAs(t, err, &geofenceErr)
				assert.Greater(t, geofenceErr.DistanceKm, event.RadiusKm)
				assert.Equal(t, event.RadiusKm, geofenceErr.RadiusKm)
			} else {
				assert.NoError(t, err)
			}
			mockEvents.AssertExpectations(t)
		})
	}
}

func TestGeofenceService_BoundaryIsInclusive(t *testing.T) {
	eventID := uuid.New()
	mockEvents := new(MockEventService)
	// Zero radius: only the exact center passes, and it must.
	mockEvents.On("GetEvent", mock.Anything, eventID).Return(&model.Event{
		ID:        eventID,
		Latitude:  28.6139,
		Longitude: 77.2090,
		RadiusKm:  0,
	}, nil)

	service := NewGeofenceService(mockEvents, newTestCollector())

	assert.NoError(t, service.AuthorizeProximity(context.Background(), eventID, 28.6139, 77.2090))
}

func TestGeofenceService_EventNotFound(t *testing.T) {
	eventID := uuid.New()
	mockEvents := new(MockEventService)
	mockEvents.On("GetEvent", mock.Anything, eventID).Return(nil, apperrors.ErrEventNotFound)

	service := NewGeofenceService(mockEvents, newTestCollector())
	err := service.AuthorizeProximity(context.Background(), eventID, 28.6139, 77.2090)

	assert.Equal(t, apperrors.ErrEventNotFound, err)
	mockEvents.AssertExpectations(t)
}
