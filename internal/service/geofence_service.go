package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "geoticket/internal/errors"
	"geoticket/internal/geo"
	"geoticket/internal/metrics"
)

// GeofenceService decides whether a claimed position is inside an event's
// admission radius. It holds no state: every call re-reads the event and
// re-computes the distance, so a pass is never remembered.
type GeofenceService interface {
	AuthorizeProximity(ctx context.Context, eventID uuid.UUID, latitude, longitude float64) error
}

type geofenceService struct {
	events    EventService
	collector *metrics.Collector
}

// NewGeofenceService creates a geofence gate backed by the event lookup.
func NewGeofenceService(events EventService, collector *metrics.Collector) GeofenceService {
	return &geofenceService{
		events:    events,
		collector: collector,
	}
}

// AuthorizeProximity passes iff the great-circle distance between the claimed
// point and the event's registered center does not exceed the event's radius.
// The boundary is inclusive: distance == radius admits.
func (s *geofenceService) AuthorizeProximity(ctx context.Context, eventID uuid.UUID, latitude, longitude float64) error {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	distance := geo.DistanceKm(
		geo.Point{Latitude: latitude, Longitude: longitude},
		geo.Point{Latitude: event.Latitude, Longitude: event.Longitude},
	)

	if distance > event.RadiusKm {
		s.collector.RecordGeofenceCheck("denied", distance)
		return &apperrors.OutsideGeofenceError{
			DistanceKm: distance,
			RadiusKm:   event.RadiusKm,
		}
	}

	s.collector.RecordGeofenceCheck("passed", distance)
	return nil
}
