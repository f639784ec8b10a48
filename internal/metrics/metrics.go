// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers counters for the booking pipeline.
type Collector struct {
	bookingsCreated    prometheus.Counter
	bookingsCancelled  prometheus.Counter
	bookingsValidated  prometheus.Counter
	validationRejected *prometheus.CounterVec
	geofenceChecks     *prometheus.CounterVec
	geofenceDistance   prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geoticket_bookings_created_total",
			Help: "Total number of bookings created.",
		}),
		bookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geoticket_bookings_cancelled_total",
			Help: "Total number of bookings cancelled.",
		}),
		bookingsValidated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geoticket_bookings_validated_total",
			Help: "Total number of bookings validated at the gate.",
		}),
		validationRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geoticket_validation_rejected_total",
			Help: "Validation attempts rejected, by reason.",
		}, []string{"reason"}),
		geofenceChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geoticket_geofence_checks_total",
			Help: "Geofence proximity checks, by outcome.",
		}, []string{"outcome"}),
		geofenceDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "geoticket_geofence_distance_km",
			Help:    "Computed distance from event center in kilometers.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 50, 100},
		}),
	}

	reg.MustRegister(
		c.bookingsCreated,
		c.bookingsCancelled,
		c.bookingsValidated,
		c.validationRejected,
		c.geofenceChecks,
		c.geofenceDistance,
	)

	return c
}

// RecordBookingCreated counts a successful booking creation.
func (c *Collector) RecordBookingCreated() {
	c.bookingsCreated.Inc()
}

// RecordBookingCancelled counts a successful cancellation.
func (c *Collector) RecordBookingCancelled() {
	c.bookingsCancelled.Inc()
}

// RecordBookingValidated counts a successful ticket validation.
func (c *Collector) RecordBookingValidated() {
	c.bookingsValidated.Inc()
}

// RecordValidationRejected counts a rejected validation attempt.
func (c *Collector) RecordValidationRejected(reason string) {
	c.validationRejected.WithLabelValues(reason).Inc()
}

// RecordGeofenceCheck counts a proximity check and observes the distance.
func (c *Collector) RecordGeofenceCheck(outcome string, distanceKm float64) {
	c.geofenceChecks.WithLabelValues(outcome).Inc()
	c.geofenceDistance.Observe(distanceKm)
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		Timeout: 10 * time.Second,
	})
}
