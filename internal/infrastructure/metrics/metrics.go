// Package metrics exposes Prometheus instrumentation for the API and the
// inquiry lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
)

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "instamakaan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "instamakaan_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	InquiryEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "instamakaan_inquiry_events_total",
			Help: "Committed inquiry domain events by type",
		},
		[]string{"event_type"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "instamakaan_inquiry_status_transitions_total",
			Help: "Inquiry status changes by origin and target",
		},
		[]string{"from", "to"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "instamakaan_public_inquiry_rate_limited_total",
			Help: "Public inquiry submissions rejected by the rate limiter",
		},
	)
)

// RecordRequest records metrics for an HTTP request. path is the route
// template, never the raw URL.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// EventRecorder counts domain events as they leave the dispatcher.
type EventRecorder struct{}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(events.AllEvents, r)
}

func (r *EventRecorder) CanHandle(string) bool {
	return true
}

func (r *EventRecorder) Handle(event events.DomainEvent) error {
	InquiryEventsTotal.WithLabelValues(event.GetEventType()).Inc()

	switch e := event.(type) {
	case inquiry.StatusChangedEvent:
		StatusTransitionsTotal.WithLabelValues(e.From, e.To).Inc()
	case *inquiry.StatusChangedEvent:
		StatusTransitionsTotal.WithLabelValues(e.From, e.To).Inc()
	}
	return nil
}
