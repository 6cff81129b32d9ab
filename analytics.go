package sandwich

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EventMetrics tracks event-related metrics
var EventMetrics = struct {
	EventsTotal *prometheus.CounterVec
	ErrorsTotal *prometheus.CounterVec
}{
	EventsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sandwich_interactions_events_total",
			Help: "Total number of events consumed, split by event type",
		},
		[]string{"event_type"},
	),
	ErrorsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sandwich_interactions_event_errors_total",
			Help: "Total number of events that failed to be handled, split by event type",
		},
		[]string{"event_type"},
	),
}

func RecordEvent(eventType string) {
	EventMetrics.EventsTotal.WithLabelValues(eventType).Inc()
}

func RecordEventError(eventType string) {
	EventMetrics.ErrorsTotal.WithLabelValues(eventType).Inc()
}

// InteractionMetrics tracks interaction-related metrics
var InteractionMetrics = struct {
	DispatchedTotal *prometheus.CounterVec
	DroppedTotal    *prometheus.CounterVec
}{
	DispatchedTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sandwich_interactions_dispatched_total",
			Help: "Total number of interactions dispatched, split by structure",
		},
		[]string{"structure"},
	),
	DroppedTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sandwich_interactions_dropped_total",
			Help: "Total number of interactions dropped, split by reason",
		},
		[]string{"reason"},
	),
}

func RecordInteraction(structure string) {
	InteractionMetrics.DispatchedTotal.WithLabelValues(structure).Inc()
}

func RecordDroppedInteraction(reason string) {
	InteractionMetrics.DroppedTotal.WithLabelValues(reason).Inc()
}
