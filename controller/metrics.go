package controller

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
)

func NewMetricsRegistry() *controllerRegistry {
	registry := &controllerRegistry{
		Registry: prometheus.NewRegistry(),
		deliveriesCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matrix_notifications_deliveries_total",
				Help: "Number of delivered notifications.",
			},
			[]string{"state", "succeeded"},
		),
		eventsCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matrix_notifications_events_total",
				Help: "Number of processed build events.",
			},
			[]string{"complete"},
		),
	}
	registry.MustRegister(registry.deliveriesCounter)
	registry.MustRegister(registry.eventsCounter)
	return registry
}

type controllerRegistry struct {
	*prometheus.Registry
	deliveriesCounter *prometheus.CounterVec
	eventsCounter     *prometheus.CounterVec
}

func (r *controllerRegistry) IncDeliveriesCounter(state build.State, succeeded bool) {
	r.deliveriesCounter.WithLabelValues(string(state), strconv.FormatBool(succeeded)).Inc()
}

func (r *controllerRegistry) IncEventsCounter(complete bool) {
	r.eventsCounter.WithLabelValues(strconv.FormatBool(complete)).Inc()
}
