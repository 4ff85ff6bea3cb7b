// Package metrics exposes Prometheus collectors for the rental flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Registry *prometheus.Registry

	Rentals         *prometheus.CounterVec
	RentedCredits   prometheus.Counter
	CreditsAdded    prometheus.Counter
	RentalsRejected *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Rentals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instruments_rental",
			Name:      "rentals_total",
			Help:      "Completed rentals by category and period.",
		}, []string{"category", "period"}),
		RentedCredits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "instruments_rental",
			Name:      "rented_credits_total",
			Help:      "Credits charged for rentals.",
		}),
		CreditsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "instruments_rental",
			Name:      "credits_added_total",
			Help:      "Credits added to balances.",
		}),
		RentalsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instruments_rental",
			Name:      "rentals_rejected_total",
			Help:      "Rentals refused, by reason.",
		}, []string{"reason"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "instruments_rental",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.Registry.MustRegister(
		m.Rentals,
		m.RentedCredits,
		m.CreditsAdded,
		m.RentalsRejected,
		m.HTTPDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveRental(category, period string, charged int) {
	if m == nil {
		return
	}
	m.Rentals.WithLabelValues(category, period).Inc()
	m.RentedCredits.Add(float64(charged))
}

func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.RentalsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveCreditsAdded(amount int) {
	if m == nil {
		return
	}
	m.CreditsAdded.Add(float64(amount))
}
