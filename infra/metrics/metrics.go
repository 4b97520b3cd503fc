package metrics

import (
	"errors"
	"time"

	"github.com/amirasaad/parcels/pkg/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parcels"

// Metrics holds the collectors for the rate provider and the pricing job.
// All Record methods are safe to call on a nil *Metrics.
type Metrics struct {
	RateFetchesTotal   *prometheus.CounterVec
	RateFallbacksTotal *prometheus.CounterVec
	RateValue          prometheus.Gauge

	PricingRunsTotal   *prometheus.CounterVec
	ParcelsPricedTotal prometheus.Counter
	PricingRunDuration *prometheus.HistogramVec
	EventPublishErrors prometheus.Counter
	ParcelsRegistered  prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RateFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_fetches_total",
				Help:      "Outbound exchange rate fetches by result",
			},
			[]string{"provider", "result"},
		),
		RateFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_fallbacks_total",
				Help:      "Rates served from the fallback chain by source",
			},
			[]string{"source"},
		),
		RateValue: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rate_value",
				Help:      "Last exchange rate handed out for pricing",
			},
		),
		PricingRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pricing_runs_total",
				Help:      "Delivery cost runs by trigger and status",
			},
			[]string{"trigger", "status"},
		),
		ParcelsPricedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parcels_priced_total",
				Help:      "Parcels that received a delivery cost",
			},
		),
		PricingRunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pricing_run_duration_seconds",
				Help:      "Duration of delivery cost runs in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms .. ~20s
			},
			[]string{"status"},
		),
		EventPublishErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_errors_total",
				Help:      "Events that could not be published",
			},
		),
		ParcelsRegistered: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parcels_registered_total",
				Help:      "Parcels registered through the API",
			},
		),
	}
}

// RecordRateFetch counts one outbound fetch.
func (m *Metrics) RecordRateFetch(providerName string, err error) {
	if m == nil {
		return
	}
	m.RateFetchesTotal.WithLabelValues(providerName, FetchResult(err)).Inc()
}

// RecordRateFallback counts a rate served from "stale" or "default".
func (m *Metrics) RecordRateFallback(source string) {
	if m == nil {
		return
	}
	m.RateFallbacksTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordRate(rate float64) {
	if m == nil {
		return
	}
	m.RateValue.Set(rate)
}

// RecordRun records a finished pricing run.
func (m *Metrics) RecordRun(trigger string, priced int, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.PricingRunsTotal.WithLabelValues(trigger, status).Inc()
	m.PricingRunDuration.WithLabelValues(status).Observe(d.Seconds())
	if err == nil {
		m.ParcelsPricedTotal.Add(float64(priced))
	}
}

func (m *Metrics) RecordPublishError() {
	if m == nil {
		return
	}
	m.EventPublishErrors.Inc()
}

func (m *Metrics) RecordParcelRegistered() {
	if m == nil {
		return
	}
	m.ParcelsRegistered.Inc()
}

// FetchResult maps a fetch error onto a low-cardinality label value.
func FetchResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, provider.ErrNetworkFailure):
		return "network_failure"
	case errors.Is(err, provider.ErrBadStatus):
		return "bad_status"
	case errors.Is(err, provider.ErrBadContentType):
		return "bad_content_type"
	case errors.Is(err, provider.ErrMalformedPayload):
		return "malformed_payload"
	case errors.Is(err, provider.ErrMissingField):
		return "missing_field"
	default:
		return "unknown"
	}
}
