package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirasaad/parcels/pkg/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFetchResult(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc string
		err  error
		want string
	}{
		{desc: "success", err: nil, want: "ok"},
		{desc: "network", err: fmt.Errorf("dial: %w", provider.ErrNetworkFailure), want: "network_failure"},
		{desc: "status", err: provider.ErrBadStatus, want: "bad_status"},
		{desc: "content type", err: provider.ErrBadContentType, want: "bad_content_type"},
		{desc: "payload", err: provider.ErrMalformedPayload, want: "malformed_payload"},
		{desc: "field", err: provider.ErrMissingField, want: "missing_field"},
		{desc: "other", err: errors.New("boom"), want: "unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FetchResult(tc.err))
		})
	}
}

func TestMetrics_RecordRun(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordRun("schedule", 3, 20*time.Millisecond, nil)
	m.RecordRun("manual", 5, 10*time.Millisecond, errors.New("rollback"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.PricingRunsTotal.WithLabelValues("schedule", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PricingRunsTotal.WithLabelValues("manual", "failure")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ParcelsPricedTotal), 0)
}

func TestMetrics_RateCollectors(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordRateFetch("cbr", nil)
	m.RecordRateFetch("cbr", provider.ErrBadContentType)
	m.RecordRateFallback("stale")
	m.RecordRate(95.5)

	assert.InDelta(t, 1, testutil.ToFloat64(m.RateFetchesTotal.WithLabelValues("cbr", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateFetchesTotal.WithLabelValues("cbr", "bad_content_type")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateFallbacksTotal.WithLabelValues("stale")), 0)
	assert.InDelta(t, 95.5, testutil.ToFloat64(m.RateValue), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRateFetch("cbr", nil)
		m.RecordRateFallback("default")
		m.RecordRate(90)
		m.RecordRun("manual", 1, time.Second, nil)
		m.RecordPublishError()
		m.RecordParcelRegistered()
	})
}
