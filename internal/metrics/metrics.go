// Package metrics defines the Prometheus collectors for the Dealflow API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DealMetrics contains all collectors for the deal domain and the HTTP layer.
type DealMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Deal lifecycle
	DealsCreatedTotal *prometheus.CounterVec
	DealsDeletedTotal prometheus.Counter

	// Category rename cascades
	CategoryRenamesTotal     prometheus.Counter
	CascadeUpdatedDealsTotal prometheus.Counter
}

// New creates the collectors and registers them with reg. Callers own the
// registry: the server passes prometheus.DefaultRegisterer, tests pass a
// fresh prometheus.NewRegistry() to avoid duplicate registration.
func New(reg prometheus.Registerer) *DealMetrics {
	factory := promauto.With(reg)

	return &DealMetrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"method", "route"},
		),

		DealsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_created_total",
				Help: "Total deals created, by category name",
			},
			[]string{"category"},
		),

		DealsDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "deals_deleted_total",
				Help: "Total deals hard-deleted",
			},
		),

		CategoryRenamesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "category_renames_total",
				Help: "Total category renames that triggered a deal cascade",
			},
		),

		CascadeUpdatedDealsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "category_rename_cascaded_deals_total",
				Help: "Total deals whose cached category name was rewritten by a rename cascade",
			},
		),
	}
}

// RecordHTTPRequest records one served request.
func (m *DealMetrics) RecordHTTPRequest(method, route string, status int, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordDealCreated records a created deal under its category name.
func (m *DealMetrics) RecordDealCreated(categoryName string) {
	m.DealsCreatedTotal.WithLabelValues(categoryName).Inc()
}

// RecordDealDeleted records a hard-deleted deal.
func (m *DealMetrics) RecordDealDeleted() {
	m.DealsDeletedTotal.Inc()
}

// RecordRenameCascade records one rename cascade and how many deals it touched.
func (m *DealMetrics) RecordRenameCascade(updatedDeals int64) {
	m.CategoryRenamesTotal.Inc()
	m.CascadeUpdatedDealsTotal.Add(float64(updatedDeals))
}
