package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the pricing server.
// Every method is safe to call on a nil *Metrics.
type Metrics struct {
	PriceQueriesTotal         *prometheus.CounterVec
	PriceQueryDurationSeconds prometheus.Histogram

	StoreVersion      prometheus.Gauge
	StoreEventsTotal  *prometheus.CounterVec
	SweepRunsTotal    *prometheus.CounterVec
	SweepDeactivated  prometheus.Counter
	SnapshotLoadTotal *prometheus.CounterVec

	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		PriceQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_price_queries_total",
				Help: "Total number of effective price queries by result",
			},
			[]string{"result"},
		),
		PriceQueryDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "promo_price_query_duration_seconds",
				Help:    "Duration of effective price queries",
				Buckets: []float64{0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
		),

		StoreVersion: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "promo_campaign_store_version",
				Help: "Version of the latest published campaign snapshot",
			},
		),
		StoreEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_campaign_store_events_total",
				Help: "Total number of campaign store mutations by type",
			},
			[]string{"type"},
		),
		SweepRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_activation_sweep_runs_total",
				Help: "Total number of activation sweeps by status",
			},
			[]string{"status"},
		),
		SweepDeactivated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "promo_activation_sweep_deactivated_total",
				Help: "Total number of expired campaigns deactivated by the sweep",
			},
		),
		SnapshotLoadTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_snapshot_loads_total",
				Help: "Total number of snapshot reloads from the database by status",
			},
			[]string{"status"},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "promo_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		registry: reg,
	}

	reg.MustRegister(
		m.PriceQueriesTotal,
		m.PriceQueryDurationSeconds,
		m.StoreVersion,
		m.StoreEventsTotal,
		m.SweepRunsTotal,
		m.SweepDeactivated,
		m.SnapshotLoadTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// Registry ...
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObservePriceQuery ...
func (m *Metrics) ObservePriceQuery(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.PriceQueriesTotal.WithLabelValues(result).Inc()
	m.PriceQueryDurationSeconds.Observe(d.Seconds())
}

// ObserveSweep ...
func (m *Metrics) ObserveSweep(deactivated int, failed int) {
	if m == nil {
		return
	}
	status := "ok"
	if failed > 0 {
		status = "failed"
	}
	m.SweepRunsTotal.WithLabelValues(status).Inc()
	m.SweepDeactivated.Add(float64(deactivated))
}

// ObserveSnapshotLoad ...
func (m *Metrics) ObserveSnapshotLoad(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "failed"
	}
	m.SnapshotLoadTotal.WithLabelValues(status).Inc()
}

// ObserveHTTPRequest ...
func (m *Metrics) ObserveHTTPRequest(method string, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveCampaignEvent ...
func (m *Metrics) ObserveCampaignEvent(event model.CampaignEvent) {
	if m == nil {
		return
	}
	m.StoreEventsTotal.WithLabelValues(event.Type.String()).Inc()
	m.StoreVersion.Set(float64(event.Version))
}

// ConsumeCampaignEvents blocks until ctx is done or events is closed
func (m *Metrics) ConsumeCampaignEvents(ctx context.Context, events <-chan model.CampaignEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			m.ObserveCampaignEvent(event)
		}
	}
}
