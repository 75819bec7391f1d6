// Package metrics records per-run report metrics and pushes them to a
// Prometheus Pushgateway, the usual sink for batch jobs.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"wolfstats/internal/core"
)

// ReportMetrics holds the gauges and counters of one report run.
type ReportMetrics struct {
	registry *prometheus.Registry

	recordsRead       prometheus.Gauge
	recordsNoMonth    prometheus.Gauge
	victims           *prometheus.GaugeVec
	attacks           *prometheus.GaugeVec
	chartsRendered    *prometheus.CounterVec
	memoLookups       *prometheus.GaugeVec
	runDuration       prometheus.Gauge
	lastSuccess       prometheus.Gauge
	sinkFailuresTotal *prometheus.CounterVec
}

// NewReportMetrics creates the metrics and registers them on registry.
func NewReportMetrics(registry *prometheus.Registry) (*ReportMetrics, error) {
	m := &ReportMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ReportMetrics) initMetrics() {
	m.recordsRead = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wolfstats_records",
		Help: "Incident records read from the dataset",
	})
	m.recordsNoMonth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wolfstats_records_without_month",
		Help: "Records left out of monthly aggregates because no month was found",
	})
	m.victims = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wolfstats_victims",
		Help: "Victims summed over all months",
	}, []string{"gender"})
	m.attacks = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wolfstats_attacks",
		Help: "Records with at least one victim of the gender, per month",
	}, []string{"month", "gender"})
	m.chartsRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wolfstats_charts_rendered_total",
		Help: "Charts written, by kind",
	}, []string{"kind"})
	m.memoLookups = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wolfstats_memo_lookups",
		Help: "Victim extraction memo lookups, by result",
	}, []string{"result"}) // result: hit, miss
	m.runDuration = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wolfstats_run_duration_seconds",
		Help: "Wall time of the last report run",
	})
	m.lastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wolfstats_last_success_timestamp_seconds",
		Help: "Unix time of the last successful report run",
	})
	m.sinkFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wolfstats_sink_failures_total",
		Help: "Optional sink failures, by sink",
	}, []string{"sink"})
}

// Describe implements prometheus.Collector
func (m *ReportMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.recordsRead.Describe(ch)
	m.recordsNoMonth.Describe(ch)
	m.victims.Describe(ch)
	m.attacks.Describe(ch)
	m.chartsRendered.Describe(ch)
	m.memoLookups.Describe(ch)
	m.runDuration.Describe(ch)
	m.lastSuccess.Describe(ch)
	m.sinkFailuresTotal.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *ReportMetrics) Collect(ch chan<- prometheus.Metric) {
	m.recordsRead.Collect(ch)
	m.recordsNoMonth.Collect(ch)
	m.victims.Collect(ch)
	m.attacks.Collect(ch)
	m.chartsRendered.Collect(ch)
	m.memoLookups.Collect(ch)
	m.runDuration.Collect(ch)
	m.lastSuccess.Collect(ch)
	m.sinkFailuresTotal.Collect(ch)
}

// RecordAggregates sets the dataset and aggregate gauges.
func (m *ReportMetrics) RecordAggregates(records int, agg core.MonthlyAggregate, attacks core.MonthlyAttacks) {
	m.recordsRead.Set(float64(records))
	m.recordsNoMonth.Set(float64(agg.Excluded))
	total := agg.Total()
	for _, g := range []core.Gender{core.Male, core.Female, core.Unknown, core.All} {
		m.victims.WithLabelValues(g.String()).Set(float64(total.Of(g)))
		for _, month := range core.Months {
			m.attacks.WithLabelValues(month.String(), g.String()).Set(float64(attacks.Get(month, g)))
		}
	}
}

func (m *ReportMetrics) RecordChart(kind string) {
	m.chartsRendered.WithLabelValues(kind).Inc()
}

func (m *ReportMetrics) RecordMemo(hits, misses int) {
	m.memoLookups.WithLabelValues("hit").Set(float64(hits))
	m.memoLookups.WithLabelValues("miss").Set(float64(misses))
}

func (m *ReportMetrics) RecordSinkFailure(sink string) {
	m.sinkFailuresTotal.WithLabelValues(sink).Inc()
}

// RecordSuccess marks the run as finished at end.
func (m *ReportMetrics) RecordSuccess(start, end time.Time) {
	m.runDuration.Set(end.Sub(start).Seconds())
	m.lastSuccess.Set(float64(end.Unix()))
}

// Pusher sends the registry to a Pushgateway.
type Pusher struct {
	url    string
	job    string
	client *http.Client
}

func NewPusher(url, job string, client *http.Client) *Pusher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Pusher{url: url, job: job, client: client}
}

// Push replaces the metrics of the job's group, grouped by backend.
func (p *Pusher) Push(ctx context.Context, m *ReportMetrics, backend string) error {
	err := push.New(p.url, p.job).
		Client(p.client).
		Gatherer(m.registry).
		Grouping("backend", backend).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics to %s: %w", p.url, err)
	}
	return nil
}
