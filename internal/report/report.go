// Package report runs a plan end to end: read the dataset, augment every
// record, aggregate by month, then render charts, print tables and feed the
// optional sinks.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"wolfstats/internal/aggregate"
	"wolfstats/internal/amqp"
	"wolfstats/internal/chart"
	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
	applog "wolfstats/internal/log"
	"wolfstats/internal/metrics"
	"wolfstats/internal/transform"
)

// Publisher receives the run's chart triples.
type Publisher interface {
	PublishReport(ctx context.Context, msg *amqp.ReportMessage) error
}

// MetricsPusher ships the run metrics.
type MetricsPusher interface {
	Push(ctx context.Context, m *metrics.ReportMetrics, backend string) error
}

// MemoStats reports memo hits and misses.
type MemoStats interface {
	Stats() (hits, misses int)
}

// Runner wires a dataset source to the outputs. Source, Transformer and Out
// are required; the rest may be nil.
type Runner struct {
	Source      dataset.IncidentReader
	Backend     string
	Transformer *transform.Transformer
	Memo        MemoStats
	OutputDir   string
	Out         io.Writer
	Publisher   Publisher
	Metrics     *metrics.ReportMetrics
	Pusher      MetricsPusher
	Logger      *applog.Logger
	RunID       string
	Now         func() time.Time
}

// Result summarizes a finished run.
type Result struct {
	RunID     string
	Records   []core.AugmentedRecord
	Aggregate core.MonthlyAggregate
	Attacks   core.MonthlyAttacks
	Charts    []string
}

func (r *Runner) logger() *applog.Logger {
	if r.Logger == nil {
		r.Logger = applog.Discard()
	}
	return r.Logger.WithComponent(applog.ComponentReport).With(applog.FieldRunID, r.RunID)
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Load reads and augments the dataset.
func (r *Runner) Load(ctx context.Context) ([]core.AugmentedRecord, error) {
	incidents, err := r.Source.ReadIncidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	tr := r.Transformer
	if tr == nil {
		tr = transform.New(nil)
	}
	records := tr.Transform(incidents)
	r.logger().InfoContext(ctx, "Dataset loaded",
		applog.FieldBackend, r.Backend,
		applog.FieldRecords, len(records))
	return records, nil
}

// Run executes plan. Sink failures are logged and counted but do not fail
// the run.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Result, error) {
	start := r.now()
	log := r.logger()

	records, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	res := &Result{
		RunID:     r.RunID,
		Records:   records,
		Aggregate: aggregate.Monthly(records),
		Attacks:   aggregate.Attacks(records),
	}
	log.InfoContext(ctx, "Aggregated by month",
		applog.FieldRecords, len(records),
		applog.FieldExcluded, res.Aggregate.Excluded)

	for _, spec := range plan.Charts {
		spec, err := spec.Normalize()
		if err != nil {
			return nil, err
		}
		path, err := chart.WriteFile(r.OutputDir, spec, r.points(spec.Metric, res, spec.Genders))
		if err != nil {
			return nil, err
		}
		res.Charts = append(res.Charts, path)
		if r.Metrics != nil {
			r.Metrics.RecordChart(string(spec.Kind))
		}
		log.InfoContext(ctx, "Chart written", applog.FieldChart, spec.Kind, applog.FieldPath, path)
	}

	if !plan.Summary.Disabled {
		if err := WriteSummary(r.Out, plan.Summary.Metric, res.Aggregate, res.Attacks); err != nil {
			return nil, fmt.Errorf("write summary: %w", err)
		}
	}

	for _, f := range plan.Filters {
		preds, err := f.Predicates()
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", f.Title(), err)
		}
		fmt.Fprintln(r.Out)
		if err := WriteRecords(r.Out, f.Title(), aggregate.Filter(records, preds...)); err != nil {
			return nil, fmt.Errorf("write filter %q: %w", f.Title(), err)
		}
	}

	if r.Publisher != nil {
		msg := amqp.NewReportMessage(r.RunID, r.Backend, string(plan.Publish.Metric),
			len(records), res.Aggregate.Excluded,
			r.points(plan.Publish.Metric, res, plan.Publish.Genders))
		if err := r.Publisher.PublishReport(ctx, msg); err != nil {
			log.WarnContext(ctx, "Report publication failed",
				applog.NewFields().WithOperation(applog.OpPublish).WithError(err).ToSlice()...)
			r.sinkFailure("amqp")
		}
	}

	if r.Metrics != nil {
		r.Metrics.RecordAggregates(len(records), res.Aggregate, res.Attacks)
		if r.Memo != nil {
			r.Metrics.RecordMemo(r.Memo.Stats())
		}
		r.Metrics.RecordSuccess(start, r.now())
		if r.Pusher != nil {
			if err := r.Pusher.Push(ctx, r.Metrics, r.Backend); err != nil {
				log.WarnContext(ctx, "Metrics push failed",
					applog.NewFields().WithOperation(applog.OpPush).WithError(err).ToSlice()...)
				r.sinkFailure("pushgateway")
			}
		}
	}

	return res, nil
}

func (r *Runner) points(m chart.Metric, res *Result, genders []core.Gender) []core.SeriesPoint {
	if m == chart.Victims {
		return aggregate.VictimSeries(res.Aggregate, genders...)
	}
	return aggregate.Series(res.Attacks, genders...)
}

func (r *Runner) sinkFailure(sink string) {
	if r.Metrics != nil {
		r.Metrics.RecordSinkFailure(sink)
	}
}
