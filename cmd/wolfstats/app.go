package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"wolfstats/internal/amqp"
	"wolfstats/internal/backend"
	"wolfstats/internal/cache"
	"wolfstats/internal/cli"
	"wolfstats/internal/config"
	"wolfstats/internal/core"
	applog "wolfstats/internal/log"
	"wolfstats/internal/metrics"
	"wolfstats/internal/report"
	"wolfstats/internal/transform"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	logLevel string
	cfg      *config.Config
	logger   *applog.Logger
	factory  *backend.DefaultFactory
}

func (a *app) init(errOut io.Writer) error {
	cli.LoadEnvFile()
	cfg, err := cli.LoadAndValidateConfig(a.logLevel)
	if err != nil {
		return err
	}
	logger, err := cli.SetupLogger(cfg.LogLevel, errOut)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.factory = backend.NewFactory(logger)
	return nil
}

func (a *app) openBackend(ctx context.Context) (*backend.BackendResult, backend.Config, error) {
	bcfg, err := backend.FromAppConfig(a.cfg)
	if err != nil {
		return nil, backend.Config{}, err
	}
	res, err := a.factory.CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, bcfg, err
	}
	return res, bcfg, nil
}

// newRunner builds a runner over the configured source. withSinks attaches
// the AMQP publisher and Pushgateway pusher when they are configured.
func (a *app) newRunner(ctx context.Context, out io.Writer, withSinks bool) (*report.Runner, func(), error) {
	res, bcfg, err := a.openBackend(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanups := []func() error{res.Close}

	runID := uuid.NewString()
	r := &report.Runner{
		Source:    res.Source,
		Backend:   bcfg.Type.String(),
		OutputDir: a.cfg.ChartOutputDir,
		Out:       out,
		Logger:    a.logger,
		RunID:     runID,
	}
	if a.cfg.MemoCacheSize > 0 {
		memo := cache.NewLRUCache[core.VictimCounts](a.cfg.MemoCacheSize, 0)
		r.Transformer, r.Memo = transform.New(memo), memo
	} else {
		r.Transformer = transform.New(nil)
	}

	if withSinks {
		if a.cfg.AMQPURL != "" {
			client, err := amqp.NewClient(a.cfg.AMQPURL, a.cfg.AMQPExchange, a.cfg.AMQPQueue, a.logger)
			if err != nil {
				a.logger.Warn("Failed to initialize AMQP client, continuing without publication", applog.FieldError, err)
			} else {
				r.Publisher = client
				cleanups = append(cleanups, client.Close)
			}
		}
		if a.cfg.PushgatewayURL != "" {
			m, err := metrics.NewReportMetrics(prometheus.NewRegistry())
			if err != nil {
				return nil, nil, fmt.Errorf("create metrics: %w", err)
			}
			r.Metrics = m
			r.Pusher = metrics.NewPusher(a.cfg.PushgatewayURL, a.cfg.PushgatewayJob,
				&http.Client{Timeout: a.cfg.HTTPTimeout})
		}
	}

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			if err := cleanups[i](); err != nil {
				a.logger.Warn("Cleanup failed", applog.FieldError, err)
			}
		}
	}
	return r, cleanup, nil
}
