package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wolfstats/internal/backend"
	"wolfstats/internal/chart"
	"wolfstats/internal/core"
	applog "wolfstats/internal/log"
	"wolfstats/internal/report"
)

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wolfstats",
		Short:         "Victim statistics from the global wolf attacks dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	root.AddCommand(
		reportCmd(a),
		summaryCmd(a),
		filterCmd(a),
		importCmd(a),
	)
	return root
}

func reportCmd(a *app) *cobra.Command {
	var planPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a report plan: charts, summary, filters and sinks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if planPath == "" {
				planPath = a.cfg.ReportPlan
			}
			plan, err := report.LoadPlan(planPath)
			if err != nil {
				return err
			}
			if err := plan.Validate(); err != nil {
				return err
			}

			r, cleanup, err := a.newRunner(cmd.Context(), cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := r.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}
			a.logger.WithComponent(applog.ComponentApp).InfoContext(cmd.Context(), "Report finished",
				append(applog.NewFields().WithRunID(res.RunID).ToSlice(),
					applog.FieldBackend, r.Backend, applog.FieldRecords, len(res.Records))...)
			for _, path := range res.Charts {
				fmt.Fprintf(cmd.OutOrStdout(), "chart: %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "YAML report plan (default: REPORT_PLAN or the built-in plan)")
	return cmd
}

func summaryCmd(a *app) *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the monthly table",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := report.DefaultPlan()
			plan.Charts = nil
			plan.Summary.Metric = chart.Metric(metric)
			if err := plan.Validate(); err != nil {
				return err
			}
			r, cleanup, err := a.newRunner(cmd.Context(), cmd.OutOrStdout(), false)
			if err != nil {
				return err
			}
			defer cleanup()
			_, err = r.Run(cmd.Context(), plan)
			return err
		},
	}
	cmd.Flags().StringVar(&metric, "metric", string(chart.Victims), "victims or attacks")
	return cmd
}

func filterCmd(a *app) *cobra.Command {
	var f report.FilterPlan
	var gender string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List records matching a month and gender",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Gender = core.Gender(gender)
			plan := report.DefaultPlan()
			plan.Charts = nil
			plan.Summary.Disabled = true
			plan.Filters = []report.FilterPlan{f}
			if err := plan.Validate(); err != nil {
				return err
			}
			r, cleanup, err := a.newRunner(cmd.Context(), cmd.OutOrStdout(), false)
			if err != nil {
				return err
			}
			defer cleanup()
			_, err = r.Run(cmd.Context(), plan)
			return err
		},
	}
	cmd.Flags().StringVar(&f.Month, "month", "", "month name, abbreviation or number")
	cmd.Flags().StringVar(&gender, "gender", "", "male, female, unknown or all")
	cmd.Flags().BoolVar(&f.NoMonth, "no-month", false, "only records without a month")
	cmd.MarkFlagsMutuallyExclusive("month", "no-month")
	return cmd
}

func importCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the csv or download source into the sqlite store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, bcfg, err := a.openBackend(ctx)
			if err != nil {
				return err
			}
			defer res.Close()
			if bcfg.Type == backend.SQLiteBackend {
				return errors.New("import needs a non-sqlite DATA_BACKEND as its source")
			}

			records, err := res.Source.ReadIncidents(ctx)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}
			store, err := a.factory.OpenStore(bcfg)
			if err != nil {
				return err
			}
			defer store.Close()
			log := a.logger.WithComponent(applog.ComponentStorage)
			if err := store.ReplaceIncidents(ctx, records); err != nil {
				log.ErrorContext(ctx, "Import failed",
					applog.NewFields().WithOperation(applog.OpImport).WithError(err).ToSlice()...)
				return fmt.Errorf("import: %w", err)
			}
			stored, err := store.Count(ctx)
			if err != nil {
				return err
			}

			log.InfoContext(ctx, "Import complete",
				applog.NewFields().
					WithOperation(applog.OpImport).
					WithDataset(bcfg.Type.String(), bcfg.SQLiteDBPath, stored).
					ToSlice()...)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s\n", stored, bcfg.SQLiteDBPath)
			return nil
		},
	}
}
