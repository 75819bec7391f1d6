package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"wolfstats/internal/chart"
	"wolfstats/internal/core"
)

// WriteSummary prints the monthly table for metric, January first.
func WriteSummary(w io.Writer, metric chart.Metric, agg core.MonthlyAggregate, attacks core.MonthlyAttacks) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	last := "TOTAL"
	title := "Victims by month"
	if metric == chart.Attacks {
		last = "ALL"
		title = "Attacks by month"
	}
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(tw, "MONTH\tMALE\tFEMALE\tUNKNOWN\t%s\t\n", last)

	var sum [4]int
	for _, m := range core.Months {
		var row [4]int
		if metric == chart.Attacks {
			row = [4]int{attacks.Get(m, core.Male), attacks.Get(m, core.Female), attacks.Get(m, core.Unknown), attacks.Get(m, core.All)}
		} else {
			c := agg.Get(m)
			row = [4]int{c.Male, c.Female, c.Unknown, c.Total()}
		}
		for i := range sum {
			sum[i] += row[i]
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", m, row[0], row[1], row[2], row[3])
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%d\t%d\t\n", sum[0], sum[1], sum[2], sum[3])
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d records without a month were left out\n", agg.Excluded)
	return err
}

// WriteRecords lists augmented records under a heading.
func WriteRecords(w io.Writer, title string, records []core.AugmentedRecord) error {
	fmt.Fprintf(w, "%s: %d\n", title, len(records))
	if len(records) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tMONTH\tMALE\tFEMALE\tUNKNOWN\tDATE\tVICTIMS")
	for _, r := range records {
		month := "-"
		if r.HasMonth {
			month = r.Month.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.Row, month, r.Counts.Male, r.Counts.Female, r.Counts.Unknown,
			oneLine(r.Date), oneLine(r.Victims))
	}
	return tw.Flush()
}

func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 60 {
		return string(r[:57]) + "..."
	}
	return s
}
