package report

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wolfstats/internal/aggregate"
	"wolfstats/internal/chart"
	"wolfstats/internal/core"
)

var ErrInvalidPlan = errors.New("invalid report plan")

// Plan lists what one report run produces. Omitted sections take the
// defaults of DefaultPlan; an explicit empty list (charts: []) disables them.
type Plan struct {
	Charts  []chart.Spec `yaml:"charts"`
	Summary SummaryPlan  `yaml:"summary"`
	Filters []FilterPlan `yaml:"filters"`
	Publish PublishPlan  `yaml:"publish"`
}

type SummaryPlan struct {
	Disabled bool         `yaml:"disabled"`
	Metric   chart.Metric `yaml:"metric"`
}

// FilterPlan selects records to list. All set conditions must hold.
type FilterPlan struct {
	Name    string      `yaml:"name"`
	Month   string      `yaml:"month"`
	Gender  core.Gender `yaml:"gender"`
	NoMonth bool        `yaml:"no_month"`
}

// PublishPlan shapes the series sent to the optional AMQP sink.
type PublishPlan struct {
	Metric  chart.Metric  `yaml:"metric"`
	Genders []core.Gender `yaml:"genders"`
}

// DefaultPlan renders the male/female grouped attack chart and prints the
// monthly victim summary.
func DefaultPlan() Plan {
	return Plan{
		Charts: []chart.Spec{{
			Kind:    chart.Grouped,
			Metric:  chart.Attacks,
			Genders: []core.Gender{core.Male, core.Female},
		}},
		Summary: SummaryPlan{Metric: chart.Victims},
		Publish: PublishPlan{
			Metric:  chart.Attacks,
			Genders: []core.Gender{core.Male, core.Female, core.Unknown, core.All},
		},
	}
}

// LoadPlan reads a YAML plan from path. An empty path yields DefaultPlan.
func LoadPlan(path string) (Plan, error) {
	if path == "" {
		return DefaultPlan(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(b)
}

// ParsePlan decodes and validates a YAML plan.
func ParsePlan(b []byte) (Plan, error) {
	p := DefaultPlan()
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Plan{}, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if p.Summary.Metric == "" {
		p.Summary.Metric = chart.Victims
	}
	if p.Publish.Metric == "" {
		p.Publish.Metric = chart.Attacks
	}
	if len(p.Publish.Genders) == 0 {
		p.Publish.Genders = DefaultPlan().Publish.Genders
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Validate normalizes each chart and checks every filter.
func (p *Plan) Validate() error {
	var errs []error
	files := map[string]int{}
	for i, c := range p.Charts {
		n, err := c.Normalize()
		if err != nil {
			errs = append(errs, fmt.Errorf("chart %d: %w", i+1, err))
			continue
		}
		if prev, dup := files[n.File]; dup {
			errs = append(errs, fmt.Errorf("chart %d: file %q already used by chart %d", i+1, n.File, prev))
		}
		files[n.File] = i + 1
		p.Charts[i] = n
	}
	for _, m := range []chart.Metric{p.Summary.Metric, p.Publish.Metric} {
		if m != chart.Attacks && m != chart.Victims {
			errs = append(errs, fmt.Errorf("unknown metric %q", m))
		}
	}
	for _, g := range p.Publish.Genders {
		if _, err := core.ParseGender(g.String()); err != nil {
			errs = append(errs, fmt.Errorf("publish: %w %q", err, g))
		}
	}
	for i, f := range p.Filters {
		if _, err := f.Predicates(); err != nil {
			errs = append(errs, fmt.Errorf("filter %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, errors.Join(errs...))
	}
	return nil
}

// Predicates converts the filter into aggregate predicates.
func (f FilterPlan) Predicates() ([]aggregate.Predicate, error) {
	var preds []aggregate.Predicate
	if f.Month != "" {
		if f.NoMonth {
			return nil, errors.New("month and no_month are exclusive")
		}
		m, ok := core.ParseMonth(f.Month)
		if !ok {
			return nil, fmt.Errorf("unknown month %q", f.Month)
		}
		preds = append(preds, aggregate.InMonth(m))
	}
	if f.NoMonth {
		preds = append(preds, aggregate.WithoutMonth())
	}
	if f.Gender != "" {
		g, err := core.ParseGender(f.Gender.String())
		if err != nil {
			return nil, fmt.Errorf("%w %q", err, f.Gender)
		}
		preds = append(preds, aggregate.WithGender(g))
	}
	return preds, nil
}

// Title names the filter for listings.
func (f FilterPlan) Title() string {
	if f.Name != "" {
		return f.Name
	}
	desc := "all records"
	if f.Month != "" {
		if m, ok := core.ParseMonth(f.Month); ok {
			desc = "records in " + m.String()
		}
	}
	if f.NoMonth {
		desc = "records without a month"
	}
	if f.Gender != "" {
		desc += " with " + string(f.Gender) + " victims"
	}
	return desc
}
