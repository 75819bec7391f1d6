// Package chart renders monthly series as self-contained HTML pages.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wolfstats/internal/core"
)

type (
	Kind   string
	Metric string
)

const (
	Line    Kind = "line"
	Grouped Kind = "grouped"
	Stacked Kind = "stacked"

	// Attacks counts records with at least one victim of the gender.
	Attacks Metric = "attacks"
	// Victims sums the victims themselves.
	Victims Metric = "victims"
)

var ErrInvalidSpec = errors.New("invalid chart spec")

// Colors per series. Male and Female keep the classic blue/orange palette.
var Colors = map[core.Gender]string{
	core.Male:    "#1e78b4",
	core.Female:  "#ff7f0f",
	core.Unknown: "#2ca02c",
	core.All:     "#7f7f7f",
}

// Spec describes one chart. Zero fields take the defaults of the kind.
type Spec struct {
	Kind    Kind          `yaml:"kind"`
	Metric  Metric        `yaml:"metric"`
	Genders []core.Gender `yaml:"genders"`
	Title   string        `yaml:"title"`
	File    string        `yaml:"file"`
}

var titleCase = cases.Title(language.English)

// Label is the display form of a gender.
func Label(g core.Gender) string {
	return titleCase.String(g.String())
}

// Normalize fills defaults and checks the combination.
func (s Spec) Normalize() (Spec, error) {
	if s.Metric == "" {
		s.Metric = Attacks
	}
	if s.Metric != Attacks && s.Metric != Victims {
		return s, fmt.Errorf("%w: unknown metric %q", ErrInvalidSpec, s.Metric)
	}
	if len(s.Genders) == 0 {
		switch s.Kind {
		case Line:
			s.Genders = []core.Gender{core.All, core.Female, core.Male}
		case Grouped:
			s.Genders = []core.Gender{core.Male, core.Female}
		case Stacked:
			s.Genders = []core.Gender{core.Male, core.Female, core.Unknown}
		}
	}
	switch s.Kind {
	case Line, Grouped:
	case Stacked:
		for _, g := range s.Genders {
			if g == core.All {
				return s, fmt.Errorf("%w: stacked chart cannot include %q", ErrInvalidSpec, core.All)
			}
		}
	default:
		return s, fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, s.Kind)
	}
	for _, g := range s.Genders {
		if _, err := core.ParseGender(g.String()); err != nil {
			return s, fmt.Errorf("%w: %w %q", ErrInvalidSpec, err, g)
		}
	}
	if s.Title == "" {
		s.Title = defaultTitle(s)
	}
	if s.File == "" {
		s.File = fmt.Sprintf("%s_%s.html", s.Kind, s.Metric)
	}
	return s, nil
}

func defaultTitle(s Spec) string {
	noun := "Attacks"
	if s.Metric == Victims {
		noun = "Victims"
	}
	switch {
	case s.Kind == Line && len(s.Genders) == 1:
		return fmt.Sprintf("Number of %s Wolf %s by Month", Label(s.Genders[0]), noun)
	case s.Kind == Line:
		return fmt.Sprintf("Number of Wolf %s by Month", noun)
	case s.Kind == Stacked:
		return fmt.Sprintf("Wolf %s by Month, All Genders", noun)
	}
	return fmt.Sprintf("Wolf %s by Month and Gender", noun)
}

func yAxisName(m Metric) string {
	if m == Victims {
		return "Number of Victims"
	}
	return "Number of Attacks"
}

// Render writes the chart for points as an HTML page. Points missing for a
// month and gender plot as zero.
func Render(w io.Writer, spec Spec, points []core.SeriesPoint) error {
	spec, err := spec.Normalize()
	if err != nil {
		return err
	}
	values := pivot(points)

	months := make([]string, len(core.Months))
	for i, m := range core.Months {
		months[i] = m.String()
	}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{PageTitle: spec.Title, Width: "1000px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName(spec.Metric)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	}

	if spec.Kind == Line {
		line := charts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(months)
		for _, g := range spec.Genders {
			data := make([]opts.LineData, len(core.Months))
			for i, m := range core.Months {
				data[i] = opts.LineData{Value: values[m.String()][g.String()]}
			}
			line.AddSeries(Label(g), data,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: Colors[g]}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: Colors[g]}))
		}
		return line.Render(w)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)
	bar.SetXAxis(months)
	for _, g := range spec.Genders {
		data := make([]opts.BarData, len(core.Months))
		for i, m := range core.Months {
			data[i] = opts.BarData{Value: values[m.String()][g.String()]}
		}
		position := "top"
		if spec.Kind == Stacked {
			position = "inside"
		}
		bar.AddSeries(Label(g), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: Colors[g]}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: position, Color: "black"}))
	}
	if spec.Kind == Stacked {
		bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	}
	return bar.Render(w)
}

// WriteFile renders into dir/spec.File and returns the path written.
func WriteFile(dir string, spec Spec, points []core.SeriesPoint) (string, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}
	path := filepath.Join(dir, spec.File)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	if err := Render(f, spec, points); err != nil {
		f.Close()
		return "", fmt.Errorf("render %s: %w", spec.File, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close chart file: %w", err)
	}
	return path, nil
}

func pivot(points []core.SeriesPoint) map[string]map[string]int {
	out := make(map[string]map[string]int, len(core.Months))
	for _, p := range points {
		if out[p.Month] == nil {
			out[p.Month] = map[string]int{}
		}
		out[p.Month][p.Gender] += p.AttackCount
	}
	return out
}
