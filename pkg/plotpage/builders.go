package plotpage

import (
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/projects"
	"github.com/n3il-kb/portfolio/pkg/scale"
)

const (
	barHeight     = "360px"
	scatterHeight = "500px"
	pieHeight     = "400px"
	pieRadius     = "65%"
	hoursPerDay   = 24
	percent       = 100
	scatterColor  = "steelblue"
	scatterFill   = "rgba(70, 130, 180, 0.7)"
	noYearLabel   = "Unknown"
)

// SeriesData is one value of a chart series.
type SeriesData any

// BarSeries is one named series of a bar chart. An empty Color uses the theme.
type BarSeries struct {
	Name  string
	Data  []SeriesData
	Color string
}

// BuildBarChart charts series over the category labels.
func BuildBarChart(cOpts *ChartOpts, labels []string, series []BarSeries, yAxisLabel string) *charts.Bar {
	cOpts = cOpts.orDefault()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(barHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip(false)),
		charts.WithXAxisOpts(cOpts.CategoryAxis()),
		charts.WithYAxisOpts(cOpts.ValueAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
		charts.WithGridOpts(cOpts.Grid()),
	)
	bar.SetXAxis(labels)

	for _, s := range series {
		values := make([]opts.BarData, 0, len(s.Data))
		for _, v := range s.Data {
			values = append(values, opts.BarData{Value: v})
		}

		if s.Color == "" {
			bar.AddSeries(s.Name, values)

			continue
		}

		bar.AddSeries(s.Name, values, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}

	return bar
}

// BuildLanguageChart charts each type tag's share of lines in percent, one
// decimal place.
func BuildLanguageChart(cOpts *ChartOpts, langs []commits.LanguageShare) *charts.Bar {
	labels := make([]string, 0, len(langs))
	shares := make([]SeriesData, 0, len(langs))

	for _, l := range langs {
		labels = append(labels, l.Type)
		shares = append(shares, roundTo(l.Proportion*percent, 1))
	}

	return BuildBarChart(cOpts, labels, []BarSeries{{Name: "Share of lines (%)", Data: shares, Color: scatterColor}}, "%")
}

// BuildCommitScatter plots commits by datetime against hour of day. Symbol
// diameters follow a square-root scale of total lines onto radius.
func BuildCommitScatter(cOpts *ChartOpts, cs []*commits.Commit, radius [2]float64) *charts.Scatter {
	cOpts = cOpts.orDefault()

	hours := cOpts.ValueAxis("Hour")
	hours.Min = 0
	hours.Max = hoursPerDay

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(scatterHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip(true)),
		charts.WithXAxisOpts(cOpts.TimeAxis("Date")),
		charts.WithYAxisOpts(hours),
		charts.WithGridOpts(cOpts.Grid()),
	)

	lo, hi, _ := scale.Extent(cs, func(c *commits.Commit) float64 { return float64(c.TotalLines) })
	r := scale.NewSqrt([2]float64{lo, hi}, radius)

	points := make([]opts.ScatterData, len(cs))
	for i, c := range cs {
		points[i] = opts.ScatterData{
			Name:       c.ID,
			Value:      []any{c.Datetime.Format(time.RFC3339), roundTo(c.HourFrac, 2), c.TotalLines},
			SymbolSize: int(math.Round(2 * r.Map(float64(c.TotalLines)))),
		}
	}

	scatter.AddSeries("Commits", points, charts.WithItemStyleOpts(opts.ItemStyle{Color: scatterFill}))

	return scatter
}

// BuildYearPie charts one wedge per year in the inline pie's colors.
func BuildYearPie(cOpts *ChartOpts, slices []projects.Slice) *charts.Pie {
	cOpts = cOpts.orDefault()

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(pieHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip(true)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	wedges := make([]opts.PieData, len(slices))
	for i, s := range slices {
		name := string(s.Label)
		if name == "" {
			name = noYearLabel
		}

		wedges[i] = opts.PieData{Name: name, Value: s.Value, ItemStyle: &opts.ItemStyle{Color: s.Color}}
	}

	pie.AddSeries("Projects", wedges).SetSeriesOptions(
		charts.WithLabelOpts(cOpts.WedgeLabel()),
		charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}),
	)

	return pie
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)

	return math.Round(v*p) / p
}
