package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "100%"
	gridSide    = "4%"
	gridTop     = "8%"
	gridBottom  = "14%"
	legendEdge  = "bottom"
	centerAlign = "center"
)

// ChartOpts colors the echarts fragments embedded in site pages. A nil
// *ChartOpts behaves like DefaultChartOpts.
type ChartOpts struct {
	colors ThemeConfig
}

// NewChartOpts returns chart options for theme.
func NewChartOpts(theme Theme) *ChartOpts {
	return &ChartOpts{colors: GetThemeConfig(theme)}
}

// DefaultChartOpts follows the visitor's system scheme.
func DefaultChartOpts() *ChartOpts {
	return NewChartOpts(ThemeAuto)
}

func (c *ChartOpts) orDefault() *ChartOpts {
	if c == nil {
		return DefaultChartOpts()
	}

	return c
}

// Init sizes a full-width chart of the given CSS height.
func (c *ChartOpts) Init(height string) opts.Initialization {
	return opts.Initialization{
		Width:           chartWidth,
		Height:          height,
		BackgroundColor: c.colors.ChartBackground,
		Theme:           c.colors.EChartsTheme,
	}
}

func (c *ChartOpts) label() *opts.AxisLabel {
	return &opts.AxisLabel{Color: c.colors.ChartTextMuted}
}

func (c *ChartOpts) line() *opts.AxisLine {
	return &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.colors.ChartAxis}}
}

// CategoryAxis is a horizontal axis of discrete labels.
func (c *ChartOpts) CategoryAxis() opts.XAxis {
	return opts.XAxis{Type: "category", AxisLabel: c.label(), AxisLine: c.line()}
}

// TimeAxis is a horizontal date axis.
func (c *ChartOpts) TimeAxis(name string) opts.XAxis {
	return opts.XAxis{Name: name, Type: "time", AxisLabel: c.label(), AxisLine: c.line()}
}

// ValueAxis is a vertical numeric axis with gridlines.
func (c *ChartOpts) ValueAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		Type:      "value",
		AxisLabel: c.label(),
		AxisLine:  c.line(),
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.colors.ChartGrid},
		},
	}
}

// Legend sits centered under the chart.
func (c *ChartOpts) Legend() opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(true),
		Top:       legendEdge,
		Left:      centerAlign,
		TextStyle: &opts.TextStyle{Color: c.colors.ChartTextMuted},
	}
}

// Grid leaves room for axis labels and the legend.
func (c *ChartOpts) Grid() opts.Grid {
	return opts.Grid{Top: gridTop, Bottom: gridBottom, Left: gridSide, Right: gridSide, ContainLabel: opts.Bool(true)}
}

// Tooltip shows on hover of a single item, or of a whole axis column.
func (c *ChartOpts) Tooltip(perItem bool) opts.Tooltip {
	trigger := "axis"
	if perItem {
		trigger = "item"
	}

	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

// WedgeLabel labels pie wedges with their name and count.
func (c *ChartOpts) WedgeLabel() opts.Label {
	return opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}", Color: c.colors.ChartTextMuted}
}
