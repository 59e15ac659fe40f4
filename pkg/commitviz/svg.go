package commitviz

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/n3il-kb/portfolio/pkg/scale"
)

const (
	dotFill         = "steelblue"
	dotOpacity      = 0.7
	dotHoverOpacity = 1.0
	tickSize        = 6
	tickLabelOffset = 9
)

var svgTemplate = template.Must(template.New("scatter").Funcs(template.FuncMap{
	"num":     func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"opacity": dotStyleOpacity,
}).Parse(`<svg class="commit-scatter" viewBox="0 0 {{num .Width}} {{num .Height}}" style="overflow: visible" xmlns="http://www.w3.org/2000/svg">
<g class="gridlines" transform="translate({{num .Area.Min.X}}, 0)">{{range .YTicks}}
<line x1="0" x2="{{num $.Area.Width}}" y1="{{num .Pos}}" y2="{{num .Pos}}"></line>{{end}}
</g>
<g class="x-axis" transform="translate(0, {{num .Area.Max.Y}})">
<line x1="{{num .Area.Min.X}}" x2="{{num .Area.Max.X}}" y1="0" y2="0" stroke="currentColor"></line>{{range .XTicks}}
<g class="tick" transform="translate({{num .Pos}}, 0)"><line y2="{{$.TickSize}}" stroke="currentColor"></line><text y="{{$.LabelOffset}}" dy="0.71em" text-anchor="middle">{{.Label}}</text></g>{{end}}
</g>
<g class="y-axis" transform="translate({{num .Area.Min.X}}, 0)">
<line x1="0" x2="0" y1="{{num .Area.Min.Y}}" y2="{{num .Area.Max.Y}}" stroke="currentColor"></line>{{range .YTicks}}
<g class="tick" transform="translate(0, {{num .Pos}})"><line x2="-{{$.TickSize}}" stroke="currentColor"></line><text x="-{{$.LabelOffset}}" dy="0.32em" text-anchor="end">{{.Label}}</text></g>{{end}}
</g>
<g class="dots">{{range .Dots}}
<circle data-commit="{{.ID}}" cx="{{num .CX}}" cy="{{num .CY}}" r="{{num .R}}" fill="{{$.Fill}}" style="fill-opacity: {{opacity .}}"{{if .Selected}} class="selected"{{end}}><title>{{.ID}}: {{.Commit.TotalLines}} lines</title></circle>{{end}}
</g>{{with .Selection}}
<rect class="selection" x="{{num .Min.X}}" y="{{num .Min.Y}}" width="{{num .Width}}" height="{{num .Height}}"></rect>{{end}}
</svg>`))

type svgData struct {
	Width, Height float64
	Area          Rect
	XTicks        []scale.Tick
	YTicks        []scale.Tick
	Dots          []*Dot
	Selection     *Rect
	Fill          string
	TickSize      int
	LabelOffset   int
}

func dotStyleOpacity(d *Dot) string {
	if d.Highlighted {
		return fmt.Sprintf("%.1f", dotHoverOpacity)
	}

	return fmt.Sprintf("%.1f", dotOpacity)
}

// RenderSVG writes the scatter plot, with its axes, gridlines and brush
// rectangle, as an inline SVG element.
func (s *Store) RenderSVG(w io.Writer) error {
	if w == nil {
		return nil
	}

	sc := s.scatter
	layout := sc.Layout()

	data := svgData{
		Width:       layout.Width,
		Height:      layout.Height,
		Area:        layout.Usable(),
		XTicks:      sc.XTicks(),
		YTicks:      sc.YTicks(),
		Dots:        sc.Dots(),
		Selection:   s.selection,
		Fill:        dotFill,
		TickSize:    tickSize,
		LabelOffset: tickLabelOffset,
	}

	err := svgTemplate.Execute(w, data)
	if err != nil {
		return fmt.Errorf("render scatter svg: %w", err)
	}

	return nil
}

// SVG returns the scatter plot markup.
func (s *Store) SVG() (template.HTML, error) {
	var buf bytes.Buffer

	err := s.RenderSVG(&buf)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
