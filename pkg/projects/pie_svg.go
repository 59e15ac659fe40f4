package projects

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

var pieTemplate = template.Must(template.New("pie").Parse(`<svg id="projects-pie-plot" viewBox="-{{.R}} -{{.R}} {{.D}} {{.D}}" xmlns="http://www.w3.org/2000/svg">
{{- range .Wedges}}
<path d="{{.Path}}" fill="{{.Color}}" data-year="{{.Label}}"{{if .Selected}} class="selected"{{end}}><title>{{.Label}} ({{.Value}})</title></path>
{{- end}}
</svg>
<ul class="legend">
{{- range .Wedges}}
<li style="--color:{{.Color}}"{{if .Selected}} class="selected"{{end}}><span class="swatch"></span> {{.Label}} <em>({{.Value}})</em></li>
{{- end}}
</ul>`))

type wedge struct {
	Slice
	Path     string
	Selected bool
}

// RenderPie writes the pie and its legend at the explorer's current state.
// A nil writer is a no-op.
func (e *Explorer) RenderPie(w io.Writer) error {
	if w == nil {
		return nil
	}

	selected := e.SelectedIndex()

	wedges := make([]wedge, 0, len(e.pie))
	for i, s := range e.pie {
		wedges = append(wedges, wedge{Slice: s, Path: s.ArcPath(DefaultPieRadius), Selected: i == selected})
	}

	err := pieTemplate.Execute(w, struct {
		R, D   int
		Wedges []wedge
	}{R: DefaultPieRadius, D: 2 * DefaultPieRadius, Wedges: wedges})
	if err != nil {
		return fmt.Errorf("render pie: %w", err)
	}

	return nil
}

// PieSVG returns the pie and legend markup.
func (e *Explorer) PieSVG() (template.HTML, error) {
	var buf bytes.Buffer

	err := e.RenderPie(&buf)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
