// Package plotpage renders the site's HTML pages: a themed shell around
// sections holding go-echarts charts, inline SVG and small components.
package plotpage

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

const (
	defaultSiteName = "Portfolio"
	defaultBasePath = "/"

	echartsContainer = `<div class="container">`
	echartsBox       = `<div class="echart-box">`
)

// Hint is the reading guide shown under a section.
type Hint struct {
	Title string
	Items []string
}

// Section is one block of a page.
type Section struct {
	ID       string
	Title    string
	Subtitle string
	Hint     Hint
	Chart    Renderable
}

// Page is a complete site page.
type Page struct {
	Title       string
	Description string
	SiteName    string
	BasePath    string
	Theme       Theme
	Nav         template.HTML
	Sections    []Section
}

// NewPage creates a page with the automatic color scheme under "/".
func NewPage(title, description string) *Page {
	return &Page{
		Title:       title,
		Description: description,
		SiteName:    defaultSiteName,
		BasePath:    defaultBasePath,
		Theme:       ThemeAuto,
	}
}

// WithTheme sets the color scheme.
func (p *Page) WithTheme(theme Theme) *Page {
	p.Theme = theme

	return p
}

// WithNav sets the pre-rendered navigation bar.
func (p *Page) WithNav(nav template.HTML) *Page {
	p.Nav = nav

	return p
}

// Add appends sections.
func (p *Page) Add(sections ...Section) {
	p.Sections = append(p.Sections, sections...)
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	return HTMLRenderer{}.Render(w, p)
}

// Renderable is anything that writes an HTML fragment.
type Renderable interface {
	Render(w io.Writer) error
}

// HTMLRenderer renders pages, optionally with extra page-level CSS.
type HTMLRenderer struct {
	ExtraCSS string
}

// Render writes page to w. A nil writer is a no-op.
func (r HTMLRenderer) Render(w io.Writer, page *Page) error {
	if w == nil {
		return nil
	}

	sections := make([]sectionData, 0, len(page.Sections))

	for _, s := range page.Sections {
		body, err := markup(WrapChart(s.Chart))
		if err != nil {
			return fmt.Errorf("render section %q: %w", s.Title, err)
		}

		sd := sectionData{ID: s.ID, Title: s.Title, Subtitle: s.Subtitle, Body: body}
		if len(s.Hint.Items) > 0 {
			hint := s.Hint
			sd.Hint = &hint
		}

		sections = append(sections, sd)
	}

	return execute(w, "page.html", pageData{
		Title:       page.Title,
		Description: page.Description,
		SiteName:    page.SiteName,
		BasePath:    page.BasePath,
		ColorScheme: page.Theme,
		Schemes:     schemeOptions(page.Theme),
		ThemeCSS:    themeCSS(page.Theme),
		ExtraCSS:    template.CSS(r.ExtraCSS), //nolint:gosec // caller-supplied stylesheet
		Nav:         page.Nav,
		Sections:    sections,
	})
}

// ChartWrapper embeds a chart in a page. Standalone go-echarts documents are
// cut down to their container and script; fragments pass through.
type ChartWrapper struct {
	chart Renderable
}

// WrapChart wraps chart for embedding. A nil chart renders nothing.
func WrapChart(chart Renderable) *ChartWrapper {
	return &ChartWrapper{chart: chart}
}

// Render writes the embeddable chart markup.
func (cw *ChartWrapper) Render(w io.Writer) error {
	if cw.chart == nil {
		return nil
	}

	var doc strings.Builder

	err := cw.chart.Render(&doc)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	_, err = io.WriteString(w, chartBody(doc.String()))
	if err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	return nil
}

func chartBody(doc string) string {
	head := strings.TrimSpace(doc)
	if !strings.HasPrefix(head, "<!DOCTYPE") && !strings.HasPrefix(head, "<html") {
		return doc
	}

	_, rest, ok := strings.Cut(doc, echartsContainer)
	if !ok {
		return doc
	}

	body, _, ok := strings.Cut(rest, "</body>")
	if !ok {
		return doc
	}

	return echartsBox + stripStyles(body)
}

// stripStyles drops inline <style> blocks; the page stylesheet owns layout.
func stripStyles(s string) string {
	var out strings.Builder

	for {
		before, after, found := strings.Cut(s, "<style>")
		if !found {
			out.WriteString(s)

			return out.String()
		}

		out.WriteString(before)

		_, tail, closed := strings.Cut(after, "</style>")
		if !closed {
			return out.String()
		}

		s = tail
	}
}
