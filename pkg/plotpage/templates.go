package plotpage

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates are named after their files, e.g. "section.html".
var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

func execute(w io.Writer, name string, data any) error {
	err := templates.ExecuteTemplate(w, name, data)
	if err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}

	return nil
}

// markup renders a component into trusted HTML for embedding in a template.
func markup(r Renderable) (template.HTML, error) {
	if r == nil {
		return "", nil
	}

	var buf bytes.Buffer

	err := r.Render(&buf)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // component output is already escaped
}

type pageData struct {
	Title       string
	Description string
	SiteName    string
	BasePath    string
	ColorScheme Theme
	Schemes     []SchemeOption
	ThemeCSS    template.CSS
	ExtraCSS    template.CSS
	Nav         template.HTML
	Sections    []sectionData
}

type sectionData struct {
	ID       string
	Title    string
	Subtitle string
	Body     template.HTML
	Hint     *Hint
}

type cardData struct {
	Title    string
	Subtitle string
	Content  template.HTML
}
