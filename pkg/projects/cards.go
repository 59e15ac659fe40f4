package projects

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultHeading is used for any heading level outside h1..h6.
const DefaultHeading = "h2"

var headings = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

const noProjects = `<p>No projects found.</p>`

var cardsTemplate = template.Must(template.New("cards").Parse(`{{range .}}<article>
  <div class="project-card">
    {{.Open}}{{.Title}}{{.Close}}
    {{- if .Year}}
    <p class="project-year">Year: {{.Year}}</p>
    {{- end}}
    <img src="{{.Image}}" alt="{{.Title}}">
    {{if .Rich}}<div class="project-description">{{.Rich}}</div>{{else}}<p>{{.Description}}</p>{{end}}
  </div>
</article>
{{end}}`))

// CardOptions control card rendering.
type CardOptions struct {
	// Heading is the title element, h1..h6.
	Heading string
	// Markdown renders descriptions as Markdown.
	Markdown bool
}

type card struct {
	Open, Close template.HTML
	Title       string
	Year        Year
	Image       string
	Description string
	Rich        template.HTML
}

// Heading normalizes a heading level to h1..h6.
func Heading(level string) string {
	if headings[level] {
		return level
	}

	return DefaultHeading
}

// CountTitle returns the "N Projects" heading text.
func CountTitle(n int) string {
	return strconv.Itoa(n) + " Projects"
}

// RenderCards writes one article per project, or the empty-list message. A nil
// writer is a no-op.
func RenderCards(w io.Writer, ps []Project, opts CardOptions) error {
	if w == nil {
		return nil
	}

	if len(ps) == 0 {
		_, err := io.WriteString(w, noProjects)
		if err != nil {
			return fmt.Errorf("render cards: %w", err)
		}

		return nil
	}

	level := Heading(opts.Heading)

	var md goldmark.Markdown
	if opts.Markdown {
		md = goldmark.New(goldmark.WithExtensions(extension.GFM))
	}

	cards := make([]card, 0, len(ps))

	for _, p := range ps {
		c := card{
			Open:        template.HTML("<" + level + ">"),  //nolint:gosec // level is one of h1..h6
			Close:       template.HTML("</" + level + ">"), //nolint:gosec // level is one of h1..h6
			Title:       p.DisplayTitle(),
			Year:        p.Year,
			Image:       p.DisplayImage(),
			Description: p.DisplayDescription(),
		}

		if md != nil {
			var buf bytes.Buffer

			err := md.Convert([]byte(c.Description), &buf)
			if err != nil {
				return fmt.Errorf("render description of %q: %w", c.Title, err)
			}

			c.Rich = template.HTML(buf.String()) //nolint:gosec // goldmark escapes raw HTML by default
		}

		cards = append(cards, c)
	}

	err := cardsTemplate.Execute(w, cards)
	if err != nil {
		return fmt.Errorf("render cards: %w", err)
	}

	return nil
}

// Cards renders the cards to a string for embedding in a page.
func Cards(ps []Project, opts CardOptions) (template.HTML, error) {
	var buf bytes.Buffer

	err := RenderCards(&buf, ps, opts)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
