// Package site assembles the portfolio pages: navigation, theme preference,
// contact form, asset copying and the static build.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

// Page paths relative to the base path.
const (
	HomePath     = ""
	ProjectsPath = "projects/"
	MetaPath     = "meta/"
	ContactPath  = "contact/"
	ResumePath   = "resume/"
)

// Link is one navigation entry. URL is either relative to the base path or
// absolute.
type Link struct {
	Title string
	URL   string
}

// DefaultLinks returns the site navigation in display order.
func DefaultLinks(githubURL string) []Link {
	return []Link{
		{Title: "Home", URL: HomePath},
		{Title: "Projects", URL: ProjectsPath},
		{Title: "Contact", URL: ContactPath},
		{Title: "Resume", URL: ResumePath},
		{Title: "Meta", URL: MetaPath},
		{Title: "GitHub", URL: githubURL},
	}
}

// NavItem is a resolved navigation link.
type NavItem struct {
	Title    string
	Href     string
	Current  bool
	External bool
}

// NormalizeBase returns base with exactly one leading and one trailing slash.
func NormalizeBase(base string) string {
	trimmed := strings.Trim(base, "/")
	if trimmed == "" {
		return "/"
	}

	return "/" + trimmed + "/"
}

// IsExternal reports whether u names another host.
func IsExternal(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}

	return parsed.Host != ""
}

// Resolve prefixes internal links with base and marks the link whose path
// equals current. External links are never current.
func Resolve(links []Link, base, current string) []NavItem {
	base = NormalizeBase(base)
	items := make([]NavItem, 0, len(links))

	for _, l := range links {
		item := NavItem{Title: l.Title, Href: l.URL, External: IsExternal(l.URL)}
		if !item.External {
			item.Href = base + strings.TrimPrefix(l.URL, "/")
			item.Current = item.Href == current
		}

		items = append(items, item)
	}

	return items
}

var navTemplate = template.Must(template.New("nav").Parse(`<nav>
{{- range .}}
<a href="{{.Href}}"{{if .Current}} class="current"{{end}}{{if .External}} target="_blank"{{end}}>{{.Title}}</a>
{{- end}}
</nav>`))

// Nav renders the navigation bar for the page at current.
func Nav(links []Link, base, current string) (template.HTML, error) {
	var buf bytes.Buffer

	err := navTemplate.Execute(&buf, Resolve(links, base, current))
	if err != nil {
		return "", fmt.Errorf("render nav: %w", err)
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
