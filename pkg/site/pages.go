package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/ghstats"
	"github.com/n3il-kb/portfolio/pkg/plotpage"
	"github.com/n3il-kb/portfolio/pkg/projects"
)

const (
	unavailable  = "This section could not be loaded."
	noResume     = "Resume coming soon."
	contactTitle = "Contact"
)

// Shell carries what every page shares.
type Shell struct {
	SiteName string
	BasePath string
	Theme    plotpage.Theme
	Links    []Link
}

func (sh Shell) page(title, description, path string) (*plotpage.Page, error) {
	base := NormalizeBase(sh.BasePath)

	nav, err := Nav(sh.Links, base, base+path)
	if err != nil {
		return nil, err
	}

	page := plotpage.NewPage(title, description).WithTheme(sh.Theme).WithNav(nav)
	page.BasePath = base

	if sh.SiteName != "" {
		page.SiteName = sh.SiteName
	}

	return page, nil
}

// HomeInput is the data of the landing page.
type HomeInput struct {
	Latest      []projects.Project
	ProjectsErr error
	Cards       projects.CardOptions
	ShowStats   bool
	Stats       ghstats.Stats
	StatsErr    error
}

// HomePage lists the latest projects and the GitHub widget.
func HomePage(sh Shell, in HomeInput) (*plotpage.Page, error) {
	page, err := sh.page("Home", "", HomePath)
	if err != nil {
		return nil, err
	}

	var latest plotpage.Renderable = plotpage.NewText(unavailable)

	if in.ProjectsErr == nil {
		cards, cardsErr := projects.Cards(in.Latest, in.Cards)
		if cardsErr != nil {
			return nil, cardsErr
		}

		latest = plotpage.RawHTML(cards)
	}

	page.Add(plotpage.Section{ID: "latest-projects", Title: "Latest Projects", Chart: latest})

	if in.ShowStats {
		var buf bytes.Buffer

		err = ghstats.Render(&buf, in.Stats, in.StatsErr)
		if err != nil {
			return nil, err
		}

		page.Add(plotpage.Section{
			ID:    "profile-stats",
			Chart: plotpage.RawHTML(buf.String()), //nolint:gosec // produced by html/template
		})
	}

	return page, nil
}

// ProjectsPage renders the explorer's current state: cards, year pie and
// legend.
func ProjectsPage(sh Shell, ex *projects.Explorer, cards projects.CardOptions) (*plotpage.Page, error) {
	page, err := sh.page("Projects", "", ProjectsPath)
	if err != nil {
		return nil, err
	}

	if ex == nil {
		page.Add(plotpage.Section{ID: "projects", Title: "Projects", Chart: plotpage.NewText(unavailable)})

		return page, nil
	}

	pie, err := ex.PieSVG()
	if err != nil {
		return nil, err
	}

	list, err := projects.Cards(ex.Visible(), cards)
	if err != nil {
		return nil, err
	}

	page.Add(
		plotpage.Section{
			ID:       "projects-pie",
			Title:    "Projects per Year",
			Subtitle: queryLabel(ex.Query()),
			Chart: plotpage.Group{
				plotpage.RawHTML(pie),
				plotpage.WrapChart(plotpage.BuildYearPie(chartOpts(sh.Theme), ex.Slices())),
			},
		},
		plotpage.Section{
			ID:    "projects",
			Title: projects.CountTitle(len(ex.Visible())),
			Chart: plotpage.RawHTML(list),
		},
	)

	return page, nil
}

func queryLabel(q string) string {
	if q == "" {
		return ""
	}

	return "Matching " + strconv.Quote(q)
}

func chartOpts(theme plotpage.Theme) *plotpage.ChartOpts {
	return plotpage.NewChartOpts(theme)
}

// MetaPage renders the commit page at the store's current state.
func MetaPage(sh Shell, store *commitviz.Store, radius [2]float64) (*plotpage.Page, error) {
	page, err := sh.page("Meta", "Stats about this site's code", MetaPath)
	if err != nil {
		return nil, err
	}

	if store == nil {
		page.Add(plotpage.Section{ID: "stats", Title: "Summary", Chart: plotpage.NewText(unavailable)})

		return page, nil
	}

	summary := make(plotpage.Stats, 0, len(store.Summary()))
	for _, s := range store.Summary() {
		summary = append(summary, plotpage.Stat{Label: s.Label, Value: s.Display()})
	}

	svg, err := store.SVG()
	if err != nil {
		return nil, err
	}

	cOpts := chartOpts(sh.Theme)

	page.Add(
		plotpage.Section{ID: "stats", Title: "Summary", Chart: summary},
		plotpage.Section{
			ID:       "chart",
			Title:    "Commits by time of day",
			Subtitle: "Showing commits until " + store.TimeDisplay(),
			Hint: plotpage.Hint{
				Title: "Reading the plot",
				Items: []string{
					"Each dot is one commit; its area follows the lines it touched.",
					store.SelectionCount(),
				},
			},
			Chart: plotpage.Group{
				plotpage.RawHTML(svg),
				plotpage.WrapChart(plotpage.BuildCommitScatter(cOpts, store.Active(), radius)),
			},
		},
		plotpage.Section{
			ID:    "language-breakdown",
			Title: "Languages",
			Chart: plotpage.Group{
				languageTable(store.Languages()),
				plotpage.WrapChart(plotpage.BuildLanguageChart(cOpts, store.Languages())),
			},
		},
		plotpage.Section{ID: "files", Title: "Files", Chart: fileTable(store.Files())},
	)

	return page, nil
}

func languageTable(langs []commits.LanguageShare) *plotpage.Table {
	table := plotpage.NewTable("Type", "Lines", "Share")
	for _, l := range langs {
		table.AddRow(l.Type, strconv.Itoa(l.Count), l.Percent())
	}

	return table
}

func fileTable(files []*commitviz.FileRow) *plotpage.Table {
	table := plotpage.NewTable("File", "Lines")
	for _, f := range files {
		table.AddRow(f.Name, strconv.Itoa(len(f.Lines)))
	}

	return table
}

var contactTemplate = template.Must(template.New("contact").Parse(`<form action="{{.Action}}" method="get" enctype="text/plain">
  <label>Email <input type="email" name="email"></label>
  <label>Subject <input type="text" name="subject"></label>
  <label>Body <textarea name="body"></textarea></label>
  <button>Submit</button>
</form>
<script>
const form = document.querySelector("form");
form.addEventListener("submit", (event) => {
  event.preventDefault();
  const parts = [];
  for (const [name, value] of new FormData(form)) {
    parts.push(name + "=" + encodeURIComponent(value));
  }
  location.href = form.action + "?" + parts.join("&");
});
</script>`))

// ContactPage renders the mailto form.
func ContactPage(sh Shell, action string) (*plotpage.Page, error) {
	page, err := sh.page(contactTitle, "", ContactPath)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = contactTemplate.Execute(&buf, struct{ Action template.URL }{
		Action: template.URL(action), //nolint:gosec // configured mailto action
	})
	if err != nil {
		return nil, fmt.Errorf("render contact form: %w", err)
	}

	page.Add(plotpage.Section{ID: "contact", Chart: plotpage.RawHTML(buf.String())}) //nolint:gosec // produced by html/template

	return page, nil
}

// ResumePage renders the Markdown file at path. A missing file renders a
// placeholder.
func ResumePage(sh Shell, path string) (*plotpage.Page, error) {
	page, err := sh.page("Resume", "", ResumePath)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		page.Add(plotpage.Section{ID: "resume", Chart: plotpage.NewText(noResume)})

		return page, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}

	var buf bytes.Buffer

	err = goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert(source, &buf)
	if err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}

	page.Add(plotpage.Section{ID: "resume", Chart: plotpage.RawHTML(buf.String())}) //nolint:gosec // goldmark escapes raw HTML

	return page, nil
}
