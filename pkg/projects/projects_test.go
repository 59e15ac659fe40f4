package projects_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n3il-kb/portfolio/pkg/projects"
)

const alphaBeta = `[{"title":"Alpha","year":2020},{"title":"Beta","year":"2021"}]`

func mustParse(t *testing.T, doc string) []projects.Project {
	t.Helper()

	list, err := projects.Parse([]byte(doc))
	require.NoError(t, err)

	return list
}

func titles(ps []projects.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}

	return out
}

func TestParse_YearAcceptsStringOrInteger(t *testing.T) {
	t.Parallel()

	list := mustParse(t, alphaBeta)

	require.Len(t, list, 2)
	assert.Equal(t, projects.Year("2020"), list[0].Year)
	assert.Equal(t, projects.Year("2021"), list[1].Year)
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not an array", doc: `{"title":"Alpha"}`},
		{name: "title number", doc: `[{"title":3}]`},
		{name: "year bool", doc: `[{"year":true}]`},
		{name: "not json", doc: `[{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := projects.Parse([]byte(tt.doc))
			require.ErrorIs(t, err, projects.ErrInvalidList)
		})
	}
}

func TestProject_Fallbacks(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{}]`)
	p := list[0]

	assert.Equal(t, projects.UntitledProject, p.DisplayTitle())
	assert.Equal(t, projects.NoDescription, p.DisplayDescription())
	assert.Equal(t, projects.PlaceholderImage, p.DisplayImage())
	assert.Empty(t, p.Year)
}

func TestProject_SearchTextCoversExtraFields(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{"title":"Alpha","tags":["Go","D3"],"stars":12,"link":null}]`)
	text := list[0].SearchText()

	assert.Contains(t, text, "alpha")
	assert.Contains(t, text, "go,d3")
	assert.Contains(t, text, "12")
	assert.Equal(t, "go,d3", strings.ToLower(list[0].Field("tags")))
	assert.Empty(t, list[0].Field("missing"))
}

func TestProject_SearchTextForLiteral(t *testing.T) {
	t.Parallel()

	p := projects.Project{Title: "Gamma", Year: "2019"}

	assert.Equal(t, "gamma\n2019", p.SearchText())
}

func TestProject_SearchTextFollowsDocumentOrder(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{"year":2020,"title":"Alpha","description":"Charts"}]`)

	assert.Equal(t, "2020\nalpha\ncharts", list[0].SearchText())
	assert.Equal(t, []string{"Alpha"}, titles(projects.Search(list, "0\nal")))
	assert.Empty(t, projects.Search(list, "charts\n2020"))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	list := mustParse(t, alphaBeta)

	assert.Equal(t, []string{"Alpha"}, titles(projects.Search(list, "ALPHA")))
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(projects.Search(list, "")))
	assert.Equal(t, []string{"Beta"}, titles(projects.Search(list, "2021")))
	assert.Empty(t, projects.Search(list, "zeta"))
}

func TestLatest(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"}]`)

	assert.Equal(t, []string{"a", "b", "c"}, titles(projects.Latest(list, 3)))
	assert.Len(t, projects.Latest(list[:2], 3), 2)
	assert.Empty(t, projects.Latest(list, -1))
}

func TestPie_GroupsByYearInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{"year":2020},{"year":2021},{"year":2021},{"year":2022},{"year":2021}]`)
	pie := projects.Pie(list)

	require.Len(t, pie, 3)
	assert.Equal(t, projects.Year("2020"), pie[0].Label)
	assert.Equal(t, 3, pie[1].Value)
	assert.Equal(t, "#4e79a7", pie[0].Color)
	assert.Equal(t, "#f28e2c", pie[1].Color)

	// The largest wedge starts at 12 o'clock; ties keep input order.
	assert.InDelta(t, 0, pie[1].StartAngle, 1e-12)
	assert.InDelta(t, pie[1].EndAngle, pie[0].StartAngle, 1e-12)
	assert.InDelta(t, pie[0].EndAngle, pie[2].StartAngle, 1e-12)
	assert.InDelta(t, 2*math.Pi, pie[2].EndAngle, 1e-12)
	assert.InDelta(t, 0.6, pie[1].Share(), 1e-12)
}

func TestSlice_ArcPath(t *testing.T) {
	t.Parallel()

	half := projects.Slice{StartAngle: 0, EndAngle: math.Pi}
	assert.Equal(t, "M0.000,-50.000 A50.000,50.000,0,0,1,0.000,50.000 L0,0Z", half.ArcPath(50))

	full := projects.Slice{StartAngle: 0, EndAngle: 2 * math.Pi}
	assert.Equal(t, 2, strings.Count(full.ArcPath(50), "A50.000"))

	assert.Empty(t, projects.Slice{}.ArcPath(50))
}

func TestExplorer_SearchExample(t *testing.T) {
	t.Parallel()

	e := projects.NewExplorer(mustParse(t, alphaBeta))
	require.Len(t, e.Slices(), 2)

	e.SetQuery("alpha")

	assert.Equal(t, []string{"Alpha"}, titles(e.Visible()))
	require.Len(t, e.Slices(), 1)
	assert.Equal(t, projects.Year("2020"), e.Slices()[0].Label)
	assert.Equal(t, []string{"2020 (1)"}, e.Legend())
}

func TestExplorer_QueryAndYearCompose(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[
		{"title":"Alpha","year":2020},
		{"title":"Alpine","year":2021},
		{"title":"Beta","year":2021}
	]`)
	e := projects.NewExplorer(list)

	e.ToggleYear("2021")
	assert.Equal(t, []string{"Alpine", "Beta"}, titles(e.Visible()))
	assert.Equal(t, 1, e.SelectedIndex())

	e.SetQuery("alp")
	assert.Equal(t, []string{"Alpine"}, titles(e.Visible()))
	assert.Len(t, e.Slices(), 2, "pie follows the query matches only")

	y, ok := e.SelectedYear()
	assert.True(t, ok)
	assert.Equal(t, projects.Year("2021"), y)

	e.ToggleYear("2021")
	assert.Equal(t, []string{"Alpha", "Alpine"}, titles(e.Visible()))
	assert.Equal(t, -1, e.SelectedIndex())
}

func TestExplorer_QueryClearsVanishedYear(t *testing.T) {
	t.Parallel()

	e := projects.NewExplorer(mustParse(t, alphaBeta))

	e.ToggleSlice(1)
	require.Equal(t, []string{"Beta"}, titles(e.Visible()))

	e.SetQuery("alpha")

	_, ok := e.SelectedYear()
	assert.False(t, ok)
	assert.Equal(t, []string{"Alpha"}, titles(e.Visible()))

	e.SetQuery("")
	assert.Len(t, e.Visible(), 2)
}

func TestExplorer_IgnoresUnknownYearAndNotifies(t *testing.T) {
	t.Parallel()

	e := projects.NewExplorer(mustParse(t, alphaBeta))

	calls := 0
	e.OnChange(func(*projects.Explorer) { calls++ })

	e.ToggleYear("1999")
	e.ToggleSlice(7)
	e.ClearYear()
	assert.Equal(t, 0, calls)

	e.ToggleYear("2020")
	e.SetQuery("a")
	e.ClearYear()
	assert.Equal(t, 3, calls)
}

func TestExplorer_RenderPie(t *testing.T) {
	t.Parallel()

	e := projects.NewExplorer(mustParse(t, alphaBeta))
	e.ToggleYear("2021")

	out, err := e.PieSVG()
	require.NoError(t, err)

	html := string(out)
	assert.Equal(t, 2, strings.Count(html, "<path"))
	assert.Equal(t, 2, strings.Count(html, "<li"))
	assert.Equal(t, 2, strings.Count(html, `class="selected"`))
	assert.Contains(t, html, `fill="#f28e2c"`)
	assert.Contains(t, html, "2020 <em>(1)</em>")

	require.NoError(t, e.RenderPie(nil))
}

func TestRenderCards(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{"title":"Alpha","year":2020,"image":"a.png","description":"Uses **D3**"},{}]`)

	var buf strings.Builder
	require.NoError(t, projects.RenderCards(&buf, list, projects.CardOptions{Heading: "h3"}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<article>"))
	assert.Contains(t, out, "<h3>Alpha</h3>")
	assert.Contains(t, out, `<p class="project-year">Year: 2020</p>`)
	assert.Equal(t, 1, strings.Count(out, "project-year"))
	assert.Contains(t, out, `<img src="a.png" alt="Alpha">`)
	assert.Contains(t, out, "<p>Uses **D3**</p>")
	assert.Contains(t, out, "<h3>Untitled Project</h3>")
	assert.Contains(t, out, `src="images/placeholder.png"`)
	assert.Contains(t, out, "<p>No description provided.</p>")
}

func TestRenderCards_HeadingAndMarkdown(t *testing.T) {
	t.Parallel()

	list := mustParse(t, `[{"title":"<Alpha>","description":"Uses **D3** <script>x</script>"}]`)

	out, err := projects.Cards(list, projects.CardOptions{Heading: "div", Markdown: true})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h2>&lt;Alpha&gt;</h2>")
	assert.Contains(t, html, "<strong>D3</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestRenderCards_Empty(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	require.NoError(t, projects.RenderCards(&buf, nil, projects.CardOptions{}))
	assert.Equal(t, "<p>No projects found.</p>", buf.String())

	require.NoError(t, projects.RenderCards(nil, nil, projects.CardOptions{}))
	assert.Equal(t, "3 Projects", projects.CountTitle(3))
}

func TestLoad_FileAndHTTP(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(alphaBeta), 0o600))

	list, err := projects.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lib/projects.json" {
			http.NotFound(w, r)

			return
		}

		_, _ = w.Write([]byte(alphaBeta))
	}))
	t.Cleanup(srv.Close)

	loader := projects.Loader{Client: srv.Client()}

	list, err = loader.Load(context.Background(), srv.URL+"/lib/projects.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(list))

	_, err = loader.Load(context.Background(), srv.URL+"/missing.json")
	require.ErrorIs(t, err, projects.ErrFetch)

	_, err = projects.Load(context.Background(), filepath.Join(t.TempDir(), "none.json"))
	require.ErrorIs(t, err, projects.ErrFetch)
}
