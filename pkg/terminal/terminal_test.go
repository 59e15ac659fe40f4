package terminal_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/ghstats"
	"github.com/n3il-kb/portfolio/pkg/loclog"
	"github.com/n3il-kb/portfolio/pkg/projects"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

var plain = terminal.Config{Width: 80, NoColor: true}

func TestClampWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, terminal.MinWidth, terminal.ClampWidth(1))
	assert.Equal(t, 100, terminal.ClampWidth(100))
	assert.Equal(t, terminal.MaxWidth, terminal.ClampWidth(1000))
}

func TestDetectWidth(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	assert.Equal(t, 120, terminal.DetectWidth())

	t.Setenv("COLUMNS", "wide")
	assert.Equal(t, terminal.DefaultWidth, terminal.DetectWidth())
}

func TestTruncateAndPad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", terminal.Truncate("hello", 5))
	assert.Equal(t, "he...", terminal.Truncate("hello world", 5))
	assert.Equal(t, "..", terminal.Truncate("hello", 2))
	assert.Equal(t, "ab  ", terminal.PadRight("ab", 4))
	assert.Equal(t, "abcdef", terminal.PadRight("abcdef", 4))
}

func TestBarAndSlider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "███████░░░", terminal.Bar(0.7, 10))
	assert.Equal(t, "░░░░", terminal.Bar(-1, 4))
	assert.Equal(t, "████", terminal.Bar(2, 4))
	assert.Empty(t, terminal.Bar(0.5, 0))

	assert.Equal(t, "●────", terminal.Slider(0, 5))
	assert.Equal(t, "────●", terminal.Slider(100, 5))
	assert.Equal(t, "──●──", terminal.Slider(50, 5))
}

func TestHeader(t *testing.T) {
	t.Parallel()

	lines := strings.Split(terminal.Header("META", "2 commits", 30), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "┏"))
	assert.True(t, strings.HasPrefix(lines[1], "┃ META"))
	assert.True(t, strings.HasSuffix(lines[1], "2 commits ┃"))
}

func TestPalette(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", plain.Palette().OK("ok"))

	colored := terminal.Config{}.Palette().Error("bad")
	assert.NotEqual(t, "bad", colored)
	assert.Contains(t, colored, "bad")
}

func metaStore(t *testing.T) *commitviz.Store {
	t.Helper()

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	recs := []loclog.LineRecord{
		{Commit: "A", File: "a.js", Author: "Neil", Datetime: at, Line: 1, Length: 20, Type: "js"},
		{Commit: "A", File: "b.css", Author: "Neil", Datetime: at, Line: 1, Length: 10, Type: "css"},
		{Commit: "B", File: "a.js", Author: "Neil", Datetime: at.Add(28 * time.Hour), Line: 2, Length: 5, Type: "js"},
	}

	return commitviz.NewStore(recs, commits.Aggregate(recs, ""), commitviz.DefaultOptions())
}

func TestWriteMeta(t *testing.T) {
	t.Parallel()

	store := metaStore(t)

	var buf bytes.Buffer
	require.NoError(t, terminal.WriteMeta(&buf, plain, store))

	out := buf.String()
	assert.Contains(t, out, "2 of 2 commits")
	assert.Contains(t, out, "COMMITS")
	assert.Contains(t, out, "No commits selected")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, "••")

	store.SetProgress(0)
	buf.Reset()
	require.NoError(t, terminal.WriteMeta(&buf, plain, store))
	assert.Contains(t, buf.String(), "1 of 2 commits")
}

func TestTooltipText(t *testing.T) {
	t.Parallel()

	assert.Empty(t, terminal.TooltipText(commitviz.Tooltip{}))

	out := terminal.TooltipText(commitviz.Tooltip{Visible: true, Link: "https://x/A", Author: "Neil", Lines: "1,200"})
	assert.Contains(t, out, "https://x/A")
	assert.Contains(t, out, "1,200")
}

func TestWriteProjects(t *testing.T) {
	t.Parallel()

	list, err := projects.Parse([]byte(`[{"title":"Alpha","year":"2020"},{"title":"Beta","year":2021},{"title":"Gamma"}]`))
	require.NoError(t, err)

	ex := projects.NewExplorer(list)
	ex.ToggleYear("2021")

	var buf bytes.Buffer
	require.NoError(t, terminal.WriteProjects(&buf, plain, ex))

	out := buf.String()
	assert.Contains(t, out, "1 Projects")
	assert.Contains(t, out, "▶ 2021")
	assert.Contains(t, out, "(no year)")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "Alpha")

	ex.ClearYear()
	ex.SetQuery("zzz")
	buf.Reset()
	require.NoError(t, terminal.WriteProjects(&buf, plain, ex))
	assert.Contains(t, buf.String(), "No projects found.")
	assert.Contains(t, buf.String(), `search: "zzz"`)
}

func TestWriteStats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, terminal.WriteStats(&buf, plain, "N3il-kb", ghstats.Stats{Followers: 1500}, nil))
	assert.Contains(t, buf.String(), "1,500")
	assert.Contains(t, buf.String(), "Public Gists")

	buf.Reset()
	require.NoError(t, terminal.WriteStats(&buf, plain, "N3il-kb", ghstats.Stats{}, errors.New("offline")))
	assert.Contains(t, buf.String(), ghstats.Placeholder)
}
