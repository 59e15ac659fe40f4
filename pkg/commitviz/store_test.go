package commitviz_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/loclog"
)

const urlPrefix = "https://github.com/example/portfolio/commit/"

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func records(commit string, at time.Time, files map[string]int, typ string) []loclog.LineRecord {
	var out []loclog.LineRecord

	for _, file := range []string{"a.js", "b.css", "c.html", "d.py"} {
		for n := range files[file] {
			out = append(out, loclog.LineRecord{
				Commit:   commit,
				File:     file,
				Author:   "Neil",
				Datetime: at,
				Line:     n + 1,
				Type:     typ,
			})
		}
	}

	return out
}

// twoCommitStore is the documented example: A at 09:30 with 10 lines across
// two files and B at 14:00 the next day with 5 lines in one file.
func twoCommitStore(t *testing.T) *commitviz.Store {
	t.Helper()

	recs := append(
		records("A", day.Add(9*time.Hour+30*time.Minute), map[string]int{"a.js": 6, "b.css": 4}, "js"),
		records("B", day.Add(38*time.Hour), map[string]int{"c.html": 5}, "html")...,
	)

	return commitviz.NewStore(recs, commits.Aggregate(recs, urlPrefix), commitviz.DefaultOptions())
}

func dotIDs(s *commitviz.Store) []string {
	ids := make([]string, 0, len(s.Scatter().Dots()))
	for _, d := range s.Scatter().Dots() {
		ids = append(ids, d.ID)
	}

	return ids
}

func commitIDs(cs []*commits.Commit) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}

	return ids
}

func TestStore_EndToEndExample(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	summary := map[string]int{}
	for _, stat := range s.Summary() {
		summary[stat.Label] = stat.Value
	}

	assert.Equal(t, 2, summary[commits.LabelCommits])
	assert.Equal(t, 3, summary[commits.LabelFiles])
	assert.Equal(t, 15, summary[commits.LabelTotalLOC])

	assert.InDelta(t, commitviz.MaxProgress, s.Progress(), 0)
	assert.Len(t, s.Active(), 2)
	assert.Len(t, s.Scatter().Dots(), 2)

	s.SetProgress(50)

	assert.Equal(t, []string{"A"}, commitIDs(s.Active()))
	assert.Equal(t, []string{"A"}, dotIDs(s))
	assert.True(t, s.Cutoff().Before(day.Add(38*time.Hour)))
	require.Len(t, s.Files(), 2)
	assert.Equal(t, "a.js", s.Files()[0].Name)
	assert.Len(t, s.Files()[0].Lines, 6)
}

func TestStore_DotsDrawLargestFirst(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	dots := s.Scatter().Dots()
	require.Len(t, dots, 2)
	assert.Equal(t, "A", dots[0].ID)
	assert.Greater(t, dots[0].R, dots[1].R)
	assert.InDelta(t, commitviz.DefaultMaxRadius, dots[0].R, 1e-9)
	assert.InDelta(t, commitviz.DefaultMinRadius, dots[1].R, 1e-9)
}

func TestStore_LaterHoursPlotHigher(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	a, ok := s.Scatter().Dot("A")
	require.True(t, ok)

	b, ok := s.Scatter().Dot("B")
	require.True(t, ok)

	assert.Less(t, b.CY, a.CY)
	assert.Less(t, a.CX, b.CX)
}

func TestStore_UnfilteredUpdateReproducesInitialDots(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)
	initial := dotIDs(s)

	s.SetProgress(0)
	assert.Equal(t, []string{"A"}, dotIDs(s))

	s.SetProgress(100)
	assert.Equal(t, initial, dotIDs(s))
}

func TestStore_ProgressIsClamped(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	s.SetProgress(-20)
	assert.InDelta(t, 0, s.Progress(), 0)

	s.SetProgress(250)
	assert.InDelta(t, 100, s.Progress(), 0)
	assert.Len(t, s.Active(), 2)
}

func TestStore_BrushIsCornerOrderIndependent(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	a, ok := s.Scatter().Dot("A")
	require.True(t, ok)

	lo := commitviz.Point{X: a.CX - 1, Y: a.CY - 1}
	hi := commitviz.Point{X: a.CX + 1, Y: a.CY + 1}
	mixedA := commitviz.Point{X: lo.X, Y: hi.Y}
	mixedB := commitviz.Point{X: hi.X, Y: lo.Y}

	corners := [][2]commitviz.Point{{lo, hi}, {hi, lo}, {mixedA, mixedB}, {mixedB, mixedA}}

	for _, pair := range corners {
		s.Brush(pair[0], pair[1])

		assert.Equal(t, []string{"A"}, commitIDs(s.Selected()))
		assert.Equal(t, "1 commits selected", s.SelectionCount())
	}
}

func TestStore_BrushDrivesHighlightCountAndLanguages(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	require.Len(t, s.Languages(), 2, "no selection falls back to the active set")
	assert.Equal(t, "No commits selected", s.SelectionCount())

	b, _ := s.Scatter().Dot("B")
	s.Brush(commitviz.Point{X: b.CX - 2, Y: b.CY - 2}, commitviz.Point{X: b.CX + 2, Y: b.CY + 2})

	assert.True(t, b.Selected)

	a, _ := s.Scatter().Dot("A")
	assert.False(t, a.Selected)

	require.Len(t, s.Languages(), 1)
	assert.Equal(t, "html", s.Languages()[0].Type)
	assert.Equal(t, "100%", s.Languages()[0].Percent())

	s.ClearBrush()

	assert.Nil(t, s.Selection())
	assert.Empty(t, s.Selected())
	assert.False(t, b.Selected)
	assert.Len(t, s.Languages(), 2)
}

func TestStore_EmptyBrushFallsBackToActive(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	s.Brush(commitviz.Point{X: 0, Y: 0}, commitviz.Point{X: 1, Y: 1})

	assert.Empty(t, s.Selected())
	assert.Equal(t, "No commits selected", s.SelectionCount())
	assert.Len(t, s.Languages(), 2)
}

func TestStore_TimeFilterKeepsSelectionWithinActive(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)
	area := commitviz.DefaultLayout().Usable()

	s.Brush(area.Min, area.Max)
	require.Len(t, s.Selected(), 2)

	s.SetProgress(0)

	assert.Equal(t, []string{"A"}, commitIDs(s.Selected()))
}

func TestStore_HoverAndLeave(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	assert.False(t, s.Hover("missing", commitviz.Point{}))

	require.True(t, s.Hover("A", commitviz.Point{X: 40, Y: 50}))

	tip := s.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, urlPrefix+"A", tip.Link)
	assert.Equal(t, "A", tip.ID)
	assert.Equal(t, "Friday, March 1, 2024", tip.Date)
	assert.Equal(t, "09:30 AM", tip.Time)
	assert.Equal(t, "Neil", tip.Author)
	assert.Equal(t, "10", tip.Lines)
	assert.InDelta(t, 40, tip.At.X, 0)

	a, _ := s.Scatter().Dot("A")
	assert.True(t, a.Highlighted)

	s.Leave()

	assert.False(t, s.Tooltip().Visible)
	assert.False(t, a.Highlighted)
}

func TestStore_HoveredCommitFilteredOutHidesTooltip(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	require.True(t, s.Hover("B", commitviz.Point{}))

	s.SetProgress(0)

	assert.False(t, s.Tooltip().Visible)
}

func TestStore_ListenersFollowTheirEvent(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	var calls []string

	record := func(name string) commitviz.View {
		return commitviz.ViewFunc(func(*commitviz.Store) { calls = append(calls, name) })
	}

	s.Subscribe(commitviz.EventTimeFilter, record("slider-1"))
	s.Subscribe(commitviz.EventTimeFilter, record("slider-2"))
	s.Subscribe(commitviz.EventSelection, record("brush"))
	s.Subscribe(commitviz.EventHover, record("tooltip"))

	s.SetProgress(10)
	assert.Equal(t, []string{"slider-1", "slider-2"}, calls)

	calls = nil

	s.Brush(commitviz.Point{}, commitviz.Point{X: 5, Y: 5})
	s.ClearBrush()
	assert.Equal(t, []string{"brush", "brush"}, calls)

	calls = nil

	s.Hover("A", commitviz.Point{})
	s.Leave()
	assert.Equal(t, []string{"tooltip", "tooltip"}, calls)
}

func TestStore_TimeDisplay(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)

	assert.Equal(t, "March 2, 2024 at 2:00 PM", s.TimeDisplay())

	s.SetProgress(0)
	assert.Equal(t, "March 1, 2024 at 9:30 AM", s.TimeDisplay())
}

func TestStore_EmptyDataset(t *testing.T) {
	t.Parallel()

	s := commitviz.NewStore(nil, nil, commitviz.DefaultOptions())

	s.SetProgress(40)

	assert.Empty(t, s.Active())
	assert.Empty(t, s.Scatter().Dots())
	assert.Empty(t, s.Languages())
	assert.Empty(t, s.TimeDisplay())
}

func TestRect_Normalizes(t *testing.T) {
	t.Parallel()

	r := commitviz.NewRect(commitviz.Point{X: 10, Y: 2}, commitviz.Point{X: 3, Y: 8})

	assert.Equal(t, commitviz.Point{X: 3, Y: 2}, r.Min)
	assert.Equal(t, commitviz.Point{X: 10, Y: 8}, r.Max)
	assert.True(t, r.Contains(commitviz.Point{X: 3, Y: 8}))
	assert.False(t, r.Contains(commitviz.Point{X: 2.9, Y: 5}))
}

func TestStore_RenderSVG(t *testing.T) {
	t.Parallel()

	s := twoCommitStore(t)
	b, _ := s.Scatter().Dot("B")
	s.Brush(commitviz.Point{X: b.CX - 1, Y: b.CY - 1}, commitviz.Point{X: b.CX + 1, Y: b.CY + 1})
	s.Hover("A", commitviz.Point{})

	svg, err := s.SVG()
	require.NoError(t, err)

	out := string(svg)
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Contains(t, out, `data-commit="A"`)
	assert.Contains(t, out, `class="selected"`)
	assert.Contains(t, out, `class="selection"`)
	assert.Contains(t, out, "fill-opacity: 1.0")
	assert.Contains(t, out, "14:00")
	assert.Contains(t, out, "12:00")
}

func TestStore_FullSliderKeepsSubMillisecondCommit(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("", -8*3600)
	latest := time.Date(2024, 1, 2, 14, 0, 0, 123456789, zone)

	recs := append(
		records("A", time.Date(2024, 1, 1, 9, 30, 0, 0, zone), map[string]int{"a.js": 2}, "js"),
		records("B", latest, map[string]int{"c.html": 1}, "html")...,
	)

	s := commitviz.NewStore(recs, commits.Aggregate(recs, urlPrefix), commitviz.DefaultOptions())

	assert.InDelta(t, commitviz.MaxProgress, s.Progress(), 0)
	assert.True(t, s.Cutoff().Equal(latest))
	assert.Equal(t, []string{"A", "B"}, commitIDs(s.Active()))

	s.SetProgress(0)
	s.SetProgress(commitviz.MaxProgress)
	assert.Len(t, s.Active(), 2)
}
