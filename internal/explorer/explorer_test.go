package explorer_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n3il-kb/portfolio/internal/explorer"
	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/loclog"
	"github.com/n3il-kb/portfolio/pkg/projects"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

var plain = terminal.Config{Width: 80, NoColor: true}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()

	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}

	return m
}

func newMeta(t *testing.T) *explorer.MetaModel {
	t.Helper()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	recs := []loclog.LineRecord{
		{Commit: "A", File: "a.js", Author: "Neil", Datetime: day.Add(9 * time.Hour), Line: 1, Type: "js"},
		{Commit: "A", File: "a.js", Author: "Neil", Datetime: day.Add(9 * time.Hour), Line: 2, Type: "js"},
		{Commit: "B", File: "c.html", Author: "Neil", Datetime: day.Add(38 * time.Hour), Line: 1, Type: "html"},
	}

	store := commitviz.NewStore(recs, commits.Aggregate(recs, ""), commitviz.DefaultOptions())

	return explorer.NewMetaModel(store, plain)
}

func TestMetaModel_ScrubsTimeSlider(t *testing.T) {
	t.Parallel()

	m := newMeta(t)
	store := m.Store()

	send(t, m, key(tea.KeyLeft))
	assert.InDelta(t, 95, store.Progress(), 1e-9)

	send(t, m, key(tea.KeyHome))
	assert.InDelta(t, 0, store.Progress(), 1e-9)
	assert.Len(t, store.Active(), 1)

	send(t, m, key(tea.KeyLeft))
	assert.InDelta(t, 0, store.Progress(), 1e-9)

	send(t, m, key(tea.KeyPgUp), key(tea.KeyEnd))
	assert.InDelta(t, 100, store.Progress(), 1e-9)
	assert.Len(t, store.Active(), 2)
}

func TestMetaModel_HoverCyclesByDatetime(t *testing.T) {
	t.Parallel()

	m := newMeta(t)
	store := m.Store()

	send(t, m, key(tea.KeyDown))
	require.True(t, store.Tooltip().Visible)
	assert.Equal(t, "A", store.Tooltip().ID)

	send(t, m, key(tea.KeyDown))
	assert.Equal(t, "B", store.Tooltip().ID)

	send(t, m, key(tea.KeyDown))
	assert.Equal(t, "A", store.Tooltip().ID)

	send(t, m, key(tea.KeyEsc))
	assert.False(t, store.Tooltip().Visible)
}

func TestMetaModel_BrushFollowsCursor(t *testing.T) {
	t.Parallel()

	m := newMeta(t)
	store := m.Store()

	send(t, m, runes("b"))
	assert.False(t, m.Brushing(), "no anchor without a hovered dot")

	send(t, m, key(tea.KeyDown), runes("b"))
	require.True(t, m.Brushing())
	assert.Equal(t, "1 commits selected", m.Status())

	send(t, m, key(tea.KeyDown))
	assert.Equal(t, "2 commits selected", m.Status())
	assert.Len(t, store.Selected(), 2)

	send(t, m, runes("b"))
	assert.False(t, m.Brushing())
	assert.Len(t, store.Selected(), 2)

	send(t, m, runes("c"))
	assert.Equal(t, "No commits selected", m.Status())
	assert.Nil(t, store.Selection())
}

func TestMetaModel_QuitAndView(t *testing.T) {
	t.Parallel()

	m := newMeta(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Commit explorer")
	assert.Contains(t, view, "2 of 2 commits")
	assert.Contains(t, view, "q quit")
}

const projectList = `[
  {"title": "Alpha", "year": "2020"},
  {"title": "Beta", "year": "2021"},
  {"title": "Gamma", "year": "2021"}
]`

func newProjects(t *testing.T) *explorer.ProjectsModel {
	t.Helper()

	list, err := projects.Parse([]byte(projectList))
	require.NoError(t, err)

	return explorer.NewProjectsModel(projects.NewExplorer(list), plain)
}

func TestProjectsModel_TypingFilters(t *testing.T) {
	t.Parallel()

	m := newProjects(t)
	ex := m.Explorer()

	send(t, m, runes("A"), runes("l"))
	assert.Equal(t, "al", ex.Query())
	require.Len(t, ex.Visible(), 1)
	assert.Equal(t, "Alpha", ex.Visible()[0].DisplayTitle())
	assert.Equal(t, 2, m.Changes())

	send(t, m, key(tea.KeyBackspace), key(tea.KeyBackspace))
	assert.Empty(t, ex.Query())
	assert.Len(t, ex.Visible(), 3)
}

func TestProjectsModel_PieTogglesYear(t *testing.T) {
	t.Parallel()

	m := newProjects(t)
	ex := m.Explorer()

	send(t, m, key(tea.KeyTab), key(tea.KeyDown))
	assert.Equal(t, 1, m.Wedge())

	send(t, m, key(tea.KeyEnter))
	year, ok := ex.SelectedYear()
	require.True(t, ok)
	assert.Equal(t, projects.Year("2021"), year)
	assert.Len(t, ex.Visible(), 2)

	send(t, m, key(tea.KeySpace))
	_, ok = ex.SelectedYear()
	assert.False(t, ok)

	send(t, m, key(tea.KeyEnter), key(tea.KeyEsc))
	_, ok = ex.SelectedYear()
	assert.False(t, ok)

	send(t, m, key(tea.KeyUp), key(tea.KeyUp))
	assert.Equal(t, 1, m.Wedge())

	assert.Contains(t, m.View(), "wedge: 2021 (2)")

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestProjectsModel_QueryRemovesSelectedYear(t *testing.T) {
	t.Parallel()

	m := newProjects(t)
	ex := m.Explorer()

	send(t, m, key(tea.KeyTab), key(tea.KeyEnter), key(tea.KeyTab))
	year, ok := ex.SelectedYear()
	require.True(t, ok)
	assert.Equal(t, projects.Year("2020"), year)

	send(t, m, runes("b"))
	_, ok = ex.SelectedYear()
	assert.False(t, ok)
	assert.Len(t, ex.Visible(), 1)
	assert.Contains(t, m.View(), "Beta")
}
