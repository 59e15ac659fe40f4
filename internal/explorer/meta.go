package explorer

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

// Slider steps in percent.
const (
	SmallStep = 5
	LargeStep = 25
)

const metaHelp = "←/→ time  pgup/pgdn jump  ↑/↓ hover  b brush  c clear  esc leave  q quit"

// MetaModel drives a commit store from key presses: the arrows scrub the
// time slider and step the hover cursor through the visible commits, and b
// anchors a brush at the hovered dot that follows the cursor.
type MetaModel struct {
	store *commitviz.Store
	term  terminal.Config

	cursor int
	anchor *commitviz.Point
	status string
}

// NewMetaModel wraps store. The selection listener keeps the status line in
// step with the brush.
func NewMetaModel(store *commitviz.Store, term terminal.Config) *MetaModel {
	m := &MetaModel{store: store, term: term, cursor: -1}
	m.status = store.SelectionCount()

	store.Subscribe(commitviz.EventSelection, commitviz.ViewFunc(func(s *commitviz.Store) {
		m.status = s.SelectionCount()
	}))

	return m
}

// Init implements tea.Model.
func (m *MetaModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *MetaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.term.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *MetaModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "right", "l":
		m.scrub(SmallStep)
	case "left", "h":
		m.scrub(-SmallStep)
	case "pgup":
		m.scrub(LargeStep)
	case "pgdown":
		m.scrub(-LargeStep)
	case "home":
		m.setProgress(commitviz.MinProgress)
	case "end":
		m.setProgress(commitviz.MaxProgress)
	case "down", "j":
		m.step(1)
	case "up", "k":
		m.step(-1)
	case "b":
		m.toggleBrush()
	case "c":
		m.anchor = nil
		m.store.ClearBrush()
	case "esc":
		m.cursor = -1
		m.store.Leave()
	}

	return nil
}

func (m *MetaModel) scrub(delta float64) {
	m.setProgress(m.store.Progress() + delta)
}

func (m *MetaModel) setProgress(p float64) {
	m.store.SetProgress(p)

	if m.cursor >= len(m.ordered()) {
		m.cursor = -1
	}
}

// ordered returns the active commits by datetime.
func (m *MetaModel) ordered() []*commits.Commit {
	active := slices.Clone(m.store.Active())
	slices.SortStableFunc(active, func(a, b *commits.Commit) int {
		return a.Datetime.Compare(b.Datetime)
	})

	return active
}

func (m *MetaModel) step(delta int) {
	active := m.ordered()
	if len(active) == 0 {
		return
	}

	switch {
	case m.cursor < 0 && delta > 0:
		m.cursor = 0
	case m.cursor < 0:
		m.cursor = len(active) - 1
	default:
		m.cursor = (m.cursor + delta + len(active)) % len(active)
	}

	c := active[m.cursor]
	at := m.store.Scatter().Position(c)
	m.store.Hover(c.ID, at)

	if m.anchor != nil {
		m.store.Brush(*m.anchor, at)
	}
}

func (m *MetaModel) toggleBrush() {
	if m.anchor != nil {
		m.anchor = nil

		return
	}

	active := m.ordered()
	if m.cursor < 0 || m.cursor >= len(active) {
		return
	}

	at := m.store.Scatter().Position(active[m.cursor])
	m.anchor = &at
	m.store.Brush(at, at)
}

// Brushing reports whether a brush anchor is set.
func (m *MetaModel) Brushing() bool { return m.anchor != nil }

// Status is the latest selection count text.
func (m *MetaModel) Status() string { return m.status }

// Store returns the wrapped store.
func (m *MetaModel) Store() *commitviz.Store { return m.store }

// View implements tea.Model.
func (m *MetaModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Commit explorer"))
	b.WriteString("\n")

	// Writes to a strings.Builder do not fail.
	_ = terminal.WriteMeta(&b, m.term, m.store)

	if m.anchor != nil {
		b.WriteString(statusStyle.Render("brushing: " + m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(metaHelp))
	b.WriteString("\n")

	return b.String()
}

// RunMeta runs the commit explorer until the user quits.
func RunMeta(store *commitviz.Store, term terminal.Config) error {
	_, err := tea.NewProgram(NewMetaModel(store, term), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run commit explorer: %w", err)
	}

	return nil
}
