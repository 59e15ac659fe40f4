package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/n3il-kb/portfolio/pkg/projects"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

const (
	searchHelp = "type to search  tab pie  esc clear year  ctrl+c quit"
	pieHelp    = "↑/↓ wedge  enter toggle year  esc clear year  tab search  q quit"
)

// ProjectsModel couples a search box with the year pie. Every keystroke in
// the box replaces the query; enter on a wedge toggles its year.
type ProjectsModel struct {
	explorer *projects.Explorer
	term     terminal.Config
	input    textinput.Model

	query    string
	pieFocus bool
	wedge    int
	changes  int
}

// NewProjectsModel wraps ex with the search box focused.
func NewProjectsModel(ex *projects.Explorer, term terminal.Config) *ProjectsModel {
	input := textinput.New()
	input.Placeholder = "Search projects..."
	input.Prompt = "🔍 "
	input.SetValue(ex.Query())
	input.Focus()

	m := &ProjectsModel{explorer: ex, term: term, input: input, query: ex.Query()}
	ex.OnChange(func(e *projects.Explorer) {
		m.changes++
		m.wedge = min(m.wedge, max(len(e.Slices())-1, 0))
	})

	return m
}

// Init implements tea.Model.
func (m *ProjectsModel) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.term.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.togglePane()

			return m, nil
		case "esc":
			m.explorer.ClearYear()

			return m, nil
		}

		if m.pieFocus {
			return m, m.pieKey(msg)
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.query {
		m.query = q
		m.explorer.SetQuery(q)
	}

	return m, cmd
}

func (m *ProjectsModel) togglePane() {
	m.pieFocus = !m.pieFocus
	if m.pieFocus {
		m.input.Blur()

		return
	}

	m.input.Focus()
}

func (m *ProjectsModel) pieKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.explorer.Slices())

	switch msg.String() {
	case "q":
		return tea.Quit
	case "down", "j":
		if n > 0 {
			m.wedge = (m.wedge + 1) % n
		}
	case "up", "k":
		if n > 0 {
			m.wedge = (m.wedge - 1 + n) % n
		}
	case "enter", " ":
		m.explorer.ToggleSlice(m.wedge)
	}

	return nil
}

// Wedge is the pie cursor.
func (m *ProjectsModel) Wedge() int { return m.wedge }

// Changes counts explorer notifications since the model was created.
func (m *ProjectsModel) Changes() int { return m.changes }

// Explorer returns the wrapped explorer.
func (m *ProjectsModel) Explorer() *projects.Explorer { return m.explorer }

// View implements tea.Model.
func (m *ProjectsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// Writes to a strings.Builder do not fail.
	_ = terminal.WriteProjects(&b, m.term, m.explorer)

	help := searchHelp
	if m.pieFocus {
		help = pieHelp

		if slices := m.explorer.Slices(); m.wedge < len(slices) {
			b.WriteString(focusStyle.Render(fmt.Sprintf("wedge: %s (%d)", label(slices[m.wedge]), slices[m.wedge].Value)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func label(s projects.Slice) string {
	if s.Label == "" {
		return "no year"
	}

	return string(s.Label)
}

// RunProjects runs the projects explorer until the user quits.
func RunProjects(ex *projects.Explorer, term terminal.Config) error {
	_, err := tea.NewProgram(NewProjectsModel(ex, term), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run projects explorer: %w", err)
	}

	return nil
}
