package projects

import (
	"strconv"
	"strings"
)

// Search returns the projects whose field values contain query, ignoring case.
// An empty query matches everything.
func Search(ps []Project, query string) []Project {
	query = strings.ToLower(query)

	out := make([]Project, 0, len(ps))

	for _, p := range ps {
		if strings.Contains(p.SearchText(), query) {
			out = append(out, p)
		}
	}

	return out
}

// ByYear returns the projects of one year.
func ByYear(ps []Project, y Year) []Project {
	out := make([]Project, 0, len(ps))

	for _, p := range ps {
		if p.Year == y {
			out = append(out, p)
		}
	}

	return out
}

// Latest returns the first n projects of the list.
func Latest(ps []Project, n int) []Project {
	return ps[:min(max(n, 0), len(ps))]
}

// Explorer is the projects page state: a search query and an optional selected
// year. The pie is computed from the query matches and the card list from the
// matches of both predicates. Not safe for concurrent use.
type Explorer struct {
	all []Project

	query    string
	year     Year
	hasYear  bool
	matches  []Project
	visible  []Project
	pie      []Slice
	onChange []func(*Explorer)
}

// NewExplorer starts with an empty query and no selected year.
func NewExplorer(all []Project) *Explorer {
	e := &Explorer{all: all}
	e.refresh()

	return e
}

// OnChange registers fn to run after every mutation.
func (e *Explorer) OnChange(fn func(*Explorer)) {
	e.onChange = append(e.onChange, fn)
}

// SetQuery replaces the search query. The year selection is cleared when no
// remaining match has that year.
func (e *Explorer) SetQuery(q string) {
	e.query = strings.ToLower(q)
	e.refresh()
	e.notify()
}

// ToggleYear selects y, or clears the selection when y is already selected.
// Years without a wedge in the current pie are ignored.
func (e *Explorer) ToggleYear(y Year) {
	switch {
	case e.hasYear && e.year == y:
		e.hasYear = false
	case e.sliceOf(y) >= 0:
		e.year, e.hasYear = y, true
	default:
		return
	}

	e.refresh()
	e.notify()
}

// ToggleSlice toggles the year of the wedge at index i of the current pie.
func (e *Explorer) ToggleSlice(i int) {
	if i < 0 || i >= len(e.pie) {
		return
	}

	e.ToggleYear(e.pie[i].Label)
}

// ClearYear removes the year selection.
func (e *Explorer) ClearYear() {
	if !e.hasYear {
		return
	}

	e.hasYear = false
	e.refresh()
	e.notify()
}

func (e *Explorer) refresh() {
	e.matches = Search(e.all, e.query)
	e.pie = Pie(e.matches)

	if e.hasYear && e.sliceOf(e.year) < 0 {
		e.hasYear = false
	}

	e.visible = e.matches
	if e.hasYear {
		e.visible = ByYear(e.matches, e.year)
	}
}

func (e *Explorer) sliceOf(y Year) int {
	for i, s := range e.pie {
		if s.Label == y {
			return i
		}
	}

	return -1
}

func (e *Explorer) notify() {
	for _, fn := range e.onChange {
		fn(e)
	}
}

// All returns the full project list.
func (e *Explorer) All() []Project { return e.all }

// Query returns the lowercased search query.
func (e *Explorer) Query() string { return e.query }

// Visible returns the projects shown as cards.
func (e *Explorer) Visible() []Project { return e.visible }

// Slices returns the pie over the query matches.
func (e *Explorer) Slices() []Slice { return e.pie }

// SelectedYear returns the selected year, if any.
func (e *Explorer) SelectedYear() (Year, bool) { return e.year, e.hasYear }

// SelectedIndex returns the index of the selected wedge, or -1.
func (e *Explorer) SelectedIndex() int {
	if !e.hasYear {
		return -1
	}

	return e.sliceOf(e.year)
}

// Legend returns "label (count)" for each wedge.
func (e *Explorer) Legend() []string {
	out := make([]string, 0, len(e.pie))
	for _, s := range e.pie {
		out = append(out, string(s.Label)+" ("+strconv.Itoa(s.Value)+")")
	}

	return out
}
