package commitviz

import (
	"strconv"
	"time"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/loclog"
	"github.com/n3il-kb/portfolio/pkg/reconcile"
	"github.com/n3il-kb/portfolio/pkg/scale"
)

// Slider bounds.
const (
	MinProgress = 0
	MaxProgress = 100
)

const noneSelected = "No"

// Event names a store mutation that listeners can follow.
type Event string

// Store events.
const (
	EventTimeFilter Event = "time-filter"
	EventSelection  Event = "selection"
	EventHover      Event = "hover"
)

// View is refreshed after the mutation it subscribed to.
type View interface {
	Refresh(s *Store)
}

// ViewFunc adapts a function to View.
type ViewFunc func(s *Store)

// Refresh calls f.
func (f ViewFunc) Refresh(s *Store) { f(s) }

// FileRow is one file of the file breakdown with one marker per line.
type FileRow struct {
	Name  string
	Lines []loclog.LineRecord
}

// Options configure a store.
type Options struct {
	Layout Layout
	Radius [2]float64
}

// DefaultOptions returns the site defaults.
func DefaultOptions() Options {
	return Options{
		Layout: DefaultLayout(),
		Radius: [2]float64{DefaultMinRadius, DefaultMaxRadius},
	}
}

// Store is the single source of truth of the commit page. Every mutation goes
// through a named entry point which recomputes derived state from scratch and
// then refreshes a fixed list of views. A Store is not safe for concurrent
// use; drive it from one goroutine.
type Store struct {
	records []loclog.LineRecord
	all     []*commits.Commit
	summary []commits.Stat

	timeline scale.Time
	progress float64
	cutoff   time.Time
	timeText string
	active   []*commits.Commit

	selection *Rect
	selected  []*commits.Commit
	languages []commits.LanguageShare

	scatter   *Scatter
	files     []*FileRow
	filesJoin reconcile.Keyed[string, commits.FileLines, *FileRow]

	hovered string
	tooltip Tooltip

	listeners map[Event][]View
}

// NewStore builds the page state over a loaded dataset with the slider at
// its maximum, so every commit starts active.
func NewStore(records []loclog.LineRecord, all []*commits.Commit, opts Options) *Store {
	s := &Store{
		records:   records,
		all:       all,
		summary:   commits.Summarize(records, all),
		scatter:   NewScatter(opts.Layout, opts.Radius),
		listeners: make(map[Event][]View),
		filesJoin: reconcile.Keyed[string, commits.FileLines, *FileRow]{
			DataKey:    func(f commits.FileLines) string { return f.Name },
			ElementKey: func(r *FileRow) string { return r.Name },
			Enter:      func(f commits.FileLines) *FileRow { return &FileRow{Name: f.Name, Lines: f.Lines} },
			Update: func(r *FileRow, f commits.FileLines) *FileRow {
				r.Lines = f.Lines

				return r
			},
		},
	}

	lo, hi, _ := scale.TimeExtent(all, func(c *commits.Commit) time.Time { return c.Datetime })
	s.timeline = scale.NewTime([2]time.Time{lo, hi}, [2]float64{MinProgress, MaxProgress})

	s.applyProgress(MaxProgress)
	s.refreshTimeDisplay()
	s.refreshScatter()
	s.refreshFiles()
	s.refreshSelection()
	s.refreshLanguages()

	return s
}

// Subscribe registers v to be refreshed after every mutation of kind ev.
func (s *Store) Subscribe(ev Event, v View) {
	s.listeners[ev] = append(s.listeners[ev], v)
}

// SetProgress moves the time slider. p is clamped to [0, 100]. Refreshes the
// time display, the scatter plot and the file breakdown, then re-derives the
// selection against the rescaled plot.
func (s *Store) SetProgress(p float64) {
	s.applyProgress(p)

	s.refreshTimeDisplay()
	s.refreshScatter()
	s.refreshFiles()
	s.refreshSelection()
	s.refreshLanguages()
	s.refreshHover()

	s.notify(EventTimeFilter)
}

// Brush sets the selection rectangle from any two opposite corners. Refreshes
// dot highlighting, the selection count and the language breakdown.
func (s *Store) Brush(a, b Point) {
	r := NewRect(a, b)
	s.selection = &r

	s.refreshSelection()
	s.refreshLanguages()

	s.notify(EventSelection)
}

// ClearBrush removes the selection rectangle.
func (s *Store) ClearBrush() {
	s.selection = nil

	s.refreshSelection()
	s.refreshLanguages()

	s.notify(EventSelection)
}

// Hover shows the tooltip for an active commit at the pointer position. It
// reports false when id is not plotted.
func (s *Store) Hover(id string, at Point) bool {
	d, ok := s.scatter.Dot(id)
	if !ok {
		return false
	}

	s.hovered = id
	s.tooltip = NewTooltip(d.Commit, at)
	s.scatter.Highlight(id)

	s.notify(EventHover)

	return true
}

// Leave hides the tooltip and clears the hover highlight.
func (s *Store) Leave() {
	s.hovered = ""
	s.tooltip = Tooltip{}
	s.scatter.Highlight("")

	s.notify(EventHover)
}

func (s *Store) applyProgress(p float64) {
	s.progress = min(max(p, MinProgress), MaxProgress)

	if len(s.all) == 0 {
		s.cutoff = time.Time{}
		s.active = nil

		return
	}

	s.cutoff = s.timeline.Invert(s.progress)
	s.active = commits.Until(s.all, s.cutoff)
}

func (s *Store) refreshTimeDisplay() {
	s.timeText = FormatCutoff(s.cutoff)
}

func (s *Store) refreshScatter() {
	s.scatter.Update(s.active)
}

func (s *Store) refreshFiles() {
	s.files, _ = s.filesJoin.Join(s.files, commits.Files(s.active))
}

func (s *Store) refreshSelection() {
	var selected []*commits.Commit

	if s.selection != nil {
		for _, c := range s.active {
			if s.selection.Contains(s.scatter.Position(c)) {
				selected = append(selected, c)
			}
		}
	}

	s.selected = selected

	s.scatter.Select(s.selection)
}

func (s *Store) refreshLanguages() {
	if len(s.selected) > 0 {
		s.languages = commits.Languages(s.selected)

		return
	}

	s.languages = commits.Languages(s.active)
}

func (s *Store) refreshHover() {
	if s.hovered == "" {
		return
	}

	if _, ok := s.scatter.Dot(s.hovered); !ok {
		s.hovered = ""
		s.tooltip = Tooltip{}

		return
	}

	s.scatter.Highlight(s.hovered)
}

func (s *Store) notify(ev Event) {
	for _, v := range s.listeners[ev] {
		v.Refresh(s)
	}
}

// Records returns the full dataset.
func (s *Store) Records() []loclog.LineRecord { return s.records }

// Commits returns every commit.
func (s *Store) Commits() []*commits.Commit { return s.all }

// Summary returns the summary grid over the full dataset.
func (s *Store) Summary() []commits.Stat { return s.summary }

// Progress returns the slider position.
func (s *Store) Progress() float64 { return s.progress }

// Cutoff returns the time-filter cutoff.
func (s *Store) Cutoff() time.Time { return s.cutoff }

// TimeDisplay returns the formatted cutoff.
func (s *Store) TimeDisplay() string { return s.timeText }

// Active returns the commits passing the time filter.
func (s *Store) Active() []*commits.Commit { return s.active }

// Selection returns the brush rectangle, or nil.
func (s *Store) Selection() *Rect { return s.selection }

// Selected returns the active commits inside the brush rectangle.
func (s *Store) Selected() []*commits.Commit { return s.selected }

// SelectionCount returns the "N commits selected" text.
func (s *Store) SelectionCount() string {
	n := noneSelected
	if len(s.selected) > 0 {
		n = strconv.Itoa(len(s.selected))
	}

	return n + " commits selected"
}

// Languages returns the language breakdown of the selection, or of the active
// set when nothing is selected.
func (s *Store) Languages() []commits.LanguageShare { return s.languages }

// Files returns the file breakdown of the active set.
func (s *Store) Files() []*FileRow { return s.files }

// Scatter returns the plot model.
func (s *Store) Scatter() *Scatter { return s.scatter }

// Tooltip returns the hover card.
func (s *Store) Tooltip() Tooltip { return s.tooltip }
