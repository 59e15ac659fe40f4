package commitviz

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/reconcile"
	"github.com/n3il-kb/portfolio/pkg/scale"
)

const (
	hoursPerDay   = 24
	hourTickStep  = 2
	maxTimeTicks  = 10
	hourTickLabel = "%02d:00"
)

// Dot is one plotted commit.
type Dot struct {
	ID          string
	Commit      *commits.Commit
	CX, CY, R   float64
	Selected    bool
	Highlighted bool
}

// Scatter positions commits by datetime (x) and hour of day (y) with a radius
// whose area follows the commit's line count.
type Scatter struct {
	layout Layout
	radius [2]float64

	x scale.Time
	y scale.Linear
	r scale.Sqrt

	dots []*Dot
	join reconcile.Keyed[string, *commits.Commit, *Dot]
}

// NewScatter creates an empty scatter plot.
func NewScatter(layout Layout, radius [2]float64) *Scatter {
	area := layout.Usable()

	s := &Scatter{
		layout: layout,
		radius: radius,
		y:      scale.NewLinear([2]float64{0, hoursPerDay}, [2]float64{area.Max.Y, area.Min.Y}),
	}

	s.join = reconcile.Keyed[string, *commits.Commit, *Dot]{
		DataKey:    func(c *commits.Commit) string { return c.ID },
		ElementKey: func(d *Dot) string { return d.ID },
		Enter: func(c *commits.Commit) *Dot {
			d := &Dot{ID: c.ID}
			s.place(d, c)

			return d
		},
		Update: func(d *Dot, c *commits.Commit) *Dot {
			s.place(d, c)

			return d
		},
	}

	return s
}

// Layout returns the plot geometry.
func (s *Scatter) Layout() Layout { return s.layout }

// Update rescales to the active commits and reconciles the dots by commit id.
// Dots are ordered by descending line count so smaller dots draw on top.
func (s *Scatter) Update(active []*commits.Commit) reconcile.Diff[string] {
	s.rescale(active)

	sorted := slices.Clone(active)
	slices.SortStableFunc(sorted, func(a, b *commits.Commit) int {
		return b.TotalLines - a.TotalLines
	})

	var diff reconcile.Diff[string]

	s.dots, diff = s.join.Join(s.dots, sorted)

	return diff
}

func (s *Scatter) rescale(active []*commits.Commit) {
	area := s.layout.Usable()

	lo, hi, ok := scale.TimeExtent(active, func(c *commits.Commit) time.Time { return c.Datetime })
	if ok {
		s.x = scale.NewTime([2]time.Time{lo, hi}, [2]float64{area.Min.X, area.Max.X}).Nice()
	}

	minLines, maxLines, _ := scale.Extent(active, func(c *commits.Commit) float64 { return float64(c.TotalLines) })
	s.r = scale.NewSqrt([2]float64{minLines, maxLines}, s.radius)
}

func (s *Scatter) place(d *Dot, c *commits.Commit) {
	p := s.Position(c)

	d.Commit = c
	d.CX, d.CY = p.X, p.Y
	d.R = s.r.Map(float64(c.TotalLines))
}

// Position returns where c is plotted under the current scales.
func (s *Scatter) Position(c *commits.Commit) Point {
	return Point{X: s.x.Map(c.Datetime), Y: s.y.Map(c.HourFrac)}
}

// Dots returns the dots in draw order.
func (s *Scatter) Dots() []*Dot { return s.dots }

// Dot returns the dot for a commit id.
func (s *Scatter) Dot(id string) (*Dot, bool) {
	for _, d := range s.dots {
		if d.ID == id {
			return d, true
		}
	}

	return nil, false
}

// Select marks the dots inside sel; a nil selection clears every mark.
func (s *Scatter) Select(sel *Rect) {
	for _, d := range s.dots {
		d.Selected = sel != nil && sel.Contains(Point{X: d.CX, Y: d.CY})
	}
}

// Highlight marks the hovered dot; an empty id clears the highlight.
func (s *Scatter) Highlight(id string) {
	for _, d := range s.dots {
		d.Highlighted = d.ID == id
	}
}

// XTicks returns the time axis ticks.
func (s *Scatter) XTicks() []scale.Tick {
	return s.x.Ticks(maxTimeTicks)
}

// YTicks returns the hour axis ticks labeled HH:00.
func (s *Scatter) YTicks() []scale.Tick {
	return s.y.LinearTicks(hourTickStep, func(v float64) string {
		return fmt.Sprintf(hourTickLabel, int(math.Mod(v, hoursPerDay)))
	})
}
