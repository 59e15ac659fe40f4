package projects

import (
	"fmt"
	"math"
	"slices"
)

// Tableau10 is the ordinal color scheme of the pie, indexed by slice.
var Tableau10 = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// DefaultPieRadius is the outer radius of the pie in SVG user units.
const DefaultPieRadius = 50

// Slice is one wedge of the per-year pie.
type Slice struct {
	Label      Year
	Value      int
	Index      int
	StartAngle float64
	EndAngle   float64
	Color      string
}

// Color returns the Tableau10 color for slice index i.
func Color(i int) string {
	return Tableau10[i%len(Tableau10)]
}

// Pie groups ps by year in first-seen order, one slice per year valued by
// project count. Angles run clockwise from 12 o'clock in radians, assigned
// in descending value order; ties keep input order.
func Pie(ps []Project) []Slice {
	index := make(map[Year]int)

	var out []Slice

	for _, p := range ps {
		i, ok := index[p.Year]
		if !ok {
			i = len(out)
			index[p.Year] = i
			out = append(out, Slice{Label: p.Year, Index: i, Color: Color(i)})
		}

		out[i].Value++
	}

	layoutAngles(out)

	return out
}

func layoutAngles(ss []Slice) {
	total := 0
	for _, s := range ss {
		total += s.Value
	}

	if total == 0 {
		return
	}

	order := make([]int, len(ss))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int { return ss[b].Value - ss[a].Value })

	angle := 0.0

	for _, i := range order {
		ss[i].StartAngle = angle
		angle += float64(ss[i].Value) / float64(total) * 2 * math.Pi
		ss[i].EndAngle = angle
	}
}

// Share returns the slice's fraction of the whole pie.
func (s Slice) Share() float64 {
	return (s.EndAngle - s.StartAngle) / (2 * math.Pi)
}

// ArcPath returns the SVG path of the wedge centered on the origin with outer
// radius r. A full circle is drawn as two half arcs.
func (s Slice) ArcPath(r float64) string {
	sweep := s.EndAngle - s.StartAngle
	if sweep <= 0 {
		return ""
	}

	if sweep >= 2*math.Pi-1e-9 {
		return fmt.Sprintf("M0,%s A%s,%s,0,1,1,0,%s A%s,%s,0,1,1,0,%sZ",
			num(-r), num(r), num(r), num(r), num(r), num(r), num(-r))
	}

	x0, y0 := polar(r, s.StartAngle)
	x1, y1 := polar(r, s.EndAngle)

	large := 0
	if sweep > math.Pi {
		large = 1
	}

	return fmt.Sprintf("M%s,%s A%s,%s,0,%d,1,%s,%s L0,0Z",
		num(x0), num(y0), num(r), num(r), large, num(x1), num(y1))
}

// polar converts an angle measured clockwise from 12 o'clock to SVG
// coordinates, where y grows downward.
func polar(r, angle float64) (x, y float64) {
	return r * math.Sin(angle), -r * math.Cos(angle)
}

func num(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}

	return fmt.Sprintf("%.3f", v)
}
