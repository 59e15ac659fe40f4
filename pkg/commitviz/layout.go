// Package commitviz holds the coordinated views of the commit history page:
// a time-filtered scatter plot, a brush selection and the summary, language
// and file breakdowns derived from them.
package commitviz

// Default plot geometry in SVG user units.
const (
	DefaultWidth        = 1000
	DefaultHeight       = 600
	DefaultMarginTop    = 10
	DefaultMarginRight  = 10
	DefaultMarginBottom = 30
	DefaultMarginLeft   = 20
	DefaultMinRadius    = 2
	DefaultMaxRadius    = 30
)

// Margin is the space reserved around the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout is the plot geometry.
type Layout struct {
	Width  float64
	Height float64
	Margin Margin
}

// DefaultLayout returns the 1000x600 plot used by the site.
func DefaultLayout() Layout {
	return Layout{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Margin: Margin{
			Top:    DefaultMarginTop,
			Right:  DefaultMarginRight,
			Bottom: DefaultMarginBottom,
			Left:   DefaultMarginLeft,
		},
	}
}

// Usable returns the plot area inside the margins.
func (l Layout) Usable() Rect {
	return Rect{
		Min: Point{X: l.Margin.Left, Y: l.Margin.Top},
		Max: Point{X: l.Width - l.Margin.Right, Y: l.Height - l.Margin.Bottom},
	}
}

// Point is a position in plot pixel space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct {
	Min, Max Point
}

// NewRect builds a normalized rectangle from any two opposite corners.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
