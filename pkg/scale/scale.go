// Package scale maps continuous data domains to pixel ranges.
//
// The scales mirror the usual charting conventions: a degenerate domain maps
// every input to the middle of the range, and Invert is the exact inverse of
// Map for non-degenerate domains.
package scale

import (
	"math"
	"time"
)

const half = 0.5

// Linear maps [D0, D1] onto [R0, R1] with a straight line.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear creates a linear scale.
func NewLinear(domain, rng [2]float64) Linear {
	return Linear{D0: domain[0], D1: domain[1], R0: rng[0], R1: rng[1]}
}

// Map converts a domain value to a range value.
func (s Linear) Map(v float64) float64 {
	return interpolate(s.R0, s.R1, normalize(s.D0, s.D1, v))
}

// Invert converts a range value back to a domain value.
func (s Linear) Invert(v float64) float64 {
	return interpolate(s.D0, s.D1, normalize(s.R0, s.R1, v))
}

// Sqrt is a power scale with exponent 0.5. For radius encodings it keeps the
// circle area proportional to the input.
type Sqrt struct {
	inner Linear
}

// NewSqrt creates a square-root scale.
func NewSqrt(domain, rng [2]float64) Sqrt {
	return Sqrt{inner: Linear{
		D0: signedSqrt(domain[0]),
		D1: signedSqrt(domain[1]),
		R0: rng[0],
		R1: rng[1],
	}}
}

// Map converts a domain value to a range value.
func (s Sqrt) Map(v float64) float64 {
	return s.inner.Map(signedSqrt(v))
}

// Invert converts a range value back to a domain value.
func (s Sqrt) Invert(v float64) float64 {
	u := s.inner.Invert(v)

	return math.Copysign(u*u, u)
}

// Time is a linear scale over instants.
type Time struct {
	D0, D1 time.Time
	R0, R1 float64
}

// NewTime creates a time scale.
func NewTime(domain [2]time.Time, rng [2]float64) Time {
	return Time{D0: domain[0], D1: domain[1], R0: rng[0], R1: rng[1]}
}

// Map converts an instant to a range value.
func (s Time) Map(t time.Time) float64 {
	return interpolate(s.R0, s.R1, normalize(ms(s.D0), ms(s.D1), ms(t)))
}

// Invert converts a range value back to an instant. The range ends map to
// the domain ends exactly, at full precision.
func (s Time) Invert(v float64) time.Time {
	switch v {
	case s.R1:
		return s.D1.In(s.D0.Location())
	case s.R0:
		return s.D0
	}

	t := interpolate(ms(s.D0), ms(s.D1), normalize(s.R0, s.R1, v))

	return time.UnixMilli(int64(math.Round(t))).In(s.D0.Location())
}

// Nice widens the domain to whole days in the domain's location. A domain
// within a single day becomes that full day.
func (s Time) Nice() Time {
	lo := startOfDay(s.D0)
	hi := startOfDay(s.D1.In(s.D0.Location()))

	if !hi.Equal(s.D1) || !hi.After(lo) {
		hi = hi.AddDate(0, 0, 1)
	}

	s.D0, s.D1 = lo, hi

	return s
}

// Extent returns the min and max of the values picked by fn. ok is false for
// an empty input.
func Extent[T any](items []T, fn func(T) float64) (lo, hi float64, ok bool) {
	for i, item := range items {
		v := fn(item)
		if i == 0 || v < lo {
			lo = v
		}

		if i == 0 || v > hi {
			hi = v
		}
	}

	return lo, hi, len(items) > 0
}

// TimeExtent returns the earliest and latest instants picked by fn.
func TimeExtent[T any](items []T, fn func(T) time.Time) (lo, hi time.Time, ok bool) {
	for i, item := range items {
		v := fn(item)
		if i == 0 || v.Before(lo) {
			lo = v
		}

		if i == 0 || v.After(hi) {
			hi = v
		}
	}

	return lo, hi, len(items) > 0
}

func normalize(a, b, v float64) float64 {
	span := b - a
	if span == 0 {
		return half
	}

	return (v - a) / span
}

func interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}

func signedSqrt(v float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(v)), v)
}

func ms(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
