package scale

import (
	"time"
)

// Tick is one axis tick in range space.
type Tick struct {
	Pos   float64
	Label string
}

const (
	hourTickFormat = "15:04"
	dayTickFormat  = "Jan 02"
	monthFormat    = "Jan 2006"
	day            = 24 * time.Hour
	week           = 7 * day
)

// tickIntervals are tried in order; the first one yielding at most the
// requested number of ticks wins.
var tickIntervals = []time.Duration{
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	day,
	2 * day,
	week,
	2 * week,
}

// LinearTicks returns ticks at every multiple of step within the domain.
// format renders the tick label from the domain value.
func (s Linear) LinearTicks(step float64, format func(float64) string) []Tick {
	if step <= 0 {
		return nil
	}

	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}

	var ticks []Tick

	first := float64(int(lo/step)) * step
	if first < lo {
		first += step
	}

	for v := first; v <= hi; v += step {
		ticks = append(ticks, Tick{Pos: s.Map(v), Label: format(v)})
	}

	return ticks
}

// Ticks returns at most maxTicks ticks aligned to calendar boundaries of the
// domain's location. Spans too wide for the fixed intervals fall back to
// month starts, thinned to fit.
func (s Time) Ticks(maxTicks int) []Tick {
	if maxTicks <= 0 || !s.D1.After(s.D0) {
		return nil
	}

	span := s.D1.Sub(s.D0)

	for _, interval := range tickIntervals {
		if int(span/interval) > maxTicks {
			continue
		}

		return s.fixedTicks(interval)
	}

	return s.monthTicks(maxTicks)
}

func (s Time) fixedTicks(interval time.Duration) []Tick {
	layout := dayTickFormat
	if interval < day {
		layout = hourTickFormat
	}

	start := startOfDay(s.D0)
	for start.Before(s.D0) {
		start = start.Add(interval)
	}

	var ticks []Tick

	for t := start; !t.After(s.D1); t = t.Add(interval) {
		ticks = append(ticks, Tick{Pos: s.Map(t), Label: t.Format(layout)})
	}

	return ticks
}

func (s Time) monthTicks(maxTicks int) []Tick {
	y, m, _ := s.D0.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, s.D0.Location())

	if start.Before(s.D0) {
		start = start.AddDate(0, 1, 0)
	}

	months := 0
	for t := start; !t.After(s.D1); t = t.AddDate(0, 1, 0) {
		months++
	}

	stride := 1
	for months/stride > maxTicks {
		stride++
	}

	var ticks []Tick

	for t := start; !t.After(s.D1); t = t.AddDate(0, stride, 0) {
		ticks = append(ticks, Tick{Pos: s.Map(t), Label: t.Format(monthFormat)})
	}

	return ticks
}
