// Package commits aggregates line records into per-commit summaries and
// derives the breakdowns shown next to the commit scatter plot.
package commits

import (
	"time"

	"github.com/n3il-kb/portfolio/pkg/loclog"
)

const minutesPerHour = 60

// Commit summarizes every line record sharing one commit id.
type Commit struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Timezone   string    `json:"timezone"`
	Datetime   time.Time `json:"datetime"`
	HourFrac   float64   `json:"hourFrac"`
	TotalLines int       `json:"totalLines"`

	// lines is read-only and intentionally unexported: it is left out of
	// serialization and of Clone.
	lines []loclog.LineRecord
}

// Lines returns the records that make up the commit. Callers must not modify
// the returned slice.
func (c *Commit) Lines() []loclog.LineRecord {
	return c.lines
}

// Clone returns a shallow copy without the line back-reference.
func (c *Commit) Clone() Commit {
	out := *c
	out.lines = nil

	return out
}

// HourOf returns the fractional hour of day of t in its own location.
func HourOf(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/minutesPerHour
}
