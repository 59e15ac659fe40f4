package commitviz

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/n3il-kb/portfolio/pkg/commits"
)

// Display layouts.
const (
	FullDateLayout = "Monday, January 2, 2006"
	ClockLayout    = "03:04 PM"
	CutoffLayout   = "January 2, 2006 at 3:04 PM"

	unknownValue = "Unknown"
	unknownClock = "--:--"
)

// Tooltip is the hover card for one commit.
type Tooltip struct {
	Visible bool
	At      Point
	ID      string
	Link    string
	Date    string
	Time    string
	Author  string
	Lines   string
}

// NewTooltip fills a visible tooltip for c at the pointer position.
func NewTooltip(c *commits.Commit, at Point) Tooltip {
	tip := Tooltip{
		Visible: true,
		At:      at,
		ID:      c.ID,
		Link:    c.URL,
		Date:    unknownValue,
		Time:    unknownClock,
		Author:  c.Author,
		Lines:   humanize.Comma(int64(c.TotalLines)),
	}

	if !c.Datetime.IsZero() {
		tip.Date = c.Datetime.Format(FullDateLayout)
		tip.Time = c.Datetime.Format(ClockLayout)
	}

	if tip.Author == "" {
		tip.Author = unknownValue
	}

	return tip
}

// FormatCutoff renders the time-slider cutoff.
func FormatCutoff(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(CutoffLayout)
}
