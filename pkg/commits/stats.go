package commits

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/n3il-kb/portfolio/pkg/loclog"
)

// Summary labels, in display order.
const (
	LabelCommits     = "COMMITS"
	LabelFiles       = "FILES"
	LabelTotalLOC    = "TOTAL LOC"
	LabelMaxDepth    = "MAX DEPTH"
	LabelLongestLine = "LONGEST LINE"
	LabelMaxLines    = "MAX LINES"
)

// Stat is one cell of the summary grid.
type Stat struct {
	Label string
	Value int
}

// Display renders the value with thousands separators.
func (s Stat) Display() string {
	return humanize.Comma(int64(s.Value))
}

// String implements fmt.Stringer.
func (s Stat) String() string {
	return s.Label + "=" + strconv.Itoa(s.Value)
}

// Summarize computes the summary grid over the full dataset.
func Summarize(records []loclog.LineRecord, cs []*Commit) []Stat {
	perFile := make(map[string]int)
	maxDepth, longest := 0, 0

	for i, rec := range records {
		perFile[rec.File]++

		if i == 0 || rec.Depth > maxDepth {
			maxDepth = rec.Depth
		}

		if i == 0 || rec.Length > longest {
			longest = rec.Length
		}
	}

	maxLines := 0
	for _, n := range perFile {
		maxLines = max(maxLines, n)
	}

	return []Stat{
		{Label: LabelCommits, Value: len(cs)},
		{Label: LabelFiles, Value: len(perFile)},
		{Label: LabelTotalLOC, Value: len(records)},
		{Label: LabelMaxDepth, Value: maxDepth},
		{Label: LabelLongestLine, Value: longest},
		{Label: LabelMaxLines, Value: maxLines},
	}
}
