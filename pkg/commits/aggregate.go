package commits

import (
	"time"

	"github.com/n3il-kb/portfolio/pkg/loclog"
)

// Aggregate groups records by commit id in first-seen order. The first record
// of every group supplies the commit attributes; all records of one commit
// share them by construction. urlPrefix is prepended to the id to form URL.
func Aggregate(records []loclog.LineRecord, urlPrefix string) []*Commit {
	order := make([]string, 0)
	groups := make(map[string][]loclog.LineRecord)

	for _, rec := range records {
		if _, seen := groups[rec.Commit]; !seen {
			order = append(order, rec.Commit)
		}

		groups[rec.Commit] = append(groups[rec.Commit], rec)
	}

	out := make([]*Commit, 0, len(order))

	for _, id := range order {
		lines := groups[id]
		first := lines[0]

		out = append(out, &Commit{
			ID:         id,
			URL:        urlPrefix + id,
			Author:     first.Author,
			Date:       first.Date,
			Time:       first.Time,
			Timezone:   first.Timezone,
			Datetime:   first.Datetime,
			HourFrac:   HourOf(first.Datetime),
			TotalLines: len(lines),
			lines:      lines,
		})
	}

	return out
}

// Until returns the commits whose datetime is not after cutoff, in input order.
func Until(all []*Commit, cutoff time.Time) []*Commit {
	out := make([]*Commit, 0, len(all))

	for _, c := range all {
		if !c.Datetime.After(cutoff) {
			out = append(out, c)
		}
	}

	return out
}

// FlattenLines concatenates the line records of the given commits.
func FlattenLines(cs []*Commit) []loclog.LineRecord {
	n := 0
	for _, c := range cs {
		n += len(c.lines)
	}

	out := make([]loclog.LineRecord, 0, n)
	for _, c := range cs {
		out = append(out, c.lines...)
	}

	return out
}
