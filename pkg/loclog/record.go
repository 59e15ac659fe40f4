// Package loclog reads line-of-code logs: one row per line of every file as of
// the commit that last touched it.
package loclog

import (
	"time"
)

// LineRecord is one line of one file as of one commit. Records are immutable
// once loaded.
type LineRecord struct {
	File     string    `json:"file"`
	Commit   string    `json:"commit"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Timezone string    `json:"timezone"`
	Datetime time.Time `json:"datetime"`
	Line     int       `json:"line"`
	Depth    int       `json:"depth"`
	Length   int       `json:"length"`
	Type     string    `json:"type"`
}

// Column names of the line log header.
const (
	ColCommit   = "commit"
	ColFile     = "file"
	ColAuthor   = "author"
	ColDate     = "date"
	ColTime     = "time"
	ColTimezone = "timezone"
	ColDatetime = "datetime"
	ColLine     = "line"
	ColDepth    = "depth"
	ColLength   = "length"
	ColType     = "type"
)

// Columns lists every column a line log must carry.
var Columns = []string{
	ColCommit, ColFile, ColAuthor, ColDate, ColTime, ColTimezone,
	ColDatetime, ColLine, ColDepth, ColLength, ColType,
}
