package commits

import (
	"strconv"
	"strings"

	"github.com/n3il-kb/portfolio/pkg/loclog"
)

const percentScale = 100

// LanguageShare is the number of lines of one type tag and their share of all
// lines in the breakdown.
type LanguageShare struct {
	Type       string
	Count      int
	Proportion float64
}

// Percent formats the proportion to one decimal place, trimming a trailing
// ".0" ("50%", "33.3%").
func (l LanguageShare) Percent() string {
	return FormatPercent(l.Proportion)
}

// FileLines is one file and its lines within a breakdown.
type FileLines struct {
	Name  string
	Lines []loclog.LineRecord
}

// Languages groups the lines of cs by type tag in first-seen order.
func Languages(cs []*Commit) []LanguageShare {
	lines := FlattenLines(cs)
	if len(lines) == 0 {
		return nil
	}

	index := make(map[string]int)

	var out []LanguageShare

	for _, rec := range lines {
		i, ok := index[rec.Type]
		if !ok {
			i = len(out)
			index[rec.Type] = i
			out = append(out, LanguageShare{Type: rec.Type})
		}

		out[i].Count++
	}

	total := float64(len(lines))
	for i := range out {
		out[i].Proportion = float64(out[i].Count) / total
	}

	return out
}

// Files groups the lines of cs by file path in first-seen order.
func Files(cs []*Commit) []FileLines {
	index := make(map[string]int)

	var out []FileLines

	for _, rec := range FlattenLines(cs) {
		i, ok := index[rec.File]
		if !ok {
			i = len(out)
			index[rec.File] = i
			out = append(out, FileLines{Name: rec.File})
		}

		out[i].Lines = append(out[i].Lines, rec)
	}

	return out
}

// FormatPercent renders a 0..1 proportion as a percentage with at most one
// decimal place.
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p*percentScale, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")

	return s + "%"
}
