package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/ghstats"
	"github.com/n3il-kb/portfolio/pkg/projects"
)

const (
	barWidth     = 20
	sliderMargin = 4
	maxFiles     = 15
	maxCards     = 40
	noCommits    = "No commits in range"

	legendLabelWidth = 10
)

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

// SummaryTable renders the summary grid as one header row and one value row.
func SummaryTable(stats []commits.Stat) string {
	tbl := newTable()

	header, row := make(table.Row, len(stats)), make(table.Row, len(stats))
	for i, s := range stats {
		header[i] = s.Label
		row[i] = s.Display()
	}

	tbl.AppendHeader(header)
	tbl.AppendRow(row)

	return tbl.Render()
}

// LanguageTable renders the language breakdown with a share bar per type.
func LanguageTable(langs []commits.LanguageShare) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Type", "Lines", "Share", ""})

	for _, l := range langs {
		tbl.AppendRow(table.Row{l.Type, l.Count, l.Percent(), Bar(l.Proportion, barWidth)})
	}

	return tbl.Render()
}

// FileTable renders at most limit files with one dot per line.
func FileTable(files []*commitviz.FileRow, limit, width int) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"File", "Lines", ""})

	dotsWidth := max(width/2, 1)

	for i, f := range files {
		if limit > 0 && i == limit {
			tbl.AppendFooter(table.Row{fmt.Sprintf("+%d more", len(files)-limit)})

			break
		}

		dots := Truncate(strings.Repeat("•", len(f.Lines)), dotsWidth)
		tbl.AppendRow(table.Row{f.Name, len(f.Lines), dots})
	}

	return tbl.Render()
}

// TooltipText renders the hovered commit as labelled lines.
func TooltipText(tip commitviz.Tooltip) string {
	if !tip.Visible {
		return ""
	}

	tbl := newTable()
	tbl.AppendRows([]table.Row{
		{"Commit", tip.Link},
		{"Date", tip.Date},
		{"Time", tip.Time},
		{"Author", tip.Author},
		{"Lines", tip.Lines},
	})

	return tbl.Render()
}

// WriteMeta writes the commit page at the store's current state.
func WriteMeta(w io.Writer, cfg Config, store *commitviz.Store) error {
	pal := cfg.Palette()
	width := ClampWidth(cfg.Width)

	var b strings.Builder

	b.WriteString(Header("META", fmt.Sprintf("%d of %d commits", len(store.Active()), len(store.Commits())), width))
	b.WriteString("\n\n")
	b.WriteString(SummaryTable(store.Summary()))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", pal.Bold("Until"), store.TimeDisplay())
	b.WriteString(Slider(store.Progress(), width-sliderMargin))
	b.WriteString("\n\n")

	if len(store.Active()) == 0 {
		b.WriteString(pal.Warn(noCommits))
		b.WriteString("\n")
	}

	b.WriteString(pal.Info(store.SelectionCount()))
	b.WriteString("\n")
	b.WriteString(LanguageTable(store.Languages()))
	b.WriteString("\n\n")
	b.WriteString(FileTable(store.Files(), maxFiles, width))
	b.WriteString("\n")

	if tip := TooltipText(store.Tooltip()); tip != "" {
		b.WriteString("\n")
		b.WriteString(tip)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write meta report: %w", err)
	}

	return nil
}

// ProjectTable renders the visible projects.
func ProjectTable(ps []projects.Project, width int) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Title", "Year", "Description"})

	descWidth := max(width/2, len(Ellipsis)+1)

	for i, p := range ps {
		if i == maxCards {
			tbl.AppendFooter(table.Row{fmt.Sprintf("+%d more", len(ps)-maxCards)})

			break
		}

		tbl.AppendRow(table.Row{p.DisplayTitle(), string(p.Year), Truncate(p.DisplayDescription(), descWidth)})
	}

	return tbl.Render()
}

// PieLegend renders one bar per wedge, marking the selected year.
func PieLegend(slices []projects.Slice, selected int, pal Palette) string {
	total := 0
	for _, s := range slices {
		total += s.Value
	}

	var b strings.Builder

	for _, s := range slices {
		marker := "  "
		if s.Index == selected {
			marker = pal.Bold("▶ ")
		}

		label := string(s.Label)
		if label == "" {
			label = "(no year)"
		}

		share := 0.0
		if total > 0 {
			share = float64(s.Value) / float64(total)
		}

		fmt.Fprintf(&b, "%s%s %s %s\n", marker, PadRight(label, legendLabelWidth), Bar(share, barWidth), strconv.Itoa(s.Value))
	}

	return b.String()
}

// WriteProjects writes the projects page at the explorer's current state.
func WriteProjects(w io.Writer, cfg Config, ex *projects.Explorer) error {
	pal := cfg.Palette()
	width := ClampWidth(cfg.Width)

	right := ""
	if q := ex.Query(); q != "" {
		right = "search: " + strconv.Quote(q)
	}

	var b strings.Builder

	b.WriteString(Header(projects.CountTitle(len(ex.Visible())), right, width))
	b.WriteString("\n\n")
	b.WriteString(PieLegend(ex.Slices(), ex.SelectedIndex(), pal))
	b.WriteString("\n")

	if len(ex.Visible()) == 0 {
		b.WriteString(pal.Warn("No projects found."))
		b.WriteString("\n")
	} else {
		b.WriteString(ProjectTable(ex.Visible(), width))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write projects report: %w", err)
	}

	return nil
}

// WriteStats writes the GitHub counters, or the placeholder on failure.
func WriteStats(w io.Writer, cfg Config, user string, stats ghstats.Stats, fetchErr error) error {
	pal := cfg.Palette()

	var b strings.Builder

	b.WriteString(Header(ghstats.DefaultHeading, user, ClampWidth(cfg.Width)))
	b.WriteString("\n")

	if fetchErr != nil {
		b.WriteString(pal.Warn(ghstats.Placeholder))
		b.WriteString("\n")
	} else {
		tbl := newTable()
		for _, item := range stats.Items() {
			tbl.AppendRow(table.Row{item.Label, item.Value})
		}

		b.WriteString(tbl.Render())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	return nil
}
