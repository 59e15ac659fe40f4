package plotpage

import (
	"fmt"
	"html/template"
	"io"
)

// RawHTML writes trusted markup as is.
type RawHTML template.HTML

// Render implements Renderable.
func (r RawHTML) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	if err != nil {
		return fmt.Errorf("write raw html: %w", err)
	}

	return nil
}

// Text is escaped plain text.
type Text struct {
	Content string
}

// NewText creates a text block.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// Render implements Renderable.
func (t *Text) Render(w io.Writer) error {
	template.HTMLEscape(w, []byte(t.Content))

	return nil
}

// Stat is one label/value pair.
type Stat struct {
	Label string
	Value string
}

// Stats is a definition list, as used by the summary grid and the GitHub
// widget.
type Stats []Stat

// Render implements Renderable.
func (s Stats) Render(w io.Writer) error {
	return execute(w, "stats.html", []Stat(s))
}

// Table is an HTML table; cells are escaped.
type Table struct {
	Headers []string
	Rows    [][]string
	Striped bool
}

// NewTable creates a striped table.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, Striped: true}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) *Table {
	t.Rows = append(t.Rows, cells)

	return t
}

// Render implements Renderable.
func (t *Table) Render(w io.Writer) error {
	return execute(w, "table.html", t)
}

// Card is a titled container.
type Card struct {
	Title    string
	Subtitle string
	Content  Renderable
}

// NewCard creates a card.
func NewCard(title, subtitle string) *Card {
	return &Card{Title: title, Subtitle: subtitle}
}

// WithContent sets the card body.
func (c *Card) WithContent(content Renderable) *Card {
	c.Content = content

	return c
}

// Render implements Renderable.
func (c *Card) Render(w io.Writer) error {
	body, err := markup(c.Content)
	if err != nil {
		return fmt.Errorf("render card %q: %w", c.Title, err)
	}

	return execute(w, "card.html", cardData{Title: c.Title, Subtitle: c.Subtitle, Content: body})
}

// Group renders its non-nil members in order.
type Group []Renderable

// Render implements Renderable.
func (g Group) Render(w io.Writer) error {
	for i, r := range g {
		if r == nil {
			continue
		}

		err := r.Render(w)
		if err != nil {
			return fmt.Errorf("render group item %d: %w", i, err)
		}
	}

	return nil
}
