// Package projects loads the project list and derives the projects page: the
// searchable card list and the per-year pie chart.
package projects

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNotObject = errors.New("project is not a JSON object")

// Card fallbacks.
const (
	UntitledProject  = "Untitled Project"
	NoDescription    = "No description provided."
	PlaceholderImage = "images/placeholder.png"
)

const (
	searchSeparator  = "\n"
	searchListJoin   = ","
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldImage       = "image"
	fieldYear        = "year"
)

// Year is a project year. The JSON value may be a string or an integer; both
// decode to the same label.
type Year string

// UnmarshalJSON accepts a string, a number or null.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*y = ""
	case len(data) > 0 && data[0] == '"':
		var s string

		err := json.Unmarshal(data, &s)
		if err != nil {
			return fmt.Errorf("decode year: %w", err)
		}

		*y = Year(s)
	default:
		var n json.Number

		err := json.Unmarshal(data, &n)
		if err != nil {
			return fmt.Errorf("decode year: %w", err)
		}

		*y = Year(n.String())
	}

	return nil
}

// Project is one entry of the project list. Fields other than the known four
// are kept for search.
type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Year        Year   `json:"year,omitempty"`

	fields map[string]json.RawMessage
	order  []string
}

// UnmarshalJSON decodes the known fields and retains every raw field value
// in document order.
func (p *Project) UnmarshalJSON(data []byte) error {
	fields, order, err := rawFields(data)
	if err != nil {
		return fmt.Errorf("decode project: %w", err)
	}

	type plain Project

	var known plain

	err = json.Unmarshal(data, &known)
	if err != nil {
		return fmt.Errorf("decode project: %w", err)
	}

	*p = Project(known)
	p.fields = fields
	p.order = order

	return nil
}

// rawFields splits a JSON object into its raw member values and the order in
// which the keys first appear.
func rawFields(data []byte) (map[string]json.RawMessage, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}

	if tok == nil {
		return nil, nil, nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errNotObject
	}

	fields := make(map[string]json.RawMessage)

	var order []string

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, nil, err
		}

		name, _ := tok.(string)

		var value json.RawMessage

		err = dec.Decode(&value)
		if err != nil {
			return nil, nil, err
		}

		if _, seen := fields[name]; !seen {
			order = append(order, name)
		}

		fields[name] = value
	}

	return fields, order, nil
}

// DisplayTitle returns the title or its fallback.
func (p Project) DisplayTitle() string {
	return orDefault(p.Title, UntitledProject)
}

// DisplayDescription returns the description or its fallback.
func (p Project) DisplayDescription() string {
	return orDefault(p.Description, NoDescription)
}

// DisplayImage returns the image path or the placeholder.
func (p Project) DisplayImage() string {
	return orDefault(p.Image, PlaceholderImage)
}

// Field returns the text of a raw field value, or "" when absent.
func (p Project) Field(name string) string {
	raw, ok := p.fieldMap()[name]
	if !ok {
		return ""
	}

	return valueText(raw)
}

// SearchText returns every field value, in document order, joined with
// newlines and lowercased.
func (p Project) SearchText() string {
	fields := p.fieldMap()

	order := p.order
	if p.fields == nil {
		order = literalOrder
	}

	values := make([]string, 0, len(fields))

	for _, name := range order {
		if raw, ok := fields[name]; ok {
			values = append(values, valueText(raw))
		}
	}

	return strings.ToLower(strings.Join(values, searchSeparator))
}

// literalOrder is the field order of a Project built in code.
var literalOrder = []string{fieldTitle, fieldDescription, fieldImage, fieldYear}

// fieldMap returns the decoded raw fields, or synthesizes them for a Project
// built in code.
func (p Project) fieldMap() map[string]json.RawMessage {
	if p.fields != nil {
		return p.fields
	}

	fields := make(map[string]json.RawMessage)

	for name, value := range map[string]string{
		fieldTitle:       p.Title,
		fieldDescription: p.Description,
		fieldImage:       p.Image,
		fieldYear:        string(p.Year),
	} {
		if value == "" {
			continue
		}

		raw, err := json.Marshal(value)
		if err == nil {
			fields[name] = raw
		}
	}

	return fields
}

// valueText renders a JSON value the way it reads on the page: strings bare,
// null empty, arrays comma-joined, everything else as its JSON text.
func valueText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) == nil {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				parts = append(parts, valueText(item))
			}

			return strings.Join(parts, searchListJoin)
		}
	}

	return string(raw)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
