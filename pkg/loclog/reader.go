package loclog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/src-d/enry/v2"
)

// Sentinel errors.
var (
	ErrMissingColumn = errors.New("line log is missing a column")
	ErrMalformedRow  = errors.New("malformed line log row")
	ErrEmptyLog      = errors.New("line log has no header")
)

const (
	dateSuffix = "T00:00"
	dateLayout = "2006-01-02T15:04Z07:00"
)

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

// RowError describes a row rejected at ingest. Row numbers are 1-based and
// count the header as row 1.
type RowError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: column %q: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

// Unwrap lets errors.Is match ErrMalformedRow.
func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}

// Options control ingest behavior.
type Options struct {
	// Lenient skips malformed rows instead of failing the whole log.
	Lenient bool

	// Logger receives one warning per skipped row in lenient mode.
	Logger *slog.Logger
}

// Result is a parsed line log.
type Result struct {
	Records []LineRecord
	Rows    int
	Skipped int
}

// ReadFile parses the line log at path.
func ReadFile(path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open line log: %w", err)
	}

	defer f.Close()

	return Read(f, opts)
}

// Read parses a line log. The header row is required; column order is free
// and extra columns are ignored.
func Read(r io.Reader, opts Options) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Result{}, ErrEmptyLog
	}

	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return Result{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var res Result

	for row := 2; ; row++ {
		fields, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return Result{}, fmt.Errorf("read row %d: %w", row, readErr)
		}

		res.Rows++

		rec, rowErr := parseRow(row, fields, index)
		if rowErr != nil {
			if !opts.Lenient {
				return Result{}, rowErr
			}

			res.Skipped++

			logger.Warn("skipping malformed line log row", "error", rowErr)

			continue
		}

		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))

	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	return index, nil
}

type rowParser struct {
	row    int
	fields []string
	index  map[string]int
	err    error
}

func (p *rowParser) str(col string) string {
	i := p.index[col]
	if i >= len(p.fields) {
		return ""
	}

	return p.fields[i]
}

func (p *rowParser) fail(col, value string, err error) {
	if p.err == nil {
		p.err = &RowError{Row: p.row, Column: col, Value: value, Err: err}
	}
}

func (p *rowParser) integer(col string) int {
	raw := p.str(col)

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.fail(col, raw, err)
	}

	return v
}

func (p *rowParser) date() time.Time {
	raw := p.str(ColDate)

	v, err := time.Parse(dateLayout, strings.TrimSpace(raw)+dateSuffix+strings.TrimSpace(p.str(ColTimezone)))
	if err != nil {
		p.fail(ColDate, raw, err)
	}

	return v
}

func (p *rowParser) datetime() time.Time {
	raw := strings.TrimSpace(p.str(ColDatetime))

	var lastErr error

	for _, layout := range datetimeLayouts {
		v, err := time.Parse(layout, raw)
		if err == nil {
			// Millisecond precision, as the scales use.
			return v.Truncate(time.Millisecond)
		}

		lastErr = err
	}

	p.fail(ColDatetime, raw, lastErr)

	return time.Time{}
}

func parseRow(row int, fields []string, index map[string]int) (LineRecord, error) {
	p := &rowParser{row: row, fields: fields, index: index}

	rec := LineRecord{
		File:     p.str(ColFile),
		Commit:   p.str(ColCommit),
		Author:   p.str(ColAuthor),
		Time:     p.str(ColTime),
		Timezone: p.str(ColTimezone),
		Type:     strings.TrimSpace(p.str(ColType)),
	}

	if rec.Commit == "" {
		p.fail(ColCommit, "", errors.New("empty commit id")) //nolint:err113 // row-level detail
	}

	rec.Date = p.date()
	rec.Datetime = p.datetime()
	rec.Line = p.integer(ColLine)
	rec.Depth = p.integer(ColDepth)
	rec.Length = p.integer(ColLength)

	if p.err != nil {
		return LineRecord{}, p.err
	}

	if rec.Type == "" {
		rec.Type = TypeOf(rec.File)
	}

	return rec, nil
}

// TypeOf derives a type tag from a file path: the lowercase extension when
// there is one, otherwise the language enry detects from the file name.
func TypeOf(file string) string {
	base := filepath.Base(file)

	if ext := strings.TrimPrefix(filepath.Ext(base), "."); ext != "" && ext != base[1:] {
		return strings.ToLower(ext)
	}

	return strings.ToLower(enry.GetLanguage(base, nil))
}
