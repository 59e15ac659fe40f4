package loclog_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n3il-kb/portfolio/pkg/loclog"
)

const header = "commit,file,author,date,time,timezone,datetime,line,depth,length,type\n"

func TestRead_ParsesTypedRecords(t *testing.T) {
	t.Parallel()

	input := header +
		"a1,src/main.js,Neil,2024-03-01,09:30:00-08:00,-08:00,2024-03-01T09:30:00-08:00,1,0,42,js\n" +
		"a1,src/main.js,Neil,2024-03-01,09:30:00-08:00,-08:00,2024-03-01T09:30:00-08:00,2,1,17,js\n"

	res, err := loclog.Read(strings.NewReader(input), loclog.Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 2, res.Rows)
	assert.Zero(t, res.Skipped)

	rec := res.Records[1]
	assert.Equal(t, "a1", rec.Commit)
	assert.Equal(t, "src/main.js", rec.File)
	assert.Equal(t, "Neil", rec.Author)
	assert.Equal(t, 2, rec.Line)
	assert.Equal(t, 1, rec.Depth)
	assert.Equal(t, 17, rec.Length)
	assert.Equal(t, "js", rec.Type)

	zone := time.FixedZone("", -8*3600)
	assert.True(t, rec.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, zone)))
	assert.True(t, rec.Datetime.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, zone)))
	assert.Equal(t, 9, rec.Datetime.Hour())
}

func TestRead_ColumnOrderIsFree(t *testing.T) {
	t.Parallel()

	input := "type,length,depth,line,datetime,timezone,time,date,author,file,commit,extra\n" +
		"css,10,0,1,2024-03-01T09:30:00Z,Z,09:30:00Z,2024-03-01,Neil,style.css,b2,ignored\n"

	res, err := loclog.Read(strings.NewReader(input), loclog.Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "b2", res.Records[0].Commit)
	assert.Equal(t, "style.css", res.Records[0].File)
}

func TestRead_MissingColumn(t *testing.T) {
	t.Parallel()

	_, err := loclog.Read(strings.NewReader("commit,file\n"), loclog.Options{})
	require.ErrorIs(t, err, loclog.ErrMissingColumn)
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()

	_, err := loclog.Read(strings.NewReader(""), loclog.Options{})
	require.ErrorIs(t, err, loclog.ErrEmptyLog)
}

func TestRead_RejectsMalformedRow(t *testing.T) {
	t.Parallel()

	input := header +
		"a1,main.js,Neil,2024-03-01,09:30,-08:00,2024-03-01T09:30:00-08:00,one,0,42,js\n"

	_, err := loclog.Read(strings.NewReader(input), loclog.Options{})
	require.ErrorIs(t, err, loclog.ErrMalformedRow)

	var rowErr *loclog.RowError

	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, loclog.ColLine, rowErr.Column)
	assert.Equal(t, "one", rowErr.Value)
}

func TestRead_RejectsInvalidDatetime(t *testing.T) {
	t.Parallel()

	input := header +
		"a1,main.js,Neil,2024-03-01,09:30,-08:00,yesterday,1,0,42,js\n"

	_, err := loclog.Read(strings.NewReader(input), loclog.Options{})

	var rowErr *loclog.RowError

	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, loclog.ColDatetime, rowErr.Column)
}

func TestRead_LenientSkipsMalformedRows(t *testing.T) {
	t.Parallel()

	input := header +
		"a1,main.js,Neil,2024-03-01,09:30,-08:00,2024-03-01T09:30:00-08:00,1,0,42,js\n" +
		"a1,main.js,Neil,not-a-date,09:30,-08:00,2024-03-01T09:30:00-08:00,2,0,42,js\n" +
		",main.js,Neil,2024-03-01,09:30,-08:00,2024-03-01T09:30:00-08:00,3,0,42,js\n"

	res, err := loclog.Read(strings.NewReader(input), loclog.Options{Lenient: true})
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 2, res.Skipped)
}

func TestRead_FillsEmptyType(t *testing.T) {
	t.Parallel()

	input := header +
		"a1,lib/Global.JS,Neil,2024-03-01,09:30,-08:00,2024-03-01T09:30:00-08:00,1,0,42,\n"

	res, err := loclog.Read(strings.NewReader(input), loclog.Options{})
	require.NoError(t, err)
	assert.Equal(t, "js", res.Records[0].Type)
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want string
	}{
		{"index.html", "html"},
		{"meta/main.js", "js"},
		{"style.CSS", "css"},
		{"Makefile", "makefile"},
		{"Dockerfile", "dockerfile"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, loclog.TypeOf(tt.file))
		})
	}
}

func TestRead_DatetimeTruncatedToMilliseconds(t *testing.T) {
	t.Parallel()

	input := header +
		"b2,index.html,Neil,2024-01-02,14:00:00-08:00,-08:00,2024-01-02T14:00:00.123456789-08:00,1,0,5,html\n"

	res, err := loclog.Read(strings.NewReader(input), loclog.Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	zone := time.FixedZone("", -8*3600)
	assert.True(t, res.Records[0].Datetime.Equal(time.Date(2024, 1, 2, 14, 0, 0, 123000000, zone)))
}
