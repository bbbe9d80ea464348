package ioutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRowsParsesHeaderAndRows(t *testing.T) {
	rows, header, err := ReadRows(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0]["a"])
	assert.Equal(t, "6", rows[1]["c"])
}

func TestReadRowsStripsBOM(t *testing.T) {
	bom := "\xef\xbb\xbf"
	rows, header, err := ReadRows(strings.NewReader(bom + "a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["a"])
}

func TestReadRowsEmptyInput(t *testing.T) {
	rows, header, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.Nil(t, header)
}

func TestReadRowsShortRowLeavesTrailingColumnsEmpty(t *testing.T) {
	rows, _, err := ReadRows(strings.NewReader("a,b,c\n1\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["a"])
	assert.Equal(t, "", rows[0]["b"])
	assert.Equal(t, "", rows[0]["c"])
}

func TestCountDataRows(t *testing.T) {
	n, err := CountDataRows(strings.NewReader("a,b\n1,2\n3,4\n5,6\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountDataRowsEmpty(t *testing.T) {
	n, err := CountDataRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWriteRowsThenReadRowsRoundTrips(t *testing.T) {
	columns := []string{"id", "name"}
	rows := []Row{{"id": "1", "name": "a, b"}, {"id": "2", "name": "plain"}}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, columns, rows))

	got, header, err := ReadRows(&buf)
	require.NoError(t, err)
	assert.Equal(t, columns, header)
	require.Len(t, got, 2)
	assert.Equal(t, "a, b", got[0]["name"])
	assert.Equal(t, "plain", got[1]["name"])
}

func TestWriteRowsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, []string{"id"}, nil))
	assert.Equal(t, "id\n", buf.String())
}
