// Package ioutil holds the IO primitives used by the GTFS feed layer
// (gtfsfeed's lazy reader and writer): header-keyed CSV row reading (RFC 4180, BOM-tolerant)
// and JSON value loading from paths, strings, or ZIP archive members. These
// are exported standalone utilities rather than internals wired into a
// single call path — callers embedding this module (a manifest loader, a
// config reader, a one-off CSV inspection) reach for them directly, the way
// ad-hoc queries reach for the filter package's index helpers.
package ioutil

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spkg/bom"
	"github.com/transitkit/txc-gtfs/memory"
)

// Row is one header-keyed CSV record: column name to field value.
type Row map[string]string

// ReadRows parses r as an RFC 4180 CSV with a header row, returning one Row
// per data row keyed by the header's column names. A UTF-8 byte-order mark
// is tolerated and stripped. Fields are trimmed of surrounding quotes by
// the csv.Reader; unknown columns are simply absent from the header slice
// consumers iterate, and short rows leave trailing columns as "".
func ReadRows(r io.Reader) ([]Row, []string, error) {
	cr := csv.NewReader(bom.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv header: %w", err)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, header, fmt.Errorf("reading csv row: %w", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

// CountDataRows returns the number of data rows (excluding the header) in
// an RFC 4180 CSV stream, without fully parsing the records. Used by the
// lazy GTFS feed to answer *_count queries for tables it has not yet
// decoded, per spec §4.3.
func CountDataRows(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(bom.NewReader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	count := -1 // first line is the header
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, nil
	}
	return count, nil
}

// WriteRows writes rows to w as an RFC 4180 CSV using columns in the given
// order, quoting any field containing a comma, quote, or newline (the
// standard library's csv.Writer already applies minimal quoting; the call
// here is explicit about the column ordering GTFS requires).
func WriteRows(w io.Writer, columns []string, rows []Row) error {
	bw := memory.GetWriter(w)
	defer memory.PutWriter(bw)

	cw := csv.NewWriter(bw)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
