package evm

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/procost/evm/date"
)

// This file decodes the input cost ledger from its CSV form.
//
// The input is a UTF-8 CSV (a leading byte-order mark is tolerated) with a
// required header row naming at least Date, PV, EV and AC, in any order;
// extra columns are ignored. Validation is all-or-nothing: one bad row
// aborts the whole decode with a diagnostic naming the row and field.

// RequiredColumns are the column names the header must carry.
var RequiredColumns = []string{"Date", "PV", "EV", "AC"}

// ErrMissingColumns reports a header lacking one or more required columns.
var ErrMissingColumns = errors.New("missing required columns")

// ErrNoHeader reports an input with no header row at all.
var ErrNoHeader = errors.New("input has no header row")

// RowError reports an unparseable field in one data row. Row is 1-based
// counting the header, so the first data row is row 2.
type RowError struct {
	Row   int
	Field string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %v", e.Row, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// DecodeLedger reads the cost ledger CSV from r and returns a date-sorted
// Ledger. Amounts are denominated in currency, which only affects display.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	// Strip a UTF-8 BOM if present, so "Date" is found even in files
	// exported by spreadsheet tools.
	utf8 := unicode.UTF8.NewDecoder()
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(utf8)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	row := 1 // the header
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("cannot read row %d: %w", row, err)
		}

		entry, err := normalizeRow(record, cols, row, currency)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return NewLedger(entries), nil
}

// columns maps each required column to its position in the header.
type columns struct {
	date, pv, ev, ac int
}

func indexColumns(header []string) (columns, error) {
	// On a duplicate column name the last occurrence wins.
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %v (found: %v)", ErrMissingColumns, missing, header)
	}
	return columns{date: index["Date"], pv: index["PV"], ev: index["EV"], ac: index["AC"]}, nil
}

// normalizeRow parses the four raw text fields of one data row into an Entry.
func normalizeRow(record []string, cols columns, row int, currency string) (Entry, error) {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}

	on, err := date.Parse(field(cols.date))
	if err != nil {
		return Entry{}, &RowError{Row: row, Field: "Date", Err: err}
	}

	amounts := make([]Money, 0, 3)
	for _, c := range []struct {
		name string
		pos  int
	}{{"PV", cols.pv}, {"EV", cols.ev}, {"AC", cols.ac}} {
		v, err := ParseAmount(field(c.pos))
		if err != nil {
			return Entry{}, &RowError{Row: row, Field: c.name, Err: err}
		}
		amounts = append(amounts, M(v, currency))
	}

	return Entry{Date: on, PV: amounts[0], EV: amounts[1], AC: amounts[2]}, nil
}
