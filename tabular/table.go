package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is the row/column form of an aggregated extraction result.
type Table struct {
	// Rows holds one field slice per non-blank line of the aggregate.
	Rows [][]string

	// Ragged lists the 1-based row numbers whose field count differs
	// from the expected column count. Ragged rows are kept in Rows; the
	// model's free text did not follow the requested format, and partial
	// output beats losing the row.
	Ragged []int
}

// Parse converts an aggregated free-text result into a Table.
//
// The aggregate is split into lines on line breaks; blank lines are
// dropped. Each line is parsed with standard CSV quoting rules, so a
// field that legitimately contains the separator survives as one field
// when the model quoted it as instructed. Fields are trimmed of
// surrounding whitespace. Lines that do not yield exactly columns fields
// are recorded in Ragged; columns < 1 disables the check.
//
// Parse is deterministic and performs no I/O.
func Parse(aggregated string, columns int) *Table {
	table := &Table{}

	for _, line := range strings.Split(aggregated, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		fields := parseLine(line)
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		table.Rows = append(table.Rows, fields)
		if columns > 0 && len(fields) != columns {
			table.Ragged = append(table.Ragged, len(table.Rows))
		}
	}

	return table
}

// parseLine splits one line into fields, quote-aware. When the line is
// not even lenient CSV the naive comma split is used so the row is never
// lost outright.
func parseLine(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	fields, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return fields
}

// CSV encodes the table as UTF-8 CSV bytes: fields separated by commas,
// rows by line breaks, with standard quoting applied wherever a field
// contains the separator, a quote, or a line break. An empty table
// yields an empty byte slice.
func (t *Table) CSV() ([]byte, error) {
	if len(t.Rows) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// SheetName is the sheet the XLSX encoding writes rows to.
const SheetName = "Entities"

// XLSX encodes the table as an XLSX workbook with one row per table row
// on a single sheet. An empty table yields a workbook with an empty
// sheet.
func (t *Table) XLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if index, _ := f.GetSheetIndex(SheetName); index == -1 {
		if _, err := f.NewSheet(SheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(SheetName)
	f.SetActiveSheet(activeIndex)

	for ri, row := range t.Rows {
		for ci, value := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
