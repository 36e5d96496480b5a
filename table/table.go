// Package table provides a small in-memory tabular structure with CSV and
// XLSX rendering. Cells are strings or float64s; NaN marks a missing or
// malformed numeric value and renders as an empty cell.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/tealeg/xlsx/v2"
)

// Table is an ordered set of named columns and rows of cells. Rows keep
// insertion order; the row count and order always match the sequence they
// were built from.
type Table struct {
	columns []string
	rows    [][]any
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return len(t.rows) == 0
}

// AppendRow adds a row to the end of the table. The cell count must match
// the column count; a mismatch is a programming error and panics.
func (t *Table) AppendRow(cells []any) {
	if len(cells) != len(t.columns) {
		panic(fmt.Sprintf("table: row has %d cells, want %d", len(cells), len(t.columns)))
	}
	row := make([]any, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, column := range t.columns {
		if column == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row i in the named column. The second return
// is false when the column does not exist.
func (t *Table) Cell(i int, column string) (any, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, false
	}
	return t.rows[i][idx], true
}

// CellString renders one cell value for text output. Floats use the
// shortest exact representation; NaN and nil render empty.
func CellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// WriteCSV writes the table as UTF-8 comma-separated text with a header
// row of column names.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, cell := range row {
			record[i] = CellString(cell)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}

// WriteCSVFile writes the table as a CSV file at the given path.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// WriteXLSXFile writes the table as a single-sheet spreadsheet at the
// given path, with the same header and row layout as the CSV form. Float
// cells become numeric spreadsheet cells; NaN becomes an empty cell.
func (t *Table) WriteXLSXFile(path string) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Sheet1")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, column := range t.columns {
		header.AddCell().SetString(column)
	}

	for _, row := range t.rows {
		sheetRow := sheet.AddRow()
		for _, cell := range row {
			switch v := cell.(type) {
			case float64:
				if math.IsNaN(v) {
					sheetRow.AddCell()
				} else {
					sheetRow.AddCell().SetFloat(v)
				}
			default:
				sheetRow.AddCell().SetString(CellString(cell))
			}
		}
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
