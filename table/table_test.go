package table

import (
	"bytes"
	"encoding/csv"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func sampleTable() *Table {
	tbl := New([]string{"Name", "Price", "Count"})
	tbl.AppendRow([]any{"First", 51.77, 22.0})
	tbl.AppendRow([]any{"Second", 0.0, math.NaN()})
	return tbl
}

// TestTableBasics verifies column order, row order, and cell access
func TestTableBasics(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, []string{"Name", "Price", "Count"}, tbl.Columns())
	assert.Equal(t, 2, tbl.Len())
	assert.False(t, tbl.IsEmpty())

	assert.Equal(t, 1, tbl.ColumnIndex("Price"))
	assert.Equal(t, -1, tbl.ColumnIndex("Missing"))

	name, ok := tbl.Cell(0, "Name")
	require.True(t, ok)
	assert.Equal(t, "First", name)

	_, ok = tbl.Cell(0, "Missing")
	assert.False(t, ok)

	assert.Equal(t, []any{"First", 51.77, 22.0}, tbl.Row(0))
}

// TestAppendRow_Mismatch verifies the cell-count invariant is enforced
func TestAppendRow_Mismatch(t *testing.T) {
	tbl := New([]string{"A", "B"})

	assert.Panics(t, func() {
		tbl.AppendRow([]any{"only one"})
	})
}

// TestRowIsCopy verifies mutating a returned row does not affect the table
func TestRowIsCopy(t *testing.T) {
	tbl := sampleTable()

	row := tbl.Row(0)
	row[0] = "mutated"

	name, _ := tbl.Cell(0, "Name")
	assert.Equal(t, "First", name)
}

// TestCellString verifies text rendering of cell values
func TestCellString(t *testing.T) {
	assert.Equal(t, "plain", CellString("plain"))
	assert.Equal(t, "51.77", CellString(51.77))
	assert.Equal(t, "22", CellString(22.0))
	assert.Equal(t, "", CellString(math.NaN()))
	assert.Equal(t, "", CellString(nil))
}

// TestWriteCSV verifies the delimited output with header
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Price", "Count"}, rows[0])
	assert.Equal(t, []string{"First", "51.77", "22"}, rows[1])
	assert.Equal(t, []string{"Second", "0", ""}, rows[2], "NaN renders empty")
}

// TestWriteCSVFile verifies file output
func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, sampleTable().WriteCSVFile(path))

	tbl2 := sampleTable()
	require.NoError(t, tbl2.WriteCSVFile(path), "overwriting an existing file works")
}

// TestWriteXLSXFile verifies the spreadsheet layout matches the CSV form
func TestWriteXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, sampleTable().WriteXLSXFile(path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "Name", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "First", sheet.Rows[1].Cells[0].String())

	price, err := sheet.Rows[1].Cells[1].Float()
	require.NoError(t, err)
	assert.Equal(t, 51.77, price)

	assert.Equal(t, "", sheet.Rows[2].Cells[2].String(), "NaN becomes an empty cell")
}
