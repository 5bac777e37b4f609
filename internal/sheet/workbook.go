// Package sheet locates the postal-code column in a spreadsheet, inserts the
// coordinate columns when absent, and writes matched coordinates row by row.
package sheet

import (
	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
)

// Workbook wraps one XLSX file, operating on its first sheet. The file is
// mutated in memory and written back to the same path by Save.
type Workbook struct {
	f     *excelize.File
	sheet string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sheet: open %s", path)
	}

	name := f.GetSheetName(0)
	if name == "" {
		_ = f.Close()
		return nil, eris.Errorf("sheet: %s has no sheets", path)
	}

	return &Workbook{f: f, sheet: name}, nil
}

// SheetName returns the name of the sheet being worked on.
func (w *Workbook) SheetName() string {
	return w.sheet
}

// Rows returns every row of the sheet with cell values rendered as strings.
// Numeric cells come back in their decimal string form.
func (w *Workbook) Rows() ([][]string, error) {
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		return nil, eris.Wrap(err, "sheet: read rows")
	}
	return rows, nil
}

// InsertColumn inserts a new empty column at the 1-based position and labels
// its header cell. Columns at or after the position shift one slot right.
func (w *Workbook) InsertColumn(pos int, title string) error {
	name, err := excelize.ColumnNumberToName(pos)
	if err != nil {
		return eris.Wrapf(err, "sheet: column %d", pos)
	}
	if err := w.f.InsertCols(w.sheet, name, 1); err != nil {
		return eris.Wrapf(err, "sheet: insert column %s", name)
	}
	return w.SetCell(1, pos, title)
}

// SetCell writes a value at the 1-based row and column.
func (w *Workbook) SetCell(row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return eris.Wrapf(err, "sheet: cell (%d,%d)", row, col)
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return eris.Wrapf(err, "sheet: set cell %s", cell)
	}
	return nil
}

// Save writes the workbook back to the path it was opened from.
func (w *Workbook) Save() error {
	if err := w.f.Save(); err != nil {
		return eris.Wrap(err, "sheet: save")
	}
	return nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}
