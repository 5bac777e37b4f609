package sheet

import (
	"go.uber.org/zap"

	"github.com/plzgeo/plzgeo/internal/geotable"
)

// Unmatched records a data row whose postal code has no table entry.
type Unmatched struct {
	Row int // original 1-based row number
	PLZ string
}

// Report summarizes one populate pass.
type Report struct {
	Rows      int
	Matched   int
	Unmatched []Unmatched
}

// Populate walks the data rows (row 2 onward) in a single forward pass,
// looking each row's postal code up in the table and writing both
// coordinates on a hit. Unmatched rows are left untouched: existing values
// in their coordinate cells are never cleared.
func Populate(wb *Workbook, cols ColumnSet, table geotable.Table) (Report, error) {
	rows, err := wb.Rows()
	if err != nil {
		return Report{}, err
	}

	var rep Report
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		rep.Rows++

		// Trailing empty cells are trimmed from the row; a short row has an
		// empty postal code and falls through as unmatched.
		var plz string
		if cols.PLZ <= len(rows[i]) {
			plz = rows[i][cols.PLZ-1]
		}

		coord, ok := table[plz]
		if !ok {
			zap.L().Warn("postal code not in lookup table, skipping row",
				zap.String("plz", plz),
				zap.Int("row", rowNum),
			)
			rep.Unmatched = append(rep.Unmatched, Unmatched{Row: rowNum, PLZ: plz})
			continue
		}

		if err := wb.SetCell(rowNum, cols.Lat, coord.Lat); err != nil {
			return rep, err
		}
		if err := wb.SetCell(rowNum, cols.Lon, coord.Lon); err != nil {
			return rep, err
		}
		rep.Matched++
	}

	return rep, nil
}
