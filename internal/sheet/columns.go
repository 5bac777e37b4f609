package sheet

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Fixed header labels for the coordinate columns. Matching is exact and
// case-sensitive.
const (
	LatitudeHeader  = "Latitude"
	LongitudeHeader = "Longitude"
)

// ErrMissingColumn means no header cell matches the configured postal-code
// column name.
var ErrMissingColumn = eris.New("sheet: postal code column not found")

// ColumnSet holds the resolved 1-based positions of the postal-code,
// latitude and longitude columns.
type ColumnSet struct {
	PLZ int
	Lat int
	Lon int
}

type insertion struct {
	pos   int // 1-based position in the original header snapshot
	title string
}

// ResolveColumns locates the postal-code column and the two coordinate
// columns in the header row, inserting Latitude and/or Longitude when absent.
//
// All target positions are computed against the original header snapshot
// first; insertions are then applied rightmost-first so no pending position
// shifts under an earlier insertion. A missing Latitude lands immediately
// right of the postal-code column, a missing Longitude immediately right of
// Latitude. Resolving an already-complete header inserts nothing.
func ResolveColumns(wb *Workbook, plzHeader string) (ColumnSet, error) {
	rows, err := wb.Rows()
	if err != nil {
		return ColumnSet{}, err
	}
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	plz := findHeader(header, plzHeader)
	if plz == 0 {
		return ColumnSet{}, eris.Wrapf(ErrMissingColumn, "no heading cell in the first row equals %q", plzHeader)
	}
	lat := findHeader(header, LatitudeHeader)
	lon := findHeader(header, LongitudeHeader)

	var inserts []insertion
	if lat == 0 {
		inserts = append(inserts, insertion{pos: plz + 1, title: LatitudeHeader})
	}
	if lon == 0 {
		after := lat
		if after == 0 {
			after = plz // trails the pending Latitude insertion
		}
		inserts = append(inserts, insertion{pos: after + 1, title: LongitudeHeader})
	}

	// Rightmost first. When both columns are missing the two insertions tie
	// at plz+1: Longitude goes in first so the later Latitude insertion
	// pushes it one slot right, yielding PLZ, Latitude, Longitude.
	ordered := inserts
	if len(ordered) == 2 && ordered[1].pos >= ordered[0].pos {
		ordered = []insertion{ordered[1], ordered[0]}
	}
	for _, ins := range ordered {
		if err := wb.InsertColumn(ins.pos, ins.title); err != nil {
			return ColumnSet{}, err
		}
		zap.L().Info("inserted column",
			zap.String("title", ins.title),
			zap.Int("position", ins.pos),
		)
	}

	// Adjust every resolved position for insertions at or left of it.
	shifted := func(p int) int {
		for _, ins := range inserts {
			if ins.pos <= p {
				p++
			}
		}
		return p
	}

	cols := ColumnSet{PLZ: shifted(plz)}

	if lat != 0 {
		cols.Lat = shifted(lat)
	} else {
		cols.Lat = plz + 1
	}

	if lon != 0 {
		cols.Lon = shifted(lon)
	} else if lat != 0 {
		cols.Lon = lat + 1
	} else {
		cols.Lon = plz + 2
	}

	return cols, nil
}

// findHeader returns the 1-based position of the first cell equal to name,
// or 0 if absent. Header names are not guaranteed unique; first match wins.
func findHeader(header []string, name string) int {
	for i, cell := range header {
		if cell == name {
			return i + 1
		}
	}
	return 0
}
