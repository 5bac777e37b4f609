// Package geotable builds the postal-code → coordinate lookup table from the
// Overpass API, caching the raw response locally.
package geotable

import (
	"github.com/rotisserie/eris"

	"github.com/plzgeo/plzgeo/pkg/overpass"
)

var (
	// ErrDataUnavailable means no readable cache exists and the remote
	// fetch failed.
	ErrDataUnavailable = eris.New("geotable: postal code data unavailable")

	// ErrMalformedData means the payload (fetched or cached) could not be
	// projected into a lookup table.
	ErrMalformedData = eris.New("geotable: malformed postal code payload")
)

// Coordinate is the geographic center of a postal-code area.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Table maps a postal code to its coordinate. It is built once per run and
// treated as read-only afterward.
type Table map[string]Coordinate

// Build projects a raw interpreter response into a Table. If a postal code
// repeats in the payload, the last occurrence wins.
func Build(raw []byte) (Table, error) {
	resp, err := overpass.ParseResponse(raw)
	if err != nil {
		return nil, eris.Wrap(ErrMalformedData, err.Error())
	}

	table := make(Table, len(resp.Elements))
	for _, el := range resp.Elements {
		if el.Tags.PostalCode == "" {
			return nil, eris.Wrap(ErrMalformedData, "element without postal_code tag")
		}
		if el.Center == nil {
			return nil, eris.Wrapf(ErrMalformedData, "element %s without center", el.Tags.PostalCode)
		}
		table[el.Tags.PostalCode] = Coordinate{Lat: el.Center.Lat, Lon: el.Center.Lon}
	}

	return table, nil
}
