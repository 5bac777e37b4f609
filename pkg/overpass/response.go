package overpass

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Response is the JSON shape returned by the interpreter for a
// "out tags center" query on postal-code boundary relations.
type Response struct {
	Elements []Element `json:"elements"`
}

// Element is one postal-code boundary relation. Center is a pointer so a
// payload lacking it is distinguishable from a center at (0, 0).
type Element struct {
	Tags   Tags    `json:"tags"`
	Center *Center `json:"center"`
}

// Tags holds the relation tags we care about.
type Tags struct {
	PostalCode string `json:"postal_code"`
}

// Center is the geographic center of the boundary area.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParseResponse decodes a raw interpreter response body.
func ParseResponse(raw []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, eris.Wrap(err, "overpass: parse response")
	}
	return &resp, nil
}
