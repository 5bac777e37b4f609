package geotable

import (
	"os"

	"github.com/rotisserie/eris"
)

// FileCache persists the verbatim interpreter response between runs so the
// remote query is only issued once.
type FileCache struct {
	Path string
}

// Load reads the cached payload. A missing file is not an error: it reports
// ok=false so the caller can decide to fetch. Cache contents are trusted
// as-is, with no freshness check.
func (c *FileCache) Load() ([]byte, bool, error) {
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, eris.Wrapf(err, "geotable: read cache %s", c.Path)
	}
	return raw, true, nil
}

// Store writes the raw payload for future runs.
func (c *FileCache) Store(raw []byte) error {
	if err := os.WriteFile(c.Path, raw, 0644); err != nil {
		return eris.Wrapf(err, "geotable: write cache %s", c.Path)
	}
	return nil
}
