package geotable

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/plzgeo/plzgeo/pkg/overpass"
)

// Source reports where the table payload came from.
type Source string

const (
	SourceCache  Source = "cache"
	SourceRemote Source = "remote"
)

// Load builds the lookup table, preferring the local cache. On a cache miss
// it issues a single fetch and persists the raw payload for next time. There
// is no retry: a failed fetch fails the run.
func Load(ctx context.Context, cache *FileCache, client overpass.Client, country string) (Table, Source, error) {
	raw, ok, err := cache.Load()
	if err != nil {
		return nil, "", eris.Wrap(ErrDataUnavailable, err.Error())
	}

	source := SourceCache
	if !ok {
		zap.L().Info("postal code cache not found, querying overpass",
			zap.String("cache", cache.Path),
			zap.String("country", country),
		)
		raw, err = client.FetchPostalAreas(ctx, country)
		if err != nil {
			return nil, "", eris.Wrap(ErrDataUnavailable, err.Error())
		}
		if err := cache.Store(raw); err != nil {
			return nil, "", err
		}
		source = SourceRemote
	}

	table, err := Build(raw)
	if err != nil {
		return nil, "", err
	}

	zap.L().Info("postal code table ready",
		zap.String("source", string(source)),
		zap.Int("postal_codes", len(table)),
	)
	return table, source, nil
}
