package geotable

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	raw := []byte(`{"elements":[
		{"tags":{"postal_code":"1010"},"center":{"lat":48.2,"lon":16.37}},
		{"tags":{"postal_code":"5020"},"center":{"lat":47.8,"lon":13.04}}
	]}`)

	table, err := Build(raw)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, Coordinate{Lat: 48.2, Lon: 16.37}, table["1010"])
	assert.Equal(t, Coordinate{Lat: 47.8, Lon: 13.04}, table["5020"])
}

func TestBuild_DuplicateLastWins(t *testing.T) {
	raw := []byte(`{"elements":[
		{"tags":{"postal_code":"1010"},"center":{"lat":1,"lon":1}},
		{"tags":{"postal_code":"1010"},"center":{"lat":2,"lon":2}}
	]}`)

	table, err := Build(raw)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, Coordinate{Lat: 2, Lon: 2}, table["1010"])
}

func TestBuild_EmptyElements(t *testing.T) {
	table, err := Build([]byte(`{"elements":[]}`))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestBuild_NotJSON(t *testing.T) {
	_, err := Build([]byte("definitely not json"))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMalformedData))
}

func TestBuild_MissingPostalCodeTag(t *testing.T) {
	raw := []byte(`{"elements":[{"tags":{},"center":{"lat":1,"lon":1}}]}`)
	_, err := Build(raw)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMalformedData))
}

func TestBuild_MissingCenter(t *testing.T) {
	// An element without a center must not become a (0, 0) coordinate.
	raw := []byte(`{"elements":[{"tags":{"postal_code":"1010"}}]}`)
	_, err := Build(raw)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMalformedData))
	assert.Contains(t, err.Error(), "without center")
}
