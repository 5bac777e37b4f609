package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{"elements":[{"tags":{"postal_code":"1010"},"center":{"lat":48.2,"lon":16.37}}]}`

func TestFetchPostalAreas_QueryAndBody(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		assert.Equal(t, "plzgeo-test/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(samplePayload)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithUserAgent("plzgeo-test/1.0"))
	raw, err := c.FetchPostalAreas(context.Background(), "AT")
	require.NoError(t, err)

	// Body comes back verbatim.
	assert.Equal(t, samplePayload, string(raw))

	// The boundary query is parameterized by the country code.
	assert.Contains(t, gotQuery, `area["ISO3166-1"=AT][admin_level=2];`)
	assert.Contains(t, gotQuery, "relation[boundary=postal_code](area);")
	assert.Contains(t, gotQuery, "out tags center;")
}

func TestFetchPostalAreas_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too busy", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchPostalAreas(context.Background(), "AT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 504")
}

func TestFetchPostalAreas_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately

	c := NewClient(srv.URL)
	_, err := c.FetchPostalAreas(context.Background(), "AT")
	require.Error(t, err)
}

func TestParseResponse(t *testing.T) {
	resp, err := ParseResponse([]byte(samplePayload))
	require.NoError(t, err)
	require.Len(t, resp.Elements, 1)
	assert.Equal(t, "1010", resp.Elements[0].Tags.PostalCode)
	require.NotNil(t, resp.Elements[0].Center)
	assert.InDelta(t, 48.2, resp.Elements[0].Center.Lat, 1e-9)
	assert.InDelta(t, 16.37, resp.Elements[0].Center.Lon, 1e-9)
}

func TestParseResponse_NotJSON(t *testing.T) {
	_, err := ParseResponse([]byte("<html>rate limited</html>"))
	require.Error(t, err)
}
