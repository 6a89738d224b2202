package pointio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/natgrid/pointio"
)

// writeGeoJSON drops body into a temp file and returns its path.
func writeGeoJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.geojson")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestReadGeoJSON_PropertyValues loads values from feature properties,
// including the string-number convenience.
func TestReadGeoJSON_PropertyValues(t *testing.T) {
	path := writeGeoJSON(t, `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]},
	     "properties": {"depth": 10.5, "name": "a"}},
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [3, 4]},
	     "properties": {"depth": -2, "name": "b"}},
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [5, 6]},
	     "properties": {"depth": "7.5", "name": "c"}}
	  ]
	}`)

	c, err := pointio.ReadGeoJSON(path, pointio.WithField("depth"))
	require.NoError(t, err)
	require.Len(t, c, 3)

	assert.Equal(t, 1.0, c[0].X)
	assert.Equal(t, 2.0, c[0].Y)
	assert.Equal(t, 10.5, c[0].Z)
	assert.Equal(t, -2.0, c[1].Z)
	assert.Equal(t, 7.5, c[2].Z, "string-typed numbers should parse")
}

// TestReadGeoJSON_NoValueSource requires an explicit property name.
func TestReadGeoJSON_NoValueSource(t *testing.T) {
	_, err := pointio.ReadGeoJSON("ignored.geojson")
	assert.ErrorIs(t, err, pointio.ErrNoValueSource)

	// WithZ alone does not help: geojson points are planar here.
	_, err = pointio.ReadGeoJSON("ignored.geojson", pointio.WithZ())
	assert.ErrorIs(t, err, pointio.ErrNoValueSource)
}

// TestReadGeoJSON_MissingProperty names the absent property and feature.
func TestReadGeoJSON_MissingProperty(t *testing.T) {
	path := writeGeoJSON(t, `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]},
	     "properties": {"depth": 1}},
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [3, 4]},
	     "properties": {"name": "no depth here"}}
	  ]
	}`)

	_, err := pointio.ReadGeoJSON(path, pointio.WithField("depth"))
	assert.ErrorIs(t, err, pointio.ErrFieldNotFound)
	assert.Contains(t, err.Error(), "feature 1")
}

// TestReadGeoJSON_NonPointGeometry rejects mixed collections.
func TestReadGeoJSON_NonPointGeometry(t *testing.T) {
	path := writeGeoJSON(t, `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]},
	     "properties": {"depth": 1}}
	  ]
	}`)

	_, err := pointio.ReadGeoJSON(path, pointio.WithField("depth"))
	assert.ErrorIs(t, err, pointio.ErrNotPointLayer)
}

// TestReadGeoJSON_BadPropertyType refuses values it cannot number.
func TestReadGeoJSON_BadPropertyType(t *testing.T) {
	path := writeGeoJSON(t, `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]},
	     "properties": {"depth": true}}
	  ]
	}`)

	_, err := pointio.ReadGeoJSON(path, pointio.WithField("depth"))
	assert.ErrorIs(t, err, pointio.ErrBadRecord)
}

// TestReadGeoJSON_Malformed wraps the JSON parse failure.
func TestReadGeoJSON_Malformed(t *testing.T) {
	path := writeGeoJSON(t, `{"type": "FeatureCollection", "features": [`)

	_, err := pointio.ReadGeoJSON(path, pointio.WithField("depth"))
	assert.Error(t, err)
}
