package pointio

import (
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/natgrid/cloud"
)

// ReadGeoJSON loads a point feature collection into a sample cloud.
//
// GeoJSON geometries are planar here, so the value must come from a feature
// property named by WithField; starting the loader with WithZ alone is
// ErrNoValueSource. JSON numbers arrive as float64; string properties are
// parsed as a convenience for hand-edited files.
func ReadGeoJSON(path string, opts ...Option) (cloud.Cloud, error) {
	o := buildOptions(opts)
	if o.Field == "" {
		return nil, ErrNoValueSource
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pointio: open geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("pointio: parse geojson: %w", err)
	}

	c := make(cloud.Cloud, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("%w: feature %d is %s", ErrNotPointLayer, i, f.Geometry.GeoJSONType())
		}

		v, ok := f.Properties[o.Field]
		if !ok {
			return nil, fmt.Errorf("%w: feature %d lacks %q", ErrFieldNotFound, i, o.Field)
		}
		var z float64
		switch t := v.(type) {
		case float64:
			z = t
		case string:
			z, err = strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: feature %d, property %q: %q", ErrBadRecord, i, o.Field, t)
			}
		default:
			return nil, fmt.Errorf("%w: feature %d, property %q is %T", ErrBadRecord, i, o.Field, v)
		}

		c = append(c, cloud.Sample{X: pt.X(), Y: pt.Y(), Z: z})
	}

	return c, nil
}
