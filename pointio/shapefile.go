package pointio

import (
	"fmt"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"github.com/katalvlaran/natgrid/cloud"
)

// ReadShapefile loads a point shapefile into a sample cloud.
//
// Values come from the DBF attribute named by WithField, or — for point-z
// layers — from the geometry's z coordinate under WithZ. Point and
// point-m records under WithZ are rejected, since they carry no height.
// Attribute matching is case-insensitive, the way DBF column names are
// conventionally treated.
func ReadShapefile(path string, opts ...Option) (cloud.Cloud, error) {
	o := buildOptions(opts)
	if o.Field == "" && !o.UseZ {
		return nil, ErrNoValueSource
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointio: open shapefile: %w", err)
	}
	defer r.Close()

	fieldIdx := -1
	if o.Field != "" {
		for i, f := range r.Fields() {
			if strings.EqualFold(f.String(), o.Field) {
				fieldIdx = i

				break
			}
		}
		if fieldIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, o.Field)
		}
	}

	var c cloud.Cloud
	for r.Next() {
		n, s := r.Shape()

		var (
			x, y, z float64
			hasZ    bool
		)
		switch p := s.(type) {
		case *shp.Point:
			x, y = p.X, p.Y
		case *shp.PointM:
			x, y = p.X, p.Y
		case *shp.PointZ:
			x, y, z, hasZ = p.X, p.Y, p.Z, true
		default:
			return nil, fmt.Errorf("%w: record %d is %T", ErrNotPointLayer, n, s)
		}

		switch {
		case fieldIdx >= 0:
			// DBF cells come back space- and NUL-padded.
			raw := strings.Trim(r.ReadAttribute(n, fieldIdx), "\x00 \t\r\n")
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d, field %q: %q", ErrBadRecord, n, o.Field, raw)
			}
			z = v
		case !hasZ:
			return nil, fmt.Errorf("%w: record %d carries no z coordinate", ErrBadRecord, n)
		}

		c = append(c, cloud.Sample{X: x, Y: y, Z: z})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("pointio: read shapefile: %w", err)
	}

	return c, nil
}
