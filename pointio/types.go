// Package pointio types: value-source options and loader sentinels.
package pointio

import "errors"

var (
	// ErrNoValueSource indicates that a loader was started without a way
	// to obtain sample values: neither WithField nor WithZ was given.
	ErrNoValueSource = errors.New("pointio: no value source: configure WithField or WithZ")

	// ErrFieldNotFound indicates the configured value field does not exist
	// in the dataset's attribute table or feature properties.
	ErrFieldNotFound = errors.New("pointio: value field not found")

	// ErrNotPointLayer indicates the dataset holds geometries other than
	// single points.
	ErrNotPointLayer = errors.New("pointio: dataset is not a point layer")

	// ErrBadRecord indicates one record could not be turned into a sample:
	// an unparseable value, or a missing z coordinate under WithZ.
	ErrBadRecord = errors.New("pointio: malformed record")
)

// Options selects where a loader takes sample values from.
//
// Field – name of the attribute (shapefile DBF column, GeoJSON property)
//
//	holding the value. Matched case-insensitively. When set, it wins
//	over UseZ.
//
// UseZ  – take the value from the geometry's own z coordinate. Only point-z
//
//	shapefiles carry one; plain and measured points reject it.
type Options struct {
	Field string
	UseZ  bool
}

// Option represents a functional option for configuring a loader.
type Option func(*Options)

// WithField names the attribute or property to read sample values from.
// Must pass a non-empty name.
func WithField(name string) Option {
	return func(o *Options) {
		if name == "" {
			panic(ErrNoValueSource.Error())
		}
		o.Field = name
	}
}

// WithZ takes sample values from the geometry's z coordinate.
func WithZ() Option {
	return func(o *Options) {
		o.UseZ = true
	}
}

// buildOptions folds opts over the zero value.
func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
