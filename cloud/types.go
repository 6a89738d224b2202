// Package cloud defines the Sample and Cloud types plus the nearest-sample
// index consumed by the interpolation engine and the grid scheduler.
package cloud

import (
	"errors"

	"github.com/paulmach/orb"
)

// MinSamples is the smallest point set a triangulation-based interpolation
// can work with (three non-collinear points span one triangle).
const MinSamples = 3

// ErrTooFewSamples indicates that a Cloud holds fewer than MinSamples points
// and therefore cannot support any triangulation-based operation.
var ErrTooFewSamples = errors.New("cloud: at least three samples required")

// Sample is one scattered observation: a planar location and its value.
// Samples are immutable once loaded; their position in the Cloud slice is
// their stable id for the whole run.
type Sample struct {
	X float64 // easting / longitude
	Y float64 // northing / latitude
	Z float64 // observed scalar value
}

// Point returns the sample's planar location.
func (s Sample) Point() orb.Point { return orb.Point{s.X, s.Y} }

// Cloud is the run's sample set. It is shared read-only across workers;
// nothing in this package mutates it after construction.
type Cloud []Sample
