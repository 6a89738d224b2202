package cloud

import "github.com/paulmach/orb"

// Len returns the number of samples.
func (c Cloud) Len() int { return len(c) }

// Point returns the planar location of sample i.
func (c Cloud) Point(i int) orb.Point { return c[i].Point() }

// Z returns the scalar value of sample i.
func (c Cloud) Z(i int) float64 { return c[i].Z }

// Points materialises the sample locations as a fresh slice, in id order.
// Callers that hand the slice to a triangulator may append to it freely.
func (c Cloud) Points() []orb.Point {
	pts := make([]orb.Point, len(c))
	for i, s := range c {
		pts[i] = s.Point()
	}

	return pts
}

// Bound returns the axis-aligned bounding box of the cloud.
// The zero Bound is returned for an empty cloud.
func (c Cloud) Bound() orb.Bound {
	if len(c) == 0 {
		return orb.Bound{}
	}

	b := orb.Bound{Min: c[0].Point(), Max: c[0].Point()}
	for _, s := range c[1:] {
		b = b.Extend(s.Point())
	}

	return b
}

// Validate reports whether the cloud is large enough to triangulate.
// Returns ErrTooFewSamples when it is not.
func (c Cloud) Validate() error {
	if len(c) < MinSamples {
		return ErrTooFewSamples
	}

	return nil
}
