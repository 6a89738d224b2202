package cloud

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// randoms is the sample size used when estimating a median pivot during
// k-d tree construction.
const randoms = 100

// kdSample is one cloud sample as seen by the k-d tree, carrying its id so
// Nearest can report which sample was hit.
type kdSample struct {
	x, y float64
	id   int
}

// Compare implements kdtree.Comparable.
func (p kdSample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdSample)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("cloud: illegal dimension")
	}
}

// Dims implements kdtree.Comparable.
func (p kdSample) Dims() int { return 2 }

// Distance implements kdtree.Comparable; the tree works in squared
// Euclidean distance, as gonum's kdtree expects.
func (p kdSample) Distance(c kdtree.Comparable) float64 {
	q := c.(kdSample)
	dx := p.x - q.x
	dy := p.y - q.y

	return dx*dx + dy*dy
}

// kdSamples satisfies kdtree.Interface over a slice of kdSample.
type kdSamples []kdSample

func (p kdSamples) Index(i int) kdtree.Comparable         { return p[i] }
func (p kdSamples) Len() int                              { return len(p) }
func (p kdSamples) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements kdtree.Interface by partitioning around an estimated
// median along dimension d.
func (p kdSamples) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(kdPlane{kdSamples: p, Dim: d}, kdtree.MedianOfRandoms(kdPlane{kdSamples: p, Dim: d}, randoms))
}

// kdPlane implements sort.Interface and kdtree.SortSlicer for kdSamples
// along one dimension.
type kdPlane struct {
	kdSamples
	kdtree.Dim
}

func (p kdPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.kdSamples[i].x < p.kdSamples[j].x
	case 1:
		return p.kdSamples[i].y < p.kdSamples[j].y
	default:
		panic("cloud: illegal dimension")
	}
}

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	return kdPlane{kdSamples: p.kdSamples[start:end], Dim: p.Dim}
}

func (p kdPlane) Swap(i, j int) {
	p.kdSamples[i], p.kdSamples[j] = p.kdSamples[j], p.kdSamples[i]
}

// Index answers nearest-sample queries over one Cloud. Build it once per
// run; lookups after construction are read-only and safe for concurrent use
// from multiple goroutines.
type Index struct {
	tree *kdtree.Tree
}

// NewIndex builds the k-d tree over the cloud's sample locations.
func NewIndex(c Cloud) *Index {
	pts := make(kdSamples, len(c))
	for i, s := range c {
		pts[i] = kdSample{x: s.X, y: s.Y, id: i}
	}

	return &Index{tree: kdtree.New(pts, false)}
}

// Nearest returns the id of the sample closest to p and the Euclidean
// distance to it. A query against an empty index yields (-1, +Inf).
func (ix *Index) Nearest(p orb.Point) (int, float64) {
	got, d2 := ix.tree.Nearest(kdSample{x: p.X(), y: p.Y(), id: -1})
	if got == nil {
		return -1, math.Inf(1)
	}

	return got.(kdSample).id, math.Sqrt(d2)
}
