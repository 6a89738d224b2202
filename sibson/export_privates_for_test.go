package sibson

// Test-only views into the anchor cache. The returned slices are the live
// internals; tests must not mutate them.

// CachedNeighbours returns the ordered natural-neighbour ids of the current
// anchor cache.
func (ip *Interpolator) CachedNeighbours() []int { return ip.neighbours }

// CachedAreas returns the "before" and "after" Voronoi cell areas of the
// most recent query.
func (ip *Interpolator) CachedAreas() (area1, area2 []float64) { return ip.area1, ip.area2 }

// CachedWeights returns the weight vector of the most recent successful
// query.
func (ip *Interpolator) CachedWeights() []float64 { return ip.weights }
