package surface_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/natgrid/cloud"
	"github.com/katalvlaran/natgrid/raster"
	"github.com/katalvlaran/natgrid/surface"
)

// ExampleInterpolate rasterises four corner samples onto a 3x3 grid framed
// so that the outer cell centres coincide with the samples themselves.
func ExampleInterpolate() {
	samples := cloud.Cloud{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 10},
		{X: 0, Y: 10, Z: 10},
		{X: 10, Y: 10, Z: 20},
	}
	cfg := raster.Config{
		West: -2.5, North: 12.5,
		ResX: 5, ResY: 5,
		Rows: 3, Cols: 3,
		Nodata: raster.DefaultNodata,
	}

	g, err := surface.Interpolate(samples, cfg, surface.WithWorkers(2))
	if err != nil {
		fmt.Println("interpolate:", err)
		return
	}

	// Row 2, col 0 is the cell centred exactly on the (0,0) sample.
	fmt.Printf("origin cell: %.1f\n", g.At(2, 0))
	fmt.Printf("middle cell blends to ~10: %t\n", math.Abs(g.At(1, 1)-10) < 0.5)

	// Output:
	// origin cell: 0.0
	// middle cell blends to ~10: true
}
