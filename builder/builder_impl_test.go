// Package builder_test contains functional tests for all cloud
// constructors, verifying counts, frames, determinism, and sentinels.
package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/natgrid/builder"
	"github.com/katalvlaran/natgrid/cloud"
)

// inBox reports whether every sample lies inside b (closed bounds).
func inBox(c cloud.Cloud, b orb.Bound) bool {
	for _, s := range c {
		if s.X < b.Min.X() || s.X > b.Max.X() || s.Y < b.Min.Y() || s.Y > b.Max.Y() {
			return false
		}
	}
	return true
}

// TestConstructors_Counts runs table-driven count checks for each builder.
func TestConstructors_Counts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cons builder.Constructor
		want int
	}{
		{"RandomUniform", builder.RandomUniform(37), 37},
		{"JitteredGrid", builder.JitteredGrid(6, 4), 24},
		{"Ring", builder.Ring(12, 25), 12},
		{"FourCorners", builder.FourCorners(50), 4},
		{"Collinear", builder.Collinear(9), 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.BuildCloud([]builder.BuilderOption{builder.WithSeed(1)}, tc.cons)
			if err != nil {
				t.Fatalf("BuildCloud error: %v", err)
			}
			if len(c) != tc.want {
				t.Errorf("len = %d; want %d", len(c), tc.want)
			}
		})
	}
}

// TestConstructors_Errors verifies sentinel classification.
func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name string
		opts []builder.BuilderOption
		cons builder.Constructor
		err  error
	}{
		{"RandomZero", seeded, builder.RandomUniform(0), builder.ErrTooFewSamples},
		{"RandomNoRNG", nil, builder.RandomUniform(5), builder.ErrNeedRandSource},
		{"GridZeroDim", seeded, builder.JitteredGrid(0, 3), builder.ErrTooFewSamples},
		{"GridNoRNG", nil, builder.JitteredGrid(3, 3), builder.ErrNeedRandSource},
		{"RingTooFew", nil, builder.Ring(2, 10), builder.ErrTooFewSamples},
		{"RingBadRadius", nil, builder.Ring(8, 0), builder.ErrBadRadius},
		{"CornersBadSpan", nil, builder.FourCorners(-1), builder.ErrBadSpan},
		{"CollinearTooFew", nil, builder.Collinear(1), builder.ErrTooFewSamples},
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildCloud(tc.opts, tc.cons)
			if !errors.Is(err, tc.err) {
				t.Errorf("BuildCloud error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestRandomUniform_Determinism: same seed twice gives the same cloud;
// another seed gives a different one.
func TestRandomUniform_Determinism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) cloud.Cloud {
		c, err := builder.BuildCloud(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomUniform(64),
		)
		if err != nil {
			t.Fatalf("BuildCloud error: %v", err)
		}
		return c
	}

	a, b := build(42), build(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identically seeded builds", i)
		}
	}

	other := build(43)
	same := true
	for i := range a {
		if a[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical clouds")
	}
}

// TestWithBox_Containment rescales constructors into a custom frame.
func TestWithBox_Containment(t *testing.T) {
	t.Parallel()

	box := orb.Bound{Min: orb.Point{-50, 200}, Max: orb.Point{-10, 260}}
	c, err := builder.BuildCloud(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithBox(box)},
		builder.RandomUniform(50),
		builder.JitteredGrid(5, 5),
	)
	if err != nil {
		t.Fatalf("BuildCloud error: %v", err)
	}
	if len(c) != 75 {
		t.Fatalf("composed length = %d; want 75", len(c))
	}
	if !inBox(c, box) {
		t.Error("samples escaped the configured box")
	}
}

// TestJitteredGrid_ExactLattice: jitter 0 needs no RNG and lands on cell
// centres exactly.
func TestJitteredGrid_ExactLattice(t *testing.T) {
	t.Parallel()

	c, err := builder.BuildCloud(
		[]builder.BuilderOption{builder.WithJitter(0)},
		builder.JitteredGrid(2, 2),
	)
	if err != nil {
		t.Fatalf("BuildCloud error: %v", err)
	}

	want := []orb.Point{{25, 25}, {75, 25}, {25, 75}, {75, 75}}
	for i, p := range want {
		if c[i].X != p.X() || c[i].Y != p.Y() {
			t.Errorf("sample %d = (%g,%g); want %v", i, c[i].X, c[i].Y, p)
		}
	}
}

// TestRing_Geometry: every sample sits on the circle around the box centre.
func TestRing_Geometry(t *testing.T) {
	t.Parallel()

	const radius = 30.0
	c, err := builder.BuildCloud(nil, builder.Ring(16, radius))
	if err != nil {
		t.Fatalf("BuildCloud error: %v", err)
	}

	for i, s := range c {
		d := math.Hypot(s.X-50, s.Y-50)
		if math.Abs(d-radius) > 1e-9 {
			t.Errorf("sample %d at distance %g; want %g", i, d, radius)
		}
	}
}

// TestCollinear_IsDegenerate: consecutive triples have zero signed area.
func TestCollinear_IsDegenerate(t *testing.T) {
	t.Parallel()

	c, err := builder.BuildCloud(nil, builder.Collinear(6))
	if err != nil {
		t.Fatalf("BuildCloud error: %v", err)
	}

	for i := 0; i+2 < len(c); i++ {
		a, b, d := c[i], c[i+1], c[i+2]
		cross := (b.X-a.X)*(d.Y-a.Y) - (b.Y-a.Y)*(d.X-a.X)
		if math.Abs(cross) > 1e-9 {
			t.Errorf("triple %d not collinear: cross=%g", i, cross)
		}
	}
}

// TestFieldValues: samples carry the configured field, default plane first.
func TestFieldValues(t *testing.T) {
	t.Parallel()

	c, err := builder.BuildCloud(nil, builder.FourCorners(10))
	if err != nil {
		t.Fatalf("BuildCloud error: %v", err)
	}
	// Default field is 2x - 3y + 5 at the box minimum (0,0).
	if c[0].Z != 5 {
		t.Errorf("corner (0,0) z = %g; want 5", c[0].Z)
	}
	if c[3].Z != 2*10-3*10+5 {
		t.Errorf("corner (10,10) z = %g; want %g", c[3].Z, 2.0*10-3*10+5)
	}

	flat, err := builder.BuildCloud(
		[]builder.BuilderOption{builder.WithField(func(x, y float64) float64 { return 7 })},
		builder.Ring(8, 20),
	)
	if err != nil {
		t.Fatalf("BuildCloud error: %v", err)
	}
	for i, s := range flat {
		if s.Z != 7 {
			t.Errorf("sample %d z = %g; want 7", i, s.Z)
		}
	}
}

// TestOptionPanics: option constructors reject meaningless inputs loudly.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func()
	}{
		{"WithRandNil", func() { builder.WithRand(nil) }},
		{"WithFieldNil", func() { builder.WithField(nil) }},
		{"WithBoxEmpty", func() { builder.WithBox(orb.Bound{}) }},
		{"WithJitterNegative", func() { builder.WithJitter(-0.1) }},
		{"WithJitterTooLarge", func() { builder.WithJitter(0.5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}
