package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvfractal/curve"
	"github.com/katalvlaran/lvfractal/geom"
)

func rose(a, k float64, segments int) curve.Config {
	c := curve.Default()
	c.Type = curve.Rose
	c.A, c.K, c.Segments = a, k, segments
	return c
}

func TestPoints_RoseReference(t *testing.T) {
	t.Parallel()

	pts := curve.Points(rose(1, 6, 512))
	require.Len(t, pts, 513)
	require.Equal(t, geom.P(0.5, 0, 0), pts[0])

	// t = 20π closes the curve
	last := pts[len(pts)-1]
	require.InDelta(t, 0.5, last.X, 1e-9)
	require.InDelta(t, 0, last.Y, 1e-9)

	for _, p := range pts {
		require.Zero(t, p.Z)
		require.LessOrEqual(t, r3.Norm(p), 0.5+1e-12)
	}
}

func TestPoints_BitIdentical(t *testing.T) {
	t.Parallel()

	for _, typ := range curve.Types {
		cfg := curve.Default()
		cfg.Type = typ
		cfg.Segments = 1000
		a := curve.Points(cfg)
		b := curve.Points(cfg)
		require.Len(t, a, len(b))
		for i := range a {
			require.True(t, math.Float64bits(a[i].X) == math.Float64bits(b[i].X) &&
				math.Float64bits(a[i].Y) == math.Float64bits(b[i].Y), "%s sample %d", typ, i)
		}
	}
}

func TestPoints_SpirographStart(t *testing.T) {
	t.Parallel()

	cfg := curve.Config{Type: curve.Hypotrochoid, Segments: 256, R: 1, SmallR: 0.25, D: 0.2}
	p0 := curve.Points(cfg)[0]
	require.True(t, scalar.EqualWithinAbs(p0.X, (0.75+0.2)*0.5, 1e-15))
	require.Zero(t, p0.Y)

	cfg.Type = curve.Epitrochoid
	p0 = curve.Points(cfg)[0]
	require.True(t, scalar.EqualWithinAbs(p0.X, (1.25-0.2)*0.5, 1e-15))
	require.Zero(t, p0.Y)
}

func TestPoints_SpirographEnvelope(t *testing.T) {
	t.Parallel()

	cfg := curve.Config{Type: curve.Hypotrochoid, Segments: 4096, R: 3, SmallR: 1.1, D: 0.7}
	for _, p := range curve.Points(cfg) {
		require.LessOrEqual(t, r3.Norm(p), (1.9+0.7)*0.5+1e-12)
		require.GreaterOrEqual(t, r3.Norm(p), (1.9-0.7)*0.5-1e-12)
	}

	cfg.Type = curve.Epitrochoid
	for _, p := range curve.Points(cfg) {
		require.LessOrEqual(t, r3.Norm(p), (4.1+0.7)*0.5+1e-12)
		require.GreaterOrEqual(t, r3.Norm(p), (4.1-0.7)*0.5-1e-12)
	}
}

func TestConfig_Clamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   curve.Config
		want curve.Config
	}{
		{
			name: "defaults untouched",
			in:   curve.Default(),
			want: curve.Default(),
		},
		{
			name: "lower bounds",
			in:   curve.Config{Segments: 1, A: 0, K: 0, R: 0, SmallR: 0, D: 0},
			want: curve.Config{Segments: 64, A: 0.1, K: 0.5, R: 0.1, SmallR: 0.1, D: 0.1},
		},
		{
			name: "upper bounds",
			in:   curve.Config{Segments: 1 << 20, A: 50, K: 99, R: 20, SmallR: 20, D: 20},
			want: curve.Config{Segments: 4096, A: 10, K: 32, R: 10, SmallR: 9.9, D: 9.9},
		},
		{
			name: "r follows R and d follows r",
			in:   curve.Config{Segments: 512, A: 1, K: 6, R: 2, SmallR: 3, D: 2.5},
			want: curve.Config{Segments: 512, A: 1, K: 6, R: 2, SmallR: 1.9, D: 1.9},
		},
		{
			name: "nan retains lower bound",
			in:   curve.Config{Segments: 512, A: math.NaN(), K: math.NaN(), R: 1, SmallR: math.NaN(), D: math.NaN()},
			want: curve.Config{Segments: 512, A: 0.1, K: 0.5, R: 1, SmallR: 0.1, D: 0.1},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.in.Clamp()
			require.Equal(t, tc.want.Segments, got.Segments)
			require.InDelta(t, tc.want.A, got.A, 1e-12)
			require.InDelta(t, tc.want.K, got.K, 1e-12)
			require.InDelta(t, tc.want.R, got.R, 1e-12)
			require.InDelta(t, tc.want.SmallR, got.SmallR, 1e-12)
			require.InDelta(t, tc.want.D, got.D, 1e-12)
		})
	}
}

func TestPoints_SegmentsClamped(t *testing.T) {
	t.Parallel()

	require.Len(t, curve.Points(rose(1, 3, 2)), 65)
	require.Len(t, curve.Points(rose(1, 3, 100000)), 4097)
	require.Equal(t, 65, curve.Steps(rose(1, 3, 2)))
}

func TestPoints_FiniteEverywhere(t *testing.T) {
	t.Parallel()

	// R at its minimum collapses r's range; the sampler must stay finite.
	for _, typ := range curve.Types {
		cfg := curve.Config{Type: typ, Segments: 64, A: 1, K: 1, R: 0.1, SmallR: 5, D: 5}
		for _, p := range curve.Points(cfg) {
			require.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0))
			require.False(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0))
		}
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for _, typ := range curve.Types {
		got, err := curve.ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}
	_, err := curve.ParseType("lissajous")
	require.ErrorIs(t, err, curve.ErrUnknownType)
	require.Equal(t, "unknown", curve.Type(9).String())
}
