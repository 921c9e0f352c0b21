package arrangement_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvfractal/arrangement"
	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/polyhedra"
)

var (
	allRule      = arrangement.Rule{KeepVertices: true, KeepEdges: true, KeepFaces: true, KeepCenter: true}
	verticesOnly = arrangement.Rule{KeepVertices: true}
)

func TestResolve_Order(t *testing.T) {
	t.Parallel()

	cube := polyhedra.MustFeatures(polyhedra.Cube)
	ico := polyhedra.MustFeatures(polyhedra.Icosahedron)
	tetra := polyhedra.MustFeatures(polyhedra.Tetrahedron)

	tests := []struct {
		name string
		g    arrangement.Geometry
		a    arrangement.Arrangement
		want polyhedra.FeatureSet
	}{
		{"geometry when no arrangement", arrangement.GeometryIcosahedron, arrangement.None, ico},
		{"arrangement wins over geometry", arrangement.GeometryIcosahedron, arrangement.Tetrahedron, tetra},
		{"freehand falls back to cube", arrangement.GeometryFreehand, arrangement.None, cube},
		{"unknown geometry falls back to cube", arrangement.Geometry(77), arrangement.None, cube},
		{"unknown arrangement falls back to cube", arrangement.GeometryOctahedron, arrangement.Arrangement(77), cube},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, arrangement.Resolve(tc.g, tc.a))
		})
	}
}

func TestPositions_ConcatenationOrder(t *testing.T) {
	t.Parallel()

	fs := polyhedra.MustFeatures(polyhedra.Cube)
	got := arrangement.Positions(arrangement.GeometryCube, allRule, 0, arrangement.None)

	require.Len(t, got, 8+12+6+1)
	require.Equal(t, fs.Vertices, got[:8])
	require.Equal(t, fs.Edges, got[8:20])
	require.Equal(t, fs.Faces, got[20:26])
	require.Equal(t, geom.Origin, got[26])
}

// TestPositions_ScalingRule checks offsets at scale r are the raw features
// multiplied elementwise by (1−r), for every rule and solid.
func TestPositions_ScalingRule(t *testing.T) {
	t.Parallel()

	rules := []arrangement.Rule{
		verticesOnly,
		{KeepEdges: true},
		{KeepFaces: true, KeepCenter: true},
		allRule,
	}
	for _, g := range arrangement.Geometries {
		for _, rule := range rules {
			for _, r := range []float64{0.1, 1.0 / 3, 0.5, 0.9} {
				raw := arrangement.Positions(g, rule, 0, arrangement.None)
				got := arrangement.Positions(g, rule, r, arrangement.None)
				want := geom.ScaleAll(raw, 1-r)
				if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
					t.Fatalf("%s %+v r=%v (-want +got):\n%s", g, rule, r, d)
				}
			}
		}
	}
}

func TestPositions_ScaleOneCollapsesToOrigin(t *testing.T) {
	t.Parallel()

	got := arrangement.Positions(arrangement.GeometryDodecahedron, allRule, 1, arrangement.None)
	require.Len(t, got, 20+30+12+1)
	for _, p := range got {
		require.Equal(t, 0.0, r3.Norm(p))
	}
}

func TestPositions_EmptyRule(t *testing.T) {
	t.Parallel()

	for _, a := range append([]arrangement.Arrangement{arrangement.None}, arrangement.Arrangements...) {
		got := arrangement.Positions(arrangement.GeometryCube, arrangement.Rule{}, 0.3, a)
		require.NotNil(t, got)
		require.Empty(t, got, a.String())
	}
	require.True(t, arrangement.Rule{}.Empty())
	require.False(t, verticesOnly.Empty())
}

func TestSpiral(t *testing.T) {
	t.Parallel()

	fs := arrangement.Resolve(arrangement.GeometryCube, arrangement.Spiral)
	require.Len(t, fs.Vertices, arrangement.SpiralPoints)
	require.Empty(t, fs.Edges)
	require.Empty(t, fs.Faces)

	require.InDelta(t, 0, fs.Vertices[0].X, 1e-15)
	require.Equal(t, 1.0, fs.Vertices[0].Y)
	require.Equal(t, -1.0, fs.Vertices[31].Y)
	for i, p := range fs.Vertices {
		require.InDelta(t, 1, r3.Norm(p), 1e-12, "point %d", i)
	}

	// deterministic
	require.Equal(t, fs, arrangement.Resolve(arrangement.GeometryTetrahedron, arrangement.Spiral))
}

func TestRandom_StatisticalInvariants(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10; i++ {
		fs := arrangement.Resolve(arrangement.GeometryCube, arrangement.Random)
		require.Len(t, fs.Vertices, arrangement.RandomPoints)
		for _, p := range fs.Vertices {
			require.InDelta(t, 1, r3.Norm(p), 1e-12)
		}
	}

	// Mean of many samples is close to the origin for a uniform sphere.
	var sum geom.Point3
	const draws = 200
	src := rand.New(rand.NewSource(7))
	for i := 0; i < draws; i++ {
		for _, p := range arrangement.Resolve(arrangement.GeometryCube, arrangement.Random, arrangement.WithRand(src)).Vertices {
			sum = r3.Add(sum, p)
		}
	}
	mean := r3.Scale(1.0/(draws*arrangement.RandomPoints), sum)
	assert.Less(t, r3.Norm(mean), 0.1)
}

func TestRandom_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a := arrangement.Positions(arrangement.GeometryCube, verticesOnly, 0.25, arrangement.Random, arrangement.WithSeed(42))
	b := arrangement.Positions(arrangement.GeometryCube, verticesOnly, 0.25, arrangement.Random, arrangement.WithSeed(42))
	c := arrangement.Positions(arrangement.GeometryCube, verticesOnly, 0.25, arrangement.Random, arrangement.WithSeed(43))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	for _, p := range a {
		require.InDelta(t, 0.75, r3.Norm(p), 1e-12)
	}
}

func TestRandom_OnlyVerticesAndCenterCount(t *testing.T) {
	t.Parallel()

	got := arrangement.Positions(arrangement.GeometryCube,
		arrangement.Rule{KeepEdges: true, KeepFaces: true, KeepCenter: true}, 0.3, arrangement.Random)
	require.Equal(t, []geom.Point3{geom.Origin}, got)
}

func TestSource(t *testing.T) {
	t.Parallel()

	det := arrangement.NewSource(arrangement.GeometryOctahedron, allRule, 0.4, arrangement.None)
	require.Equal(t, 6+12+8+1, det.Count())
	first := det.Next()
	require.Len(t, first, det.Count())
	require.Equal(t, first, det.Next())

	rnd := arrangement.NewSource(arrangement.GeometryCube, allRule, 0.4, arrangement.Random, arrangement.WithSeed(1))
	require.Equal(t, arrangement.RandomPoints+1, rnd.Count())
	x, y := rnd.Next(), rnd.Next()
	require.Len(t, x, rnd.Count())
	require.Len(t, y, rnd.Count())
	require.NotEqual(t, x, y, "random source must redraw per call")

	empty := arrangement.NewSource(arrangement.GeometryCube, arrangement.Rule{}, 0.4, arrangement.Random)
	require.Zero(t, empty.Count())
}

func TestRule_Kept(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"Vertices", "Edges", "Faces", "Center"}, allRule.Kept())
	require.Equal(t, []string{"Faces"}, arrangement.Rule{KeepFaces: true}.Kept())
	require.Nil(t, arrangement.Rule{}.Kept())
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, g := range arrangement.Geometries {
		got, err := arrangement.ParseGeometry(g.String())
		require.NoError(t, err)
		require.Equal(t, g, got)
	}
	_, err := arrangement.ParseGeometry("torus")
	require.ErrorIs(t, err, arrangement.ErrUnknownGeometry)

	for _, a := range arrangement.Arrangements {
		got, err := arrangement.ParseArrangement(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	for _, s := range []string{"", "none", " NONE "} {
		got, err := arrangement.ParseArrangement(s)
		require.NoError(t, err)
		require.Equal(t, arrangement.None, got)
	}
	_, err = arrangement.ParseArrangement("lattice")
	require.ErrorIs(t, err, arrangement.ErrUnknownArrangement)
}

func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { arrangement.WithRand(nil) })
}

func TestSpiral_GoldenAngleSpacing(t *testing.T) {
	t.Parallel()

	fs := arrangement.Resolve(arrangement.GeometryCube, arrangement.Spiral)
	// consecutive longitudes differ by the golden angle (mod 2π)
	p1, p2 := fs.Vertices[1], fs.Vertices[2]
	d := math.Atan2(p2.Z, p2.X) - math.Atan2(p1.Z, p1.X)
	d = math.Mod(d+4*math.Pi, 2*math.Pi)
	require.InDelta(t, math.Mod(math.Pi*(3-math.Sqrt(5)), 2*math.Pi), d, 1e-12)
}
