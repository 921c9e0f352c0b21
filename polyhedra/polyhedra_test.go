package polyhedra_test

import (
	"errors"
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/polyhedra"
)

// TestFeatures_PlatonicCounts checks (V,E,F) for every solid.
func TestFeatures_PlatonicCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		solid   polyhedra.Solid
		v, e, f int
	}{
		{polyhedra.Cube, 8, 12, 6},
		{polyhedra.Tetrahedron, 4, 6, 4},
		{polyhedra.Octahedron, 6, 12, 8},
		{polyhedra.Icosahedron, 12, 30, 20},
		{polyhedra.Dodecahedron, 20, 30, 12},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.solid.String(), func(t *testing.T) {
			t.Parallel()

			fs, err := polyhedra.Features(tc.solid)
			require.NoError(t, err)
			assert.Len(t, fs.Vertices, tc.v, "vertices")
			assert.Len(t, fs.Edges, tc.e, "edges")
			assert.Len(t, fs.Faces, tc.f, "faces")
			assert.Equal(t, tc.v+tc.e+tc.f, fs.Len())

			v, e, f, err := polyhedra.Counts(tc.solid)
			require.NoError(t, err)
			assert.Equal(t, []int{tc.v, tc.e, tc.f}, []int{v, e, f})
		})
	}
}

func TestFeatures_Cube(t *testing.T) {
	t.Parallel()

	fs := polyhedra.MustFeatures(polyhedra.Cube)

	require.Equal(t, geom.P(-1, -1, -1), fs.Vertices[0])
	require.Equal(t, geom.P(1, 1, 1), fs.Vertices[7])
	require.Equal(t, geom.P(0, -1, -1), fs.Edges[0])
	require.Equal(t, geom.P(1, 1, 0), fs.Edges[11])
	require.Equal(t, []geom.Point3{
		geom.P(1, 0, 0), geom.P(-1, 0, 0),
		geom.P(0, 1, 0), geom.P(0, -1, 0),
		geom.P(0, 0, 1), geom.P(0, 0, -1),
	}, fs.Faces)
}

func TestFeatures_OctahedronFaces(t *testing.T) {
	t.Parallel()

	fs := polyhedra.MustFeatures(polyhedra.Octahedron)
	for _, f := range fs.Faces {
		for _, c := range []float64{f.X, f.Y, f.Z} {
			require.True(t, scalar.EqualWithinAbs(math.Abs(c), 1.0/3, 1e-12), "face %v", f)
		}
	}
	for _, e := range fs.Edges {
		require.InDelta(t, math.Sqrt(0.5), r3.Norm(e), 1e-12)
	}
}

func TestFeatures_TetrahedronFacesOppositeVertices(t *testing.T) {
	t.Parallel()

	fs := polyhedra.MustFeatures(polyhedra.Tetrahedron)
	// Every face centroid is -1/3 of the vertex it does not contain.
	require.InDelta(t, -1.0/3, fs.Faces[0].X/fs.Vertices[3].X, 1e-12)
	for _, f := range fs.Faces {
		require.InDelta(t, 1.0/math.Sqrt(3), r3.Norm(f), 1e-12)
	}
}

// TestFeatures_IcosahedronRegular checks the tolerance search produced a
// regular solid: all edge midpoints and face centroids share one radius.
func TestFeatures_IcosahedronRegular(t *testing.T) {
	t.Parallel()

	fs := polyhedra.MustFeatures(polyhedra.Icosahedron)
	vr := r3.Norm(fs.Vertices[0])
	er := r3.Norm(fs.Edges[0])
	fr := r3.Norm(fs.Faces[0])
	require.InDelta(t, math.Sqrt(1+polyhedra.Phi*polyhedra.Phi), vr, 1e-12)
	for _, e := range fs.Edges {
		require.InDelta(t, er, r3.Norm(e), 1e-9)
	}
	for _, f := range fs.Faces {
		require.InDelta(t, fr, r3.Norm(f), 1e-9)
	}
	require.Less(t, fr, er)
	require.Less(t, er, vr)
}

func TestFeatures_DodecahedronIsDual(t *testing.T) {
	t.Parallel()

	ico := polyhedra.MustFeatures(polyhedra.Icosahedron)
	dod := polyhedra.MustFeatures(polyhedra.Dodecahedron)

	require.Equal(t, ico.Faces, dod.Vertices)
	require.Equal(t, ico.Vertices, dod.Faces)

	// every vertex has exactly three edge midpoints at half the edge length
	sk, err := polyhedra.Skeleton(polyhedra.Dodecahedron)
	require.NoError(t, err)
	degree := make(map[int]int)
	for _, c := range sk {
		degree[c.U]++
		degree[c.V]++
	}
	require.Len(t, degree, 20)
	for v, d := range degree {
		require.Equal(t, 3, d, "vertex %d", v)
	}
}

func TestSkeleton_MidpointsMatchEdges(t *testing.T) {
	t.Parallel()

	byCoords := func(pts []geom.Point3) []geom.Point3 {
		sort.Slice(pts, func(i, j int) bool {
			a, b := pts[i], pts[j]
			if a.X != b.X {
				return a.X < b.X
			}
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.Z < b.Z
		})
		return pts
	}

	for _, s := range polyhedra.Solids {
		fs := polyhedra.MustFeatures(s)
		sk, err := polyhedra.Skeleton(s)
		require.NoError(t, err)
		require.Len(t, sk, len(fs.Edges), s.String())

		mids := make([]geom.Point3, 0, len(sk))
		for _, c := range sk {
			require.Less(t, c.U, c.V)
			mids = append(mids, geom.Midpoint(fs.Vertices[c.U], fs.Vertices[c.V]))
		}
		if d := cmp.Diff(byCoords(fs.Edges), byCoords(mids), cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("%s: edge features differ from skeleton midpoints (-want +got):\n%s", s, d)
		}
	}
}

func TestFeatures_ReturnsCopies(t *testing.T) {
	t.Parallel()

	a := polyhedra.MustFeatures(polyhedra.Cube)
	a.Vertices[0] = geom.P(42, 42, 42)

	b := polyhedra.MustFeatures(polyhedra.Cube)
	require.Equal(t, geom.P(-1, -1, -1), b.Vertices[0])
}

func TestFeatures_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	counts := make([]int, 32)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i] = polyhedra.MustFeatures(polyhedra.Solids[i%len(polyhedra.Solids)]).Len()
		}(i)
	}
	wg.Wait()

	want := []int{26, 14, 26, 62, 62}
	for i, c := range counts {
		require.Equal(t, want[i%len(want)], c)
	}
}

func TestUnknownSolid(t *testing.T) {
	t.Parallel()

	_, err := polyhedra.Features(polyhedra.Solid(99))
	require.True(t, errors.Is(err, polyhedra.ErrUnknownSolid))

	_, err = polyhedra.Skeleton(polyhedra.Solid(-1))
	require.ErrorIs(t, err, polyhedra.ErrUnknownSolid)

	_, _, _, err = polyhedra.Counts(polyhedra.Solid(5))
	require.ErrorIs(t, err, polyhedra.ErrUnknownSolid)

	require.Panics(t, func() { polyhedra.MustFeatures(polyhedra.Solid(7)) })
	require.False(t, polyhedra.Solid(7).Valid())
	require.Equal(t, "unknown", polyhedra.Solid(7).String())
}

func TestParseSolid(t *testing.T) {
	t.Parallel()

	for _, s := range polyhedra.Solids {
		got, err := polyhedra.ParseSolid(" " + s.String() + " ")
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := polyhedra.ParseSolid("ICOSAHEDRON")
	require.NoError(t, err)
	require.Equal(t, polyhedra.Icosahedron, got)

	_, err = polyhedra.ParseSolid("sphere")
	require.ErrorIs(t, err, polyhedra.ErrUnknownSolid)
}
