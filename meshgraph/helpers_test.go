package meshgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
	"github.com/katalvlaran/quadedge/quadid"
)

// fixturePoints returns 5 points: a large CCW bootstrap triangle (indices
// 0-2) followed by two points strictly interior to it (indices 3-4), so
// buildTriangulation can seed the mesh by hand the same way the package's
// own insertion tests do, then insert the rest through the public API.
func fixturePoints() []geom2d.Point {
	return []geom2d.Point{
		{X: 0, Y: -100}, // A
		{X: 100, Y: 0},  // B
		{X: 0, Y: 100},  // C
		{X: 20, Y: 0},   // D, interior
		{X: 50, Y: 10},  // E, interior
	}
}

// buildTriangulation seeds a Triangulation with pts[0], pts[1], pts[2] as a
// hand-built bootstrap triangle (mirroring the package's own low-level
// insertion tests), then inserts every remaining point through
// InsertDelaunayVertex.
func buildTriangulation(t *testing.T, pts []geom2d.Point) *delaunay.Triangulation {
	t.Helper()
	require.GreaterOrEqual(t, len(pts), 3)

	tri := delaunay.NewTriangulation()
	m := tri.Mesh()

	a, b, c := pts[0], pts[1], pts[2]
	va := m.InsertVertex(a)
	vb := m.InsertVertex(b)
	vc := m.InsertVertex(c)
	tri.IndexVertex(va, a)
	tri.IndexVertex(vb, b)
	tri.IndexVertex(vc, c)

	outer := m.InsertFace(geom2d.InfiniteSite())

	e := m.MakeEdge(va, vb, outer, outer)
	f, err := m.ConnectVertex(e, vc)
	require.NoError(t, err)
	g, err := m.ConnectPrimal(f, e)
	require.NoError(t, err)

	interior := m.InsertFace(geom2d.FiniteSite(geom2d.Point{}))
	require.NoError(t, m.SetLeft(e, interior))
	require.NoError(t, m.SetLeft(f, interior))
	require.NoError(t, m.SetLeft(g, interior))

	for _, p := range pts[3:] {
		require.NoError(t, tri.InsertDelaunayVertex(p))
	}

	return tri
}

// vertexAt returns the VertexId whose coordinates equal p, by scanning
// every live edge's endpoints. Neither the hand-built bootstrap triangle
// nor InsertDelaunayVertex return the VertexId they assigned, so tests
// that need to name a specific vertex look it up by coordinates instead.
func vertexAt(t *testing.T, tri *delaunay.Triangulation, p geom2d.Point) mesh.VertexId {
	t.Helper()
	m := tri.Mesh()
	e, ok := m.FirstLivePrimal()
	for ok {
		for _, v := range []mesh.VertexId{orgOf(t, m, e), destOf(t, m, e)} {
			attr, err := m.VertexAttr(v)
			require.NoError(t, err)
			if attr == p {
				return v
			}
		}
		e, ok = m.NextLivePrimal(e)
	}
	t.Fatalf("no vertex found at %v", p)
	return 0
}

func orgOf(t *testing.T, m *mesh.Mesh[geom2d.Point, geom2d.Site], e quadid.PEdgeID) mesh.VertexId {
	t.Helper()
	v, err := m.Org(e)
	require.NoError(t, err)
	return v
}

func destOf(t *testing.T, m *mesh.Mesh[geom2d.Point, geom2d.Site], e quadid.PEdgeID) mesh.VertexId {
	t.Helper()
	v, err := m.Dest(e)
	require.NoError(t, err)
	return v
}
