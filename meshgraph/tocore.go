package meshgraph

import (
	"math"
	"strconv"

	"github.com/katalvlaran/quadedge/core"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
)

// DistanceScale converts a Euclidean edge length (float32, mesh coordinate
// units) into the fixed-point int64 weight core.Graph stores. A unit-length
// edge costs DistanceScale; sub-unit distances still round to a distinct,
// non-zero weight down to 1/DistanceScale of a coordinate unit.
const DistanceScale = 1 << 16

// VertexLabel stringifies a mesh.VertexId the way every meshgraph export
// labels core.Graph vertices, so callers can map a core.Graph ID back to
// a VertexId with ParseVertexLabel.
func VertexLabel(id mesh.VertexId) string {
	return strconv.Itoa(int(id))
}

// ParseVertexLabel inverts VertexLabel. Returns an error if label was not
// produced by VertexLabel (non-numeric or negative).
func ParseVertexLabel(label string) (mesh.VertexId, error) {
	n, err := strconv.Atoi(label)
	if err != nil || n < 0 {
		return 0, ErrVertexNotFound
	}
	return mesh.VertexId(n), nil
}

// Export walks every live primal edge of t once and returns an undirected,
// weighted core.Graph whose vertex IDs are VertexLabel(v) and whose edge
// weights are round(DistanceScale * Euclidean distance between endpoints).
//
// Export visits each physical edge exactly once keyed by quadid.PEdgeID.Quad,
// since a primal edge and its Sym share one quad-edge record.
func Export(t *delaunay.Triangulation) (*core.Graph, error) {
	m := t.Mesh()
	g := core.NewGraph(core.WithWeighted())

	seenVertex := make(map[mesh.VertexId]bool)
	addVertex := func(v mesh.VertexId) error {
		if seenVertex[v] {
			return nil
		}
		seenVertex[v] = true
		return g.AddVertex(VertexLabel(v))
	}

	seenQuad := make(map[uint32]bool)
	e, ok := m.FirstLivePrimal()
	for ok {
		quad := e.Quad()
		if !seenQuad[quad] {
			seenQuad[quad] = true

			org, err := m.Org(e)
			if err != nil {
				return nil, err
			}
			dest, err := m.Dest(e)
			if err != nil {
				return nil, err
			}
			if err := addVertex(org); err != nil {
				return nil, err
			}
			if err := addVertex(dest); err != nil {
				return nil, err
			}

			orgPt, err := m.VertexAttr(org)
			if err != nil {
				return nil, err
			}
			destPt, err := m.VertexAttr(dest)
			if err != nil {
				return nil, err
			}
			weight := int64(math.Round(euclidean(orgPt, destPt) * DistanceScale))
			if _, err := g.AddEdge(VertexLabel(org), VertexLabel(dest), weight); err != nil {
				return nil, err
			}
		}
		e, ok = m.NextLivePrimal(e)
	}

	return g, nil
}

func euclidean(a, b geom2d.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// collectWeightedAdjacency walks every live primal edge of t once and
// returns, for each live vertex, the set of its neighbors (symmetric: both
// directions recorded), plus every vertex's coordinates keyed by VertexId.
func collectWeightedAdjacency(t *delaunay.Triangulation) (map[mesh.VertexId]map[mesh.VertexId]bool, map[mesh.VertexId]geom2d.Point, error) {
	m := t.Mesh()

	adj := make(map[mesh.VertexId]map[mesh.VertexId]bool)
	addEdge := func(a, b mesh.VertexId) {
		if adj[a] == nil {
			adj[a] = make(map[mesh.VertexId]bool)
		}
		if adj[b] == nil {
			adj[b] = make(map[mesh.VertexId]bool)
		}
		adj[a][b] = true
		adj[b][a] = true
	}

	e, ok := m.FirstLivePrimal()
	for ok {
		org, err := m.Org(e)
		if err != nil {
			return nil, nil, err
		}
		dest, err := m.Dest(e)
		if err != nil {
			return nil, nil, err
		}
		addEdge(org, dest)
		e, ok = m.NextLivePrimal(e)
	}

	points := make(map[mesh.VertexId]geom2d.Point, len(adj))
	for v := range adj {
		p, err := m.VertexAttr(v)
		if err != nil {
			return nil, nil, err
		}
		points[v] = p
	}

	return adj, points, nil
}
