package meshgraph

import (
	"github.com/katalvlaran/quadedge/prim_kruskal"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/mesh"
)

// MSTEdge is one edge of a EuclideanMST result, with endpoints resolved
// back to mesh.VertexId and Weight the true Euclidean length (not the
// fixed-point core.Graph weight).
type MSTEdge struct {
	From, To mesh.VertexId
	Length   float64
}

// EuclideanMST returns the Euclidean minimum spanning tree of t's inserted
// point set, computed by running Kruskal's algorithm over the exported
// Delaunay 1-skeleton rather than the full O(n^2) candidate edge set — the
// EMST of a point set is always a subgraph of its Delaunay triangulation,
// so every MST edge is guaranteed to already be present in the export.
//
// Returns ErrEmptyTriangulation if t has no vertices, or ErrDisconnected
// if the mesh's 1-skeleton does not span every vertex (should not happen
// for a triangulation produced by bootstrap+incremental insertion without
// DeleteVertex calls).
func EuclideanMST(t *delaunay.Triangulation) ([]MSTEdge, float64, error) {
	g, err := Export(t)
	if err != nil {
		return nil, 0, err
	}
	if g.VertexCount() == 0 {
		return nil, 0, ErrEmptyTriangulation
	}

	edges, totalWeight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, 0, err
	}
	if len(edges) != g.VertexCount()-1 {
		return nil, 0, ErrDisconnected
	}

	out := make([]MSTEdge, len(edges))
	for i, e := range edges {
		from, err := ParseVertexLabel(e.From)
		if err != nil {
			return nil, 0, err
		}
		to, err := ParseVertexLabel(e.To)
		if err != nil {
			return nil, 0, err
		}
		out[i] = MSTEdge{From: from, To: to, Length: float64(e.Weight) / DistanceScale}
	}

	return out, float64(totalWeight) / DistanceScale, nil
}
