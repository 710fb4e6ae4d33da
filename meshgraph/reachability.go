package meshgraph

import (
	"github.com/katalvlaran/quadedge/bfs"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/mesh"
)

// Reachable returns the set of vertices reachable from from by walking
// live Delaunay edges, from included. Useful once constrained edges or
// hull-only deletions can split a mesh into disconnected regions (see
// DESIGN.md); for a plain incrementally-built triangulation with no
// deletions this is always every vertex.
//
// Returns ErrVertexNotFound if from is not a live vertex.
func Reachable(t *delaunay.Triangulation, from mesh.VertexId) (map[mesh.VertexId]bool, error) {
	g, err := Export(t)
	if err != nil {
		return nil, err
	}

	fromLabel := VertexLabel(from)
	if !g.HasVertex(fromLabel) {
		return nil, ErrVertexNotFound
	}

	result, err := bfs.BFS(g, fromLabel)
	if err != nil {
		return nil, err
	}

	out := make(map[mesh.VertexId]bool, len(result.Order)+1)
	out[from] = true
	for _, label := range result.Order {
		v, err := ParseVertexLabel(label)
		if err != nil {
			return nil, err
		}
		out[v] = true
	}

	return out, nil
}
