package meshgraph

import (
	"github.com/katalvlaran/quadedge/dijkstra"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/mesh"
)

// ShortestPath returns the vertex sequence (from, ..., to inclusive) of the
// shortest path between from and to along Delaunay edges, weighted by
// Euclidean length, and the path's total length. This is an approximate
// planar geodesic: it can only travel along edges the triangulation
// actually has, so it may overshoot the true straight-line distance around
// concave regions of the point set.
//
// Returns ErrVertexNotFound if either endpoint is not a live vertex, or the
// dijkstra package's own sentinel error if no path exists.
func ShortestPath(t *delaunay.Triangulation, from, to mesh.VertexId) ([]mesh.VertexId, float64, error) {
	g, err := Export(t)
	if err != nil {
		return nil, 0, err
	}

	fromLabel, toLabel := VertexLabel(from), VertexLabel(to)
	if !g.HasVertex(fromLabel) {
		return nil, 0, ErrVertexNotFound
	}
	if !g.HasVertex(toLabel) {
		return nil, 0, ErrVertexNotFound
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(fromLabel), dijkstra.WithReturnPath())
	if err != nil {
		return nil, 0, err
	}

	d, reached := dist[toLabel]
	if !reached {
		return nil, 0, ErrDisconnected
	}

	labels := []string{toLabel}
	for cur := toLabel; cur != fromLabel; {
		parent, ok := prev[cur]
		if !ok {
			return nil, 0, ErrDisconnected
		}
		labels = append(labels, parent)
		cur = parent
	}

	path := make([]mesh.VertexId, len(labels))
	for i, label := range labels {
		v, err := ParseVertexLabel(label)
		if err != nil {
			return nil, 0, err
		}
		path[len(labels)-1-i] = v
	}

	return path, float64(d) / DistanceScale, nil
}
