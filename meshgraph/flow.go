package meshgraph

import (
	"math"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/mesh"
)

// edgeCapacity turns a Euclidean edge length into a max-flow capacity: short
// edges (vertices packed close together) carry more capacity than long ones,
// so the bottleneck of a hull flow tends to follow the mesh's sparsest
// region rather than its densest one.
func edgeCapacity(length float64) float64 {
	if length <= 0 {
		return math.MaxFloat64
	}
	return 1.0 / length
}

// MaxHullFlow computes the maximum flow from source to sink through t's
// Delaunay 1-skeleton, treating every live primal edge as an undirected,
// symmetric pipe (both directions share one capacity, consistent with
// Export's undirected core.Graph) with capacity inversely proportional to
// the edge's Euclidean length.
//
// This is a direct Edmonds-Karp implementation (BFS shortest augmenting
// path, repeated until none remain) over the triangulation's own adjacency
// rather than a wrapper around a general-purpose max-flow package: the
// mesh's export is already an undirected core.Graph, and a residual
// network only needs two float64 capacities per quad-edge to track, so the
// BFS loop is written directly against mesh.VertexId adjacency.
//
// Returns ErrVertexNotFound if source or sink is not a live vertex,
// ErrEmptyTriangulation if source == sink.
func MaxHullFlow(t *delaunay.Triangulation, source, sink mesh.VertexId) (float64, error) {
	adj, points, err := collectWeightedAdjacency(t)
	if err != nil {
		return 0, err
	}
	if _, ok := adj[source]; !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok := adj[sink]; !ok {
		return 0, ErrVertexNotFound
	}
	if source == sink {
		return 0, ErrEmptyTriangulation
	}

	residual := make(map[mesh.VertexId]map[mesh.VertexId]float64, len(adj))
	for u, nbrs := range adj {
		residual[u] = make(map[mesh.VertexId]float64, len(nbrs))
		for v := range nbrs {
			residual[u][v] = edgeCapacity(euclidean(points[u], points[v]))
		}
	}

	var maxFlow float64
	for {
		path, bottleneck := bfsAugmentingPath(residual, source, sink)
		if path == nil {
			break
		}
		maxFlow += bottleneck
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds a shortest (fewest-edge) path from source to sink
// through edges with positive residual capacity, returning the path and its
// bottleneck capacity, or (nil, 0) if sink is unreachable.
func bfsAugmentingPath(residual map[mesh.VertexId]map[mesh.VertexId]float64, source, sink mesh.VertexId) ([]mesh.VertexId, float64) {
	const epsilon = 1e-12

	parent := map[mesh.VertexId]mesh.VertexId{source: source}
	queue := []mesh.VertexId{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for v, cap := range residual[u] {
			if cap <= epsilon {
				continue
			}
			if _, visited := parent[v]; visited {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}

	if _, reached := parent[sink]; !reached {
		return nil, 0
	}

	path := []mesh.VertexId{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	bottleneck := math.MaxFloat64
	for i := 0; i < len(path)-1; i++ {
		if c := residual[path[i]][path[i+1]]; c < bottleneck {
			bottleneck = c
		}
	}

	return path, bottleneck
}
