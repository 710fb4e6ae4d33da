package meshgraph

import (
	"sort"

	"github.com/katalvlaran/quadedge/matrix"
	"github.com/katalvlaran/quadedge/tsp"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
)

// ApproximateTour returns a closed tour visiting every inserted vertex of t
// once, built as a nearest-fan greedy walk over Delaunay adjacency (so the
// initial tour is cheap and already shaped by the mesh's locality) and then
// polished by tsp.TwoOpt, which needs the full pairwise distance matrix to
// evaluate candidate swaps regardless of how the seed tour was produced.
//
// Returns ErrEmptyTriangulation if t has fewer than 2 vertices (no tour to
// build).
func ApproximateTour(t *delaunay.Triangulation) ([]mesh.VertexId, float64, error) {
	ids, points, adj, err := collectVerticesAndAdjacency(t)
	if err != nil {
		return nil, 0, err
	}
	n := len(ids)
	if n < 2 {
		return nil, 0, ErrEmptyTriangulation
	}

	index := make(map[mesh.VertexId]int, n)
	for i, v := range ids {
		index[v] = i
	}

	seed := greedyNearestFan(ids, index, points, adj)

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := dist.Set(i, j, euclidean(points[i], points[j])); err != nil {
				return nil, 0, err
			}
		}
	}

	opts := tsp.DefaultOptions()
	opts.StartVertex = seed[0]
	opts.Algo = tsp.Christofides // unused by TwoOpt directly, kept for Options completeness

	polished, cost, err := tsp.TwoOpt(dist, closeTour(seed), opts)
	if err != nil {
		return nil, 0, err
	}

	out := make([]mesh.VertexId, 0, len(polished))
	for _, idx := range polished {
		out = append(out, ids[idx])
	}

	return out, cost, nil
}

// closeTour appends tour[0] to the end, turning an open Hamiltonian order
// into the closed-cycle shape tsp.TwoOpt requires.
func closeTour(tour []int) []int {
	closed := make([]int, len(tour)+1)
	copy(closed, tour)
	closed[len(tour)] = tour[0]
	return closed
}

// collectVerticesAndAdjacency returns every live vertex of t in ascending
// VertexId order, its coordinates in the same order, and an adjacency list
// (indices into the first two slices) built from the mesh's live primal
// edges.
func collectVerticesAndAdjacency(t *delaunay.Triangulation) ([]mesh.VertexId, []geom2d.Point, map[int][]int, error) {
	m := t.Mesh()

	seen := make(map[mesh.VertexId]bool)
	adjByVertex := make(map[mesh.VertexId]map[mesh.VertexId]bool)
	addEdge := func(a, b mesh.VertexId) {
		seen[a] = true
		seen[b] = true
		if adjByVertex[a] == nil {
			adjByVertex[a] = make(map[mesh.VertexId]bool)
		}
		if adjByVertex[b] == nil {
			adjByVertex[b] = make(map[mesh.VertexId]bool)
		}
		adjByVertex[a][b] = true
		adjByVertex[b][a] = true
	}

	e, ok := m.FirstLivePrimal()
	for ok {
		org, err := m.Org(e)
		if err != nil {
			return nil, nil, nil, err
		}
		dest, err := m.Dest(e)
		if err != nil {
			return nil, nil, nil, err
		}
		addEdge(org, dest)
		e, ok = m.NextLivePrimal(e)
	}

	ids := make([]mesh.VertexId, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[mesh.VertexId]int, len(ids))
	for i, v := range ids {
		index[v] = i
	}

	points := make([]geom2d.Point, len(ids))
	for i, v := range ids {
		p, err := m.VertexAttr(v)
		if err != nil {
			return nil, nil, nil, err
		}
		points[i] = p
	}

	adj := make(map[int][]int, len(ids))
	for v, nbrs := range adjByVertex {
		i := index[v]
		list := make([]int, 0, len(nbrs))
		for n := range nbrs {
			list = append(list, index[n])
		}
		sort.Ints(list)
		adj[i] = list
	}

	return ids, points, adj, nil
}

// greedyNearestFan builds an open Hamiltonian order starting at index 0: at
// each step it prefers an unvisited Delaunay neighbor of the current
// vertex (nearest by Euclidean distance), falling back to the nearest
// unvisited vertex overall when every neighbor has already been visited.
func greedyNearestFan(ids []mesh.VertexId, index map[mesh.VertexId]int, points []geom2d.Point, adj map[int][]int) []int {
	n := len(ids)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	cur := 0
	visited[cur] = true
	order = append(order, cur)

	for len(order) < n {
		next := -1
		bestDist := 0.0
		for _, cand := range adj[cur] {
			if visited[cand] {
				continue
			}
			d := euclidean(points[cur], points[cand])
			if next == -1 || d < bestDist {
				next, bestDist = cand, d
			}
		}
		if next == -1 {
			for cand := 0; cand < n; cand++ {
				if visited[cand] {
					continue
				}
				d := euclidean(points[cur], points[cand])
				if next == -1 || d < bestDist {
					next, bestDist = cand, d
				}
			}
		}
		visited[next] = true
		order = append(order, next)
		cur = next
	}

	return order
}
