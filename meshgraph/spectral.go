package meshgraph

import (
	"sort"

	"github.com/katalvlaran/quadedge/matrix"

	"github.com/katalvlaran/quadedge/delaunay"
)

// eigenTolerance is the Jacobi sweep convergence tolerance passed to
// matrix.Eigen: off-diagonal entries below this are treated as zero.
const eigenTolerance = 1e-9

// eigenMaxIter bounds the number of Jacobi sweeps matrix.Eigen runs.
const eigenMaxIter = 100

// SpectralGap returns the algebraic connectivity of t's Delaunay
// 1-skeleton: the second-smallest eigenvalue of its unweighted graph
// Laplacian L = D - A. A Laplacian's smallest eigenvalue is always 0 (the
// all-ones vector); the gap above it measures how well-connected the mesh
// is — near zero means the mesh is close to splitting into two clusters
// joined by a thin bridge.
//
// Returns ErrEmptyTriangulation if t has fewer than 2 vertices.
func SpectralGap(t *delaunay.Triangulation) (float64, error) {
	g, err := Export(t)
	if err != nil {
		return 0, err
	}
	n := g.VertexCount()
	if n < 2 {
		return 0, ErrEmptyTriangulation
	}

	vertices := g.Vertices()
	index := make(map[string]int, n)
	for i, id := range vertices {
		index[id] = i
	}

	laplacian, err := matrix.NewDense(n, n)
	if err != nil {
		return 0, err
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if i == j {
			continue
		}
		if err := laplacian.Set(i, j, -1); err != nil {
			return 0, err
		}
		if err := laplacian.Set(j, i, -1); err != nil {
			return 0, err
		}
	}
	for _, id := range vertices {
		i := index[id]
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return 0, err
		}
		degree := float64(len(neighbors))
		if err := laplacian.Set(i, i, degree); err != nil {
			return 0, err
		}
	}

	eigs, _, err := matrix.Eigen(laplacian, eigenTolerance, eigenMaxIter)
	if err != nil {
		return 0, err
	}

	sort.Float64s(eigs)
	return eigs[1], nil
}
