package spatialindex

import (
	"math"

	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
)

// cell is the grid coordinate of a bucket, row/column in
// builder.Grid's sense but over floating-point space divided by CellSize.
type cell struct {
	cx, cy int32
}

// Index buckets live vertices into uniform square cells of side CellSize.
// The zero value is not usable; construct with NewIndex.
type Index struct {
	cellSize float32
	buckets  map[cell][]mesh.VertexId
	points   map[mesh.VertexId]geom2d.Point
}

// NewIndex returns an empty index with the given cell side length.
// cellSize must be positive; a non-positive value is clamped to 1.
//
// Complexity: O(1).
func NewIndex(cellSize float32) *Index {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Index{
		cellSize: cellSize,
		buckets:  make(map[cell][]mesh.VertexId),
		points:   make(map[mesh.VertexId]geom2d.Point),
	}
}

// cellOf floors (not truncates) the scaled coordinate, so cells tile
// uniformly across zero; negative coordinates are routine once a
// bootstrap scaffold or a point cloud extends past the origin.
func (idx *Index) cellOf(p geom2d.Point) cell {
	return cell{
		cx: int32(math.Floor(float64(p.X / idx.cellSize))),
		cy: int32(math.Floor(float64(p.Y / idx.cellSize))),
	}
}

// Insert adds a vertex at p to the grid. Inserting the same id twice
// duplicates its bucket entry; callers insert each live vertex exactly
// once.
//
// Complexity: O(1) amortized.
func (idx *Index) Insert(id mesh.VertexId, p geom2d.Point) {
	c := idx.cellOf(p)
	idx.buckets[c] = append(idx.buckets[c], id)
	idx.points[id] = p
}

// Nearest returns the live vertex whose indexed point is closest to p by
// squared Euclidean distance, searching outward ring by ring from p's
// cell. Returns false if the index is empty.
//
// Complexity: O(B + k), where B is the number of occupied cells (scanned
// once to bound the search) and k is the number of points in the rings
// searched.
func (idx *Index) Nearest(p geom2d.Point) (mesh.VertexId, bool) {
	if len(idx.points) == 0 {
		return 0, false
	}
	center := idx.cellOf(p)

	var (
		best      mesh.VertexId
		bestDist2 float32
		found     bool
	)
	consider := func(id mesh.VertexId) {
		q := idx.points[id]
		dx, dy := p.X-q.X, p.Y-q.Y
		d2 := dx*dx + dy*dy
		if !found || d2 < bestDist2 {
			best, bestDist2, found = id, d2, true
		}
	}

	// The search must not stop before it has looked at every occupied
	// cell that could possibly be closer than the current best, so bound
	// it by the Chebyshev distance to the farthest occupied cell rather
	// than by the bucket count (a single far-off point would otherwise
	// make a tiny ring budget miss it entirely).
	var maxRadius int32
	for c := range idx.buckets {
		if d := chebyshev(center, c); d > maxRadius {
			maxRadius = d
		}
	}

	// Expand ring radius until no unvisited ring can hold a closer point:
	// every point in ring r is at least (r-1)*cellSize from p, so once that
	// gap reaches the best distance found so far the search stops.
	for radius := int32(0); radius <= maxRadius; radius++ {
		if found {
			gap := float32(radius-1) * idx.cellSize
			if gap > 0 && gap*gap >= bestDist2 {
				break
			}
		}
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				if abs32(dx) != radius && abs32(dy) != radius {
					continue // interior of the square already visited at a smaller radius
				}
				c := cell{cx: center.cx + dx, cy: center.cy + dy}
				ids, ok := idx.buckets[c]
				if !ok {
					continue
				}
				for _, id := range ids {
					consider(id)
				}
			}
		}
	}
	return best, found
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func chebyshev(a, b cell) int32 {
	dx, dy := abs32(a.cx-b.cx), abs32(a.cy-b.cy)
	if dx > dy {
		return dx
	}
	return dy
}
