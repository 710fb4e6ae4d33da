package geom2d

import "math"

// Point is a 2D coordinate, the vertex attribute type the Delaunay layer
// instantiates mesh.Mesh[V, F] with (V = Point).
type Point struct {
	X, Y float32
}

// NewPoint validates x and y and returns a Point, or ErrInvalidPoint if
// either coordinate is NaN or ±Inf.
//
// Complexity: O(1).
func NewPoint(x, y float32) (Point, error) {
	if isNonFinite(x) || isNonFinite(y) {
		return Point{}, ErrInvalidPoint
	}
	return Point{X: x, Y: y}, nil
}

func isNonFinite(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
