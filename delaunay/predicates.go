package delaunay

import "github.com/katalvlaran/quadedge/delaunay/geom2d"

// Geometric predicates, evaluated as the sign of a matrix determinant over
// float32 coordinates. Single precision is the baseline;
// near-degenerate inputs resolve to the conservative value named at each
// call site rather than raising an error.

// signedArea2 returns twice the signed area of triangle (a,b,c): positive
// for counter-clockwise, negative for clockwise, zero for collinear. This
// is the 3x3 determinant
//
//	| ax ay 1 |
//	| bx by 1 |
//	| cx cy 1 |
//
// expanded directly: explicit small-matrix determinant code over a
// general-purpose matrix type for fixed, tiny shapes
// (matrix/impl_linear_algebra.go's fast-path style).
func signedArea2(a, b, c geom2d.Point) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// ccw returns true iff (a,b,c) is strictly counter-clockwise. Collinear
// triples return false.
func ccw(a, b, c geom2d.Point) bool {
	return signedArea2(a, b, c) > 0
}

// ccwOrLinear returns true iff (a,b,c) is counter-clockwise or collinear
// (non-negative signed area) — the conservative variant LocatePoint uses
// on its "right-of" branch.
func ccwOrLinear(a, b, c geom2d.Point) bool {
	return signedArea2(a, b, c) >= 0
}

// inCircle returns true iff d lies strictly inside the circumcircle of
// (a,b,c). Assumes (a,b,c) is already CCW (the caller's responsibility,
// implied by the caller); if it is not, the sign is inverted and the answer is
// wrong. On-circle (degenerate, cocircular) returns false, the
// conservative value for this predicate.
//
// Implemented as the sign of the 3x3 determinant obtained by translating
// a, b, c, d so that d is at the origin — algebraically equivalent to the
// textbook 4x4 determinant with rows (x, y, x²+y², 1) but one dimension
// smaller to compute by hand.
func inCircle(a, b, c, d geom2d.Point) bool {
	return inCircleDet(a, b, c, d) > 0
}

// inCircleDet is inCircle's underlying determinant, exposed separately so
// callers that need to detect the exact-zero (cocircular) case for
// degeneracy logging don't have to recompute it.
func inCircleDet(a, b, c, d geom2d.Point) float32 {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	return ax*(by*cSq-bSq*cy) -
		ay*(bx*cSq-bSq*cx) +
		aSq*(bx*cy-by*cx)
}
