package bootstrap

import (
	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
)

// Scaffold builds an empty Triangulation seeded with a scaffold around
// points, dispatching to SuperTriangle or BoundingBox according to
// cfg.shape (WithShape; ShapeTriangle by default).
func Scaffold(points []geom2d.Point, opts ...Option) (*delaunay.Triangulation, error) {
	cfg := newConfig(opts...)
	if cfg.shape == ShapeSquare {
		return BoundingBox(points, opts...)
	}
	return SuperTriangle(points, opts...)
}

// SuperTriangle returns a Triangulation scaffolded with a single enclosing
// triangle: the classical Bowyer-Watson construction, large enough that
// every point in points lies strictly inside it. Returns ErrNoPoints if
// points is empty.
func SuperTriangle(points []geom2d.Point, opts ...Option) (*delaunay.Triangulation, error) {
	cfg := newConfig(opts...)
	minX, minY, maxX, maxY, err := boundingBox(points)
	if err != nil {
		return nil, err
	}

	a, b, c := superTriangleVertices(minX, minY, maxX, maxY, cfg.margin)

	tri := delaunay.NewTriangulation(cfg.triOpts...)
	m := tri.Mesh()

	va := m.InsertVertex(a)
	vb := m.InsertVertex(b)
	vc := m.InsertVertex(c)
	tri.IndexVertex(va, a)
	tri.IndexVertex(vb, b)
	tri.IndexVertex(vc, c)

	outer := m.InsertFace(geom2d.InfiniteSite())

	e := m.MakeEdge(va, vb, outer, outer)
	f, err := m.ConnectVertex(e, vc)
	if err != nil {
		return nil, err
	}
	g, err := m.ConnectPrimal(f, e)
	if err != nil {
		return nil, err
	}

	interior := m.InsertFace(geom2d.FiniteSite(geom2d.Point{}))
	if err := m.SetLeft(e, interior); err != nil {
		return nil, err
	}
	if err := m.SetLeft(f, interior); err != nil {
		return nil, err
	}
	if err := m.SetLeft(g, interior); err != nil {
		return nil, err
	}

	return tri, nil
}

// BoundingBox returns a Triangulation scaffolded with an axis-aligned
// square, split into two triangles along the diagonal running from the
// bottom-left to the top-right corner, large enough that every point in
// points lies strictly inside it. Returns ErrNoPoints if points is empty.
func BoundingBox(points []geom2d.Point, opts ...Option) (*delaunay.Triangulation, error) {
	cfg := newConfig(opts...)
	minX, minY, maxX, maxY, err := boundingBox(points)
	if err != nil {
		return nil, err
	}

	a, b, c, d := squareVertices(minX, minY, maxX, maxY, cfg.margin)

	tri := delaunay.NewTriangulation(cfg.triOpts...)
	m := tri.Mesh()

	va := m.InsertVertex(a)
	vb := m.InsertVertex(b)
	vc := m.InsertVertex(c)
	vd := m.InsertVertex(d)
	tri.IndexVertex(va, a)
	tri.IndexVertex(vb, b)
	tri.IndexVertex(vc, c)
	tri.IndexVertex(vd, d)

	outer := m.InsertFace(geom2d.InfiniteSite())

	e := m.MakeEdge(va, vb, outer, outer) // a -> b
	f, err := m.ConnectVertex(e, vc)      // b -> c
	if err != nil {
		return nil, err
	}
	g, err := m.ConnectPrimal(f, e) // c -> a, the diagonal
	if err != nil {
		return nil, err
	}

	t1 := m.InsertFace(geom2d.FiniteSite(geom2d.Point{}))
	if err := m.SetLeft(e, t1); err != nil {
		return nil, err
	}
	if err := m.SetLeft(f, t1); err != nil {
		return nil, err
	}
	if err := m.SetLeft(g, t1); err != nil {
		return nil, err
	}

	h0 := g.Sym()                      // a -> c, the diagonal's far side
	h1, err := m.ConnectVertex(f, vd)  // c -> d, in f's right (outer) face
	if err != nil {
		return nil, err
	}
	h2, err := m.ConnectPrimal(h1, h0) // d -> a
	if err != nil {
		return nil, err
	}

	t2 := m.InsertFace(geom2d.FiniteSite(geom2d.Point{}))
	if err := m.SetLeft(h0, t2); err != nil {
		return nil, err
	}
	if err := m.SetLeft(h1, t2); err != nil {
		return nil, err
	}
	if err := m.SetLeft(h2, t2); err != nil {
		return nil, err
	}
	// h1 and h2 are the square's remaining hull edges; h1 took its face
	// ids from f and h2 from h1 at construction time, so pin their Right
	// to the outer face explicitly.
	if err := m.SetRight(h1, outer); err != nil {
		return nil, err
	}
	if err := m.SetRight(h2, outer); err != nil {
		return nil, err
	}

	return tri, nil
}

// boundingBox returns the axis-aligned bounding box of points, or
// ErrNoPoints if points is empty.
func boundingBox(points []geom2d.Point) (minX, minY, maxX, maxY float32, err error) {
	if len(points) == 0 {
		return 0, 0, 0, 0, ErrNoPoints
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY, nil
}

// superTriangleVertices computes a triangle strictly containing the box
// [minX,maxX]x[minY,maxY], fed back in CCW winding order. s is the
// half-extent scale (margin-adjusted); the base sits s below the box and
// the apex sits 6s above it, comfortably clearing the box's top corners
// (see DESIGN.md for the derivation).
func superTriangleVertices(minX, minY, maxX, maxY, margin float32) (a, b, c geom2d.Point) {
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	hw := (maxX - minX) / 2
	hh := (maxY - minY) / 2

	s := hw
	if hh > s {
		s = hh
	}
	if s == 0 {
		s = 1
	}
	s *= 1 + margin

	a = geom2d.Point{X: cx - 4*s, Y: cy - hh - s}
	b = geom2d.Point{X: cx + 4*s, Y: cy - hh - s}
	c = geom2d.Point{X: cx, Y: cy + hh + 6*s}
	return a, b, c
}

// squareVertices computes an axis-aligned square strictly containing the
// box [minX,maxX]x[minY,maxY], fed back in CCW order starting at the
// bottom-left corner.
func squareVertices(minX, minY, maxX, maxY, margin float32) (a, b, c, d geom2d.Point) {
	dx := maxX - minX
	dy := maxY - minY
	pad := dx
	if dy > pad {
		pad = dy
	}
	if pad == 0 {
		pad = 1
	}
	pad *= margin

	a = geom2d.Point{X: minX - pad, Y: minY - pad}
	b = geom2d.Point{X: maxX + pad, Y: minY - pad}
	c = geom2d.Point{X: maxX + pad, Y: maxY + pad}
	d = geom2d.Point{X: minX - pad, Y: maxY + pad}
	return a, b, c, d
}
