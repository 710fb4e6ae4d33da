package geom2d

// Site is the Delaunay layer's face attribute type (F in mesh.Mesh[V, F]):
// either a finite Voronoi dual point, or the sentinel infinite outer face.
type Site struct {
	Infinite bool
	X, Y     float32
}

// InfiniteSite returns the sentinel attribute for the mesh's one unbounded
// outer face.
func InfiniteSite() Site { return Site{Infinite: true} }

// FiniteSite returns the face attribute for a bounded triangular face with
// X/Y set to p. Package delaunay creates its finite faces with
// FiniteSite(Point{}) and computes no circumcenters, so their X/Y stay at
// the origin.
func FiniteSite(p Point) Site { return Site{X: p.X, Y: p.Y} }
