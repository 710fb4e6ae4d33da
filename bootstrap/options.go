package bootstrap

import "github.com/katalvlaran/quadedge/delaunay"

// Shape selects the scaffold topology SuperTriangle/BoundingBox build
// around a point cloud's bounding box.
type Shape int

const (
	// ShapeTriangle scaffolds a single enclosing triangle (the default).
	ShapeTriangle Shape = iota
	// ShapeSquare scaffolds an axis-aligned square split into two
	// triangles along one diagonal.
	ShapeSquare
)

// defaultMargin is the fallback margin factor, which scales how far the
// scaffold's vertices sit outside the point cloud's bounding box (see
// WithMargin), so an inserted point on the cloud's edge never coincides
// with a scaffold vertex.
const defaultMargin float32 = 1.0

// Option configures scaffold construction, following the same
// functional-options shape as delaunay.Option and builder.BuilderOption.
type Option func(*config)

type config struct {
	margin  float32
	shape   Shape
	triOpts []delaunay.Option
}

func newConfig(opts ...Option) *config {
	cfg := &config{margin: defaultMargin, shape: ShapeTriangle}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMargin sets the margin factor. BoundingBox pads the bounding box by
// factor times its larger full extent on every side; SuperTriangle scales
// its triangle by (1+factor) times the box's larger half-extent.
// Panics if factor <= 0.
func WithMargin(factor float32) Option {
	if factor <= 0 {
		panic("bootstrap: WithMargin(factor<=0)")
	}
	return func(cfg *config) {
		cfg.margin = factor
	}
}

// WithShape selects the scaffold topology. Scaffold uses this to dispatch
// between ShapeTriangle and ShapeSquare; it has no effect on SuperTriangle
// or BoundingBox, which each force their own shape regardless.
func WithShape(s Shape) Option {
	return func(cfg *config) {
		cfg.shape = s
	}
}

// WithTriangulationOptions forwards opts to delaunay.NewTriangulation when
// the scaffold's Triangulation is constructed, e.g. to enable a spatial
// index or install a degeneracy logger from the start.
func WithTriangulationOptions(opts ...delaunay.Option) Option {
	return func(cfg *config) {
		cfg.triOpts = append(cfg.triOpts, opts...)
	}
}
