package delaunay

import (
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/spatialindex"
)

// DegeneracyLogger is called when IsDelaunay's inCircle determinant is
// exactly zero (a cocircular quadruple resolved to its conservative
// value), with kind "inCircle" and the four points involved. Collinear
// triples met by ccw and ccwOrLinear are not reported. The default is a
// no-op.
type DegeneracyLogger func(kind string, pts ...geom2d.Point)

// Option configures a Triangulation at construction time, following the
// same functional-options shape as builder.BuilderOption.
type Option func(*config)

type config struct {
	cellSize         float32
	useIndex         bool
	degeneracyLogger DegeneracyLogger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		degeneracyLogger: func(string, ...geom2d.Point) {},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSpatialIndex enables the spatialindex accelerant for LocatePoint's
// starting edge, bucketing vertices into cells of the given side length.
// It is purely an optimization: correctness of
// the six-step walk does not depend on it.
func WithSpatialIndex(cellSize float32) Option {
	return func(cfg *config) {
		cfg.useIndex = true
		cfg.cellSize = cellSize
	}
}

// WithDegeneracyLogger installs a callback invoked whenever IsDelaunay
// resolves a cocircular quadruple conservatively. A nil logger is a no-op.
func WithDegeneracyLogger(fn DegeneracyLogger) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.degeneracyLogger = fn
		}
	}
}

func (cfg *config) buildIndex() *spatialindex.Index {
	if !cfg.useIndex {
		return nil
	}
	return spatialindex.NewIndex(cfg.cellSize)
}
