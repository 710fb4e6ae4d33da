package delaunay

import (
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
	"github.com/katalvlaran/quadedge/observer"
	"github.com/katalvlaran/quadedge/quadid"
	"github.com/katalvlaran/quadedge/spatialindex"
)

// Triangulation is an incremental Delaunay triangulation: a
// mesh.Mesh[geom2d.Point, geom2d.Site] plus the insertion algorithm,
// optional spatial-index accelerant, and observer subscriptions.
//
// The zero value is not usable; construct with NewTriangulation.
type Triangulation struct {
	m         *mesh.Mesh[geom2d.Point, geom2d.Site]
	index     *spatialindex.Index
	observers []observer.Observer
	degLog    DegeneracyLogger
}

// NewTriangulation returns an empty triangulation with no vertices, faces,
// or edges. Callers seed it with a bootstrap scaffold (package bootstrap)
// before calling InsertDelaunayVertex.
func NewTriangulation(opts ...Option) *Triangulation {
	cfg := newConfig(opts...)
	return &Triangulation{
		m:      mesh.NewMesh[geom2d.Point, geom2d.Site](),
		index:  cfg.buildIndex(),
		degLog: cfg.degeneracyLogger,
	}
}

// Mesh exposes the underlying topological mesh directly. This is the
// construction escape hatch package bootstrap uses to seed a scaffold
// triangle or bounding square with raw MakeEdge/ConnectVertex/ConnectPrimal
// calls before any point is inserted; it is not meant for ordinary callers
// once insertion has begun.
func (t *Triangulation) Mesh() *mesh.Mesh[geom2d.Point, geom2d.Site] {
	return t.m
}

// Subscribe registers o to receive change notifications for every
// subsequent topological operation performed through
// InsertDelaunayVertex. Subscribe is persistent: o receives every future
// notification until the Triangulation is discarded.
func (t *Triangulation) Subscribe(o observer.Observer) {
	if o != nil {
		t.observers = append(t.observers, o)
	}
}

// IndexVertex registers v's position with the optional spatial index, if
// one is enabled. Package bootstrap calls this for each scaffold vertex;
// InsertDelaunayVertex calls it for each inserted vertex.
func (t *Triangulation) IndexVertex(v mesh.VertexId, p geom2d.Point) {
	if t.index != nil {
		t.index.Insert(v, p)
	}
}

func (t *Triangulation) notifyInserted(e quadid.PEdgeID) {
	for _, o := range t.observers {
		o.EdgeInserted(e)
	}
}

func (t *Triangulation) notifyRemoved(e quadid.PEdgeID) {
	for _, o := range t.observers {
		o.EdgeRemoved(e)
	}
}

func (t *Triangulation) logDegenerate(kind string, pts ...geom2d.Point) {
	if t.degLog != nil {
		t.degLog(kind, pts...)
	}
}
