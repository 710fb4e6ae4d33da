package observer

import (
	"github.com/katalvlaran/quadedge/mesh"
	"github.com/katalvlaran/quadedge/quadid"
)

// Observer receives change notifications from a delaunay.Triangulation
// after each topological operation. Implementations must not
// mutate the mesh from within a callback; the triangulation's internal
// state is mid-operation while notifications are delivered.
type Observer interface {
	// EdgeInserted fires once per new primal directed edge's base id, after
	// MakeEdge allocates it (so once per quad, not once per splice). An edge
	// flipped by Swap keeps its id and is reported as EdgeRemoved(e)
	// followed by EdgeInserted(e).
	EdgeInserted(e quadid.PEdgeID)

	// EdgeRemoved fires when a quad is tombstoned by DeletePrimal, and for
	// the old position of an edge flipped by Swap.
	EdgeRemoved(e quadid.PEdgeID)

	// VertexMoved fires when a vertex's attribute (its Point) changes
	// without a topology change — currently unused by package delaunay,
	// which never relocates a vertex after insertion, but kept in the
	// interface so an observer written against it does not need a second
	// variant when that capability is added.
	VertexMoved(v mesh.VertexId)
}
