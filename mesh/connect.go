package mesh

import "github.com/katalvlaran/quadedge/quadid"

// ConnectPrimal creates a new primal edge from Dest(from) to Org(to),
// lying in the left face shared by from and to, and splices it into both
// vertices' rings so that the new edge is adjacent to from and to.
//
// Post-condition: e is on the origin ring at Dest(from) immediately after
// Sym(from) in Onext order.
//
// Complexity: O(1).
func (m *Mesh[V, F]) ConnectPrimal(from, to quadid.PEdgeID) (quadid.PEdgeID, error) {
	dest, err := m.Dest(from)
	if err != nil {
		return 0, err
	}
	org, err := m.Org(to)
	if err != nil {
		return 0, err
	}
	left, err := m.Left(from)
	if err != nil {
		return 0, err
	}
	right, err := m.Right(from)
	if err != nil {
		return 0, err
	}

	e := m.MakeEdge(dest, org, left, right)

	lnextFrom, err := m.Lnext(from)
	if err != nil {
		return 0, err
	}
	if err := m.Splice(e, lnextFrom); err != nil {
		return 0, err
	}
	if err := m.Splice(e.Sym(), to); err != nil {
		return 0, err
	}

	return e, nil
}

// ConnectVertex extends the mesh by a dangling edge from Dest(edge) to a
// free (already-inserted, not yet attached) vertex newVertex. It does not
// split a face; it is used to grow the hull or attach an isolated vertex.
//
// Complexity: O(1).
func (m *Mesh[V, F]) ConnectVertex(edge quadid.PEdgeID, newVertex VertexId) (quadid.PEdgeID, error) {
	if !m.LiveVertex(newVertex) {
		return 0, ErrStaleEntity
	}
	dest, err := m.Dest(edge)
	if err != nil {
		return 0, err
	}
	left, err := m.Left(edge)
	if err != nil {
		return 0, err
	}
	right, err := m.Right(edge)
	if err != nil {
		return 0, err
	}

	e := m.MakeEdge(dest, newVertex, left, right)
	if err := m.Splice(e, edge.Sym()); err != nil {
		return 0, err
	}
	return e, nil
}
