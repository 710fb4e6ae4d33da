package mesh

import "github.com/katalvlaran/quadedge/quadid"

// SetLeft reassigns the face to the left of e (the dual origin of
// RotInv(e)). Topological operators never allocate or relabel faces on
// their own; higher layers (package delaunay's fan-building step) call
// SetLeft/SetRight explicitly after splitting a face so that
// each new triangle gets a distinct face id.
//
// Complexity: O(1).
func (m *Mesh[V, F]) SetLeft(e quadid.PEdgeID, f FaceId) error {
	d := e.RotInv()
	if !m.liveDual(d) {
		return ErrStaleEntity
	}
	m.rawSetOrgD(d, f)
	return nil
}

// SetRight reassigns the face to the right of e (the dual origin of
// Rot(e)).
//
// Complexity: O(1).
func (m *Mesh[V, F]) SetRight(e quadid.PEdgeID, f FaceId) error {
	d := e.Rot()
	if !m.liveDual(d) {
		return ErrStaleEntity
	}
	m.rawSetOrgD(d, f)
	return nil
}
