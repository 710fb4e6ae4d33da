package mesh

import "github.com/katalvlaran/quadedge/quadid"

// VertexHandle is a borrow-scoped cursor onto a live vertex slot. It does
// not own storage and must not outlive its Mesh.
type VertexHandle[V any, F any] struct {
	m  *Mesh[V, F]
	id VertexId
}

// Id returns the handle's underlying VertexId.
func (h VertexHandle[V, F]) Id() VertexId { return h.id }

// Attr returns the vertex's current attribute.
func (h VertexHandle[V, F]) Attr() (V, error) { return h.m.VertexAttr(h.id) }

// SetAttr overwrites the vertex's attribute through this cursor.
func (h VertexHandle[V, F]) SetAttr(v V) error { return h.m.SetVertexAttr(h.id, v) }

// FaceHandle is a borrow-scoped cursor onto a live face slot.
type FaceHandle[V any, F any] struct {
	m  *Mesh[V, F]
	id FaceId
}

// Id returns the handle's underlying FaceId.
func (h FaceHandle[V, F]) Id() FaceId { return h.id }

// Attr returns the face's current attribute.
func (h FaceHandle[V, F]) Attr() (F, error) { return h.m.FaceAttr(h.id) }

// SetAttr overwrites the face's attribute through this cursor.
func (h FaceHandle[V, F]) SetAttr(f F) error { return h.m.SetFaceAttr(h.id, f) }

// PrimalHandle is a borrow-scoped cursor onto a live primal directed edge.
type PrimalHandle[V any, F any] struct {
	m  *Mesh[V, F]
	id quadid.PEdgeID
}

// Id returns the handle's underlying PEdgeID.
func (h PrimalHandle[V, F]) Id() quadid.PEdgeID { return h.id }

// Org returns Org(e) through this cursor.
func (h PrimalHandle[V, F]) Org() (VertexId, error) { return h.m.Org(h.id) }

// SetOrg rewrites Org(e). Exposed for Swap-style endpoint rewrites;
// ordinary callers should prefer the topological operators.
func (h PrimalHandle[V, F]) SetOrg(v VertexId) error { return h.m.setOrg(h.id, v) }

// Onext returns Onext(e) through this cursor.
func (h PrimalHandle[V, F]) Onext() (quadid.PEdgeID, error) { return h.m.Onext(h.id) }

// DualHandle is a borrow-scoped cursor onto a live dual directed edge.
type DualHandle[V any, F any] struct {
	m  *Mesh[V, F]
	id quadid.DEdgeID
}

// Id returns the handle's underlying DEdgeID.
func (h DualHandle[V, F]) Id() quadid.DEdgeID { return h.id }

// Org returns the dual origin (a FaceId) through this cursor.
func (h DualHandle[V, F]) Org() (FaceId, error) {
	if !h.m.liveDual(h.id) {
		return 0, ErrStaleEntity
	}
	return h.m.rawOrgD(h.id), nil
}

// Onext returns the dual Onext(e) through this cursor.
func (h DualHandle[V, F]) Onext() (quadid.DEdgeID, error) { return h.m.OnextD(h.id) }

// Vertex returns a cursor onto a live vertex, or ErrStaleEntity.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Vertex(id VertexId) (VertexHandle[V, F], error) {
	if !m.LiveVertex(id) {
		return VertexHandle[V, F]{}, ErrStaleEntity
	}
	return VertexHandle[V, F]{m: m, id: id}, nil
}

// Face returns a cursor onto a live face, or ErrStaleEntity.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Face(id FaceId) (FaceHandle[V, F], error) {
	if !m.LiveFace(id) {
		return FaceHandle[V, F]{}, ErrStaleEntity
	}
	return FaceHandle[V, F]{m: m, id: id}, nil
}

// Primal returns a cursor onto a live primal directed edge, or
// ErrStaleEntity.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Primal(id quadid.PEdgeID) (PrimalHandle[V, F], error) {
	if !m.livePrimal(id) {
		return PrimalHandle[V, F]{}, ErrStaleEntity
	}
	return PrimalHandle[V, F]{m: m, id: id}, nil
}

// Dual returns a cursor onto a live dual directed edge, or ErrStaleEntity.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Dual(id quadid.DEdgeID) (DualHandle[V, F], error) {
	if !m.liveDual(id) {
		return DualHandle[V, F]{}, ErrStaleEntity
	}
	return DualHandle[V, F]{m: m, id: id}, nil
}
