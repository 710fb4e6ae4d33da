package mesh

import "github.com/katalvlaran/quadedge/quadid"

// Onext returns the next primal directed edge in CCW order around Org(e).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Onext(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	if !m.livePrimal(e) {
		return 0, ErrStaleEntity
	}
	return m.rawOnextP(e), nil
}

// OnextD returns the next dual directed edge in CCW order around the dual
// origin (a face) of e.
//
// Complexity: O(1).
func (m *Mesh[V, F]) OnextD(e quadid.DEdgeID) (quadid.DEdgeID, error) {
	if !m.liveDual(e) {
		return 0, ErrStaleEntity
	}
	return m.rawOnextD(e), nil
}

// Org returns the origin vertex of a primal directed edge.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Org(e quadid.PEdgeID) (VertexId, error) {
	if !m.livePrimal(e) {
		return 0, ErrStaleEntity
	}
	return m.rawOrgP(e), nil
}

// Dest returns the destination vertex of a primal directed edge:
// Org(Sym(e)).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Dest(e quadid.PEdgeID) (VertexId, error) {
	return m.Org(e.Sym())
}

// Left returns the face to the left of a primal directed edge:
// Org(RotInv(e)) in the dual arena.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Left(e quadid.PEdgeID) (FaceId, error) {
	d := e.RotInv()
	if !m.liveDual(d) {
		return 0, ErrStaleEntity
	}
	return m.rawOrgD(d), nil
}

// Right returns the face to the right of a primal directed edge:
// Org(Rot(e)) in the dual arena.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Right(e quadid.PEdgeID) (FaceId, error) {
	d := e.Rot()
	if !m.liveDual(d) {
		return 0, ErrStaleEntity
	}
	return m.rawOrgD(d), nil
}

// setOrg rewrites the origin of a primal directed edge without touching
// topology. Used internally by Swap, which preserves edge identity while
// changing its endpoints.
func (m *Mesh[V, F]) setOrg(e quadid.PEdgeID, v VertexId) error {
	if !m.livePrimal(e) {
		return ErrStaleEntity
	}
	m.rawSetOrgP(e, v)
	return nil
}

// Oprev returns the previous edge, CW around Org(e): Rot(Onext(Rot(e))).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Oprev(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	d := e.Rot()
	if !m.liveDual(d) {
		return 0, ErrStaleEntity
	}
	dn := m.rawOnextD(d)
	return dn.Rot(), nil
}

// Lnext returns the next edge, CCW around Left(e): Rot(Onext(Rot⁻¹(e))).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Lnext(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	d := e.RotInv()
	if !m.liveDual(d) {
		return 0, ErrStaleEntity
	}
	dn := m.rawOnextD(d)
	return dn.Rot(), nil
}

// Lprev returns the previous edge, CW around Left(e): Sym(Onext(e)).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Lprev(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	if !m.livePrimal(e) {
		return 0, ErrStaleEntity
	}
	return m.rawOnextP(e).Sym(), nil
}

// Rnext returns the next edge, CCW around Right(e): Rot⁻¹(Onext(Rot(e))).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Rnext(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	d := e.Rot()
	if !m.liveDual(d) {
		return 0, ErrStaleEntity
	}
	dn := m.rawOnextD(d)
	return dn.RotInv(), nil
}

// Rprev returns the previous edge, CW around Right(e): Onext(Sym(e)).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Rprev(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	s := e.Sym()
	if !m.livePrimal(s) {
		return 0, ErrStaleEntity
	}
	return m.rawOnextP(s), nil
}

// Dprev returns the previous edge into Dest(e), reached through the face to
// the left of e: Rot⁻¹(Onext(Rot⁻¹(e))), which equals Sym(Lnext(e)).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Dprev(e quadid.PEdgeID) (quadid.PEdgeID, error) {
	d := e.RotInv()
	if !m.liveDual(d) {
		return 0, ErrStaleEntity
	}
	dn := m.rawOnextD(d)
	return dn.RotInv(), nil
}
