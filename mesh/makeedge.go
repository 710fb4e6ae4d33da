package mesh

import "github.com/katalvlaran/quadedge/quadid"

// MakeEdge allocates a fresh quad of four directed-edge slots and returns
// the base primal directed edge. The primal pair stores org=org on the
// base edge and org=dest on its Sym; the dual pair stores org=right on
// Rot(e) and org=left on RotInv(e).
//
// The new edge is isolated: Onext(e) == e and Onext(e.Sym()) == e.Sym() in
// the primal arena, Onext(Rot(e)) == Rot(e) and
// Onext(RotInv(e)) == RotInv(e) in the dual arena — both rings have size
// one, matching MakeEdge's contract.
//
// Complexity: O(1) amortized (appends exactly one quad, four slots total:
// two primal, two dual).
func (m *Mesh[V, F]) MakeEdge(org, dest VertexId, left, right FaceId) quadid.PEdgeID {
	k := uint32(len(m.primal)) / 2
	e0, e1, d0, d1 := quadid.MakeQuad(k)

	// Grow the primal arena by exactly one quad (two slots).
	m.primal = append(m.primal,
		primalSlot{org: org, onext: e0, live: true},
		primalSlot{org: dest, onext: e1, live: true},
	)
	// Grow the dual arena in lockstep (two slots): Rot(e)=d0 borders the
	// right face, RotInv(e)=d1 borders the left face.
	m.dual = append(m.dual,
		dualSlot{org: right, onext: d0, live: true},
		dualSlot{org: left, onext: d1, live: true},
	)

	return e0
}
