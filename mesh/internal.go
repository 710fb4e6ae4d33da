package mesh

import "github.com/katalvlaran/quadedge/quadid"

// rawOrgP / rawOnextP / rawOrgD / rawOnextD are the unchecked, O(1) slot
// accessors every topological operator is built from. They trust their
// caller to have already validated liveness (internal callers always
// check with livePrimal/liveDual first); the public, checked surface is
// in handles.go and derived.go.

func (m *Mesh[V, F]) livePrimal(e quadid.PEdgeID) bool {
	i := int(e)
	return i >= 0 && i < len(m.primal) && m.primal[i].live
}

func (m *Mesh[V, F]) liveDual(e quadid.DEdgeID) bool {
	i := int(e)
	return i >= 0 && i < len(m.dual) && m.dual[i].live
}

func (m *Mesh[V, F]) rawOrgP(e quadid.PEdgeID) VertexId { return m.primal[e].org }

func (m *Mesh[V, F]) rawSetOrgP(e quadid.PEdgeID, v VertexId) { m.primal[e].org = v }

func (m *Mesh[V, F]) rawOnextP(e quadid.PEdgeID) quadid.PEdgeID { return m.primal[e].onext }

func (m *Mesh[V, F]) rawSetOnextP(e, next quadid.PEdgeID) { m.primal[e].onext = next }

func (m *Mesh[V, F]) rawOrgD(e quadid.DEdgeID) FaceId { return m.dual[e].org }

func (m *Mesh[V, F]) rawSetOrgD(e quadid.DEdgeID, f FaceId) { m.dual[e].org = f }

func (m *Mesh[V, F]) rawOnextD(e quadid.DEdgeID) quadid.DEdgeID { return m.dual[e].onext }

func (m *Mesh[V, F]) rawSetOnextD(e, next quadid.DEdgeID) { m.dual[e].onext = next }
