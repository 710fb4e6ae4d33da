package mesh

import "github.com/katalvlaran/quadedge/quadid"

// Splice is the fundamental topological primitive (Guibas–Stolfi). If a
// and b lie on the same Onext ring, Splice splits the ring in two; if
// they lie on different rings, Splice merges them. The dual undergoes the
// opposite change simultaneously (same dual ring ⇒ split; different ⇒
// merge), because the two swaps below touch the dual arena directly.
//
// Contract: let alpha = Rot(Onext(a)), beta = Rot(Onext(b)). Splice swaps
// Onext(a) with Onext(b), then swaps Onext(alpha) with Onext(beta). Both
// swaps use the pre-mutation values, so the operation reads as a single
// atomic step to any caller.
//
// Fails only if a or b is stale; never allocates.
//
// Complexity: O(1).
func (m *Mesh[V, F]) Splice(a, b quadid.PEdgeID) error {
	if !m.livePrimal(a) || !m.livePrimal(b) {
		return ErrStaleEntity
	}

	onextA := m.rawOnextP(a)
	onextB := m.rawOnextP(b)
	alpha := onextA.Rot()
	beta := onextB.Rot()

	m.rawSetOnextP(a, onextB)
	m.rawSetOnextP(b, onextA)

	dOnextAlpha := m.rawOnextD(alpha)
	dOnextBeta := m.rawOnextD(beta)
	m.rawSetOnextD(alpha, dOnextBeta)
	m.rawSetOnextD(beta, dOnextAlpha)

	return nil
}
