package mesh

import (
	"iter"

	"github.com/katalvlaran/quadedge/quadid"
)

// OnextRing returns a lazy, finite, non-restartable sequence over the
// primal Onext ring starting at e: e, Onext(e), Onext²(e), ... until the
// walk returns to e. Termination follows from invariant 2:
// every live directed edge's Onext ring closes in a finite number of
// steps bounded by the arena size.
//
// If e is stale, the sequence yields nothing.
//
// Complexity: O(degree) to exhaust.
func (m *Mesh[V, F]) OnextRing(e quadid.PEdgeID) iter.Seq[quadid.PEdgeID] {
	return func(yield func(quadid.PEdgeID) bool) {
		if !m.livePrimal(e) {
			return
		}
		cur := e
		for {
			if !yield(cur) {
				return
			}
			cur = m.rawOnextP(cur)
			if cur == e {
				return
			}
		}
	}
}

// OnextRingD is OnextRing's dual-arena counterpart: it walks the Onext
// ring of a face, starting at e.
//
// Complexity: O(degree) to exhaust.
func (m *Mesh[V, F]) OnextRingD(e quadid.DEdgeID) iter.Seq[quadid.DEdgeID] {
	return func(yield func(quadid.DEdgeID) bool) {
		if !m.liveDual(e) {
			return
		}
		cur := e
		for {
			if !yield(cur) {
				return
			}
			cur = m.rawOnextD(cur)
			if cur == e {
				return
			}
		}
	}
}
