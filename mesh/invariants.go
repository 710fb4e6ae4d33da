package mesh

import "github.com/katalvlaran/quadedge/quadid"

// CheckInvariants walks every live primal edge and asserts the rotation
// algebra and ring-closure invariants. It is not
// called by any public operator (those never fail on anything but
// ErrStaleEntity); it exists for tests and debug tooling to assert the
// mesh has not become corrupt, returning ErrInvariantViolation if it has.
//
// Complexity: O(V + E) where E is the number of live primal edges.
func (m *Mesh[V, F]) CheckInvariants() error {
	for e := quadid.PEdgeID(0); int(e) < len(m.primal); e++ {
		if !m.livePrimal(e) {
			continue
		}
		// Invariant 1: Sym² = id, Rot² = id (so Rot⁴ = id), Rot(RotInv(e)) = Sym(e).
		if e.Sym().Sym() != e {
			return ErrInvariantViolation
		}
		if e.Rot().Rot() != e {
			return ErrInvariantViolation
		}
		if e.RotInv().Rot() != e.Sym() {
			return ErrInvariantViolation
		}

		// Invariant 2: the Onext ring closes within the arena size.
		limit := len(m.primal) + 1
		cur := e
		steps := 0
		for {
			cur = m.rawOnextP(cur)
			steps++
			if cur == e {
				break
			}
			if steps > limit {
				return ErrInvariantViolation
			}
		}

		// Invariant 4: Onext always points to a live slot in the same arena.
		if !m.livePrimal(m.rawOnextP(e)) {
			return ErrInvariantViolation
		}

		// Invariant 3: primal/dual coherence — Left/Right must resolve to
		// live faces for a well-formed mesh.
		left, err := m.Left(e)
		if err != nil || !m.LiveFace(left) {
			return ErrInvariantViolation
		}
		right, err := m.Right(e)
		if err != nil || !m.LiveFace(right) {
			return ErrInvariantViolation
		}
	}
	return nil
}
