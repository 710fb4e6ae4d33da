package mesh

import "github.com/katalvlaran/quadedge/quadid"

// FirstLivePrimal returns the lowest-indexed live primal directed edge and
// true, or the zero value and false if the mesh has no live edges. Package
// delaunay uses this as LocatePoint's fallback starting edge when no hint
// has been recorded yet.
//
// Complexity: O(n) worst case over the primal arena.
func (m *Mesh[V, F]) FirstLivePrimal() (quadid.PEdgeID, bool) {
	for i := 0; i < len(m.primal); i++ {
		if m.primal[i].live {
			return quadid.PEdgeID(i), true
		}
	}
	return 0, false
}

// NextLivePrimal returns the lowest-indexed live primal directed edge
// strictly after e, and true, or the zero value and false if there is
// none. Combined with FirstLivePrimal, callers enumerate every live
// primal edge in id order:
//
//	for e, ok := m.FirstLivePrimal(); ok; e, ok = m.NextLivePrimal(e) { ... }
//
// Complexity: O(n) worst case over the primal arena.
func (m *Mesh[V, F]) NextLivePrimal(e quadid.PEdgeID) (quadid.PEdgeID, bool) {
	for i := int(e) + 1; i < len(m.primal); i++ {
		if m.primal[i].live {
			return quadid.PEdgeID(i), true
		}
	}
	return 0, false
}
