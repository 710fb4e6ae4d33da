package quadid

// PEdgeID identifies one directed edge in the primal arena: PEdgeID = 2k
// or 2k+1 for quad index k. The low bit is the parity tag distinguishing
// an edge from its Sym.
type PEdgeID uint32

// DEdgeID identifies one directed edge in the dual arena, on the same
// numbering as its primal counterpart (DEdgeID = 2k or 2k+1 for quad k).
type DEdgeID uint32

// InvalidPEdgeID and InvalidDEdgeID are sentinel ids that never result
// from MakeEdge; callers use them as zero-value-safe "no edge" markers.
const (
	InvalidPEdgeID = PEdgeID(^uint32(0))
	InvalidDEdgeID = DEdgeID(^uint32(0))
)

// Quad returns the quad index k this directed edge belongs to.
//
// Complexity: O(1).
func (e PEdgeID) Quad() uint32 { return uint32(e) >> 1 }

// Parity returns the low tag bit (0 or 1) distinguishing e from e.Sym().
//
// Complexity: O(1).
func (e PEdgeID) Parity() uint32 { return uint32(e) & 1 }

// Sym flips the direction of e, staying in the primal arena.
//
// Complexity: O(1). Sym(Sym(e)) == e for every e.
func (e PEdgeID) Sym() PEdgeID { return e ^ 1 }

// Rot rotates e by 90° into the dual arena, preserving quad index and
// parity tag.
//
// Complexity: O(1).
func (e PEdgeID) Rot() DEdgeID { return DEdgeID(e) }

// RotInv rotates e by -90° into the dual arena. RotInv is Rot composed
// with Sym (order does not matter: both flip the parity bit and switch
// arena).
//
// Complexity: O(1). RotInv(Rot(e)) == Sym(e), since Rot² is the identity
// under this encoding.
func (e PEdgeID) RotInv() DEdgeID { return DEdgeID(e ^ 1) }

// Quad returns the quad index k this directed edge belongs to.
//
// Complexity: O(1).
func (e DEdgeID) Quad() uint32 { return uint32(e) >> 1 }

// Parity returns the low tag bit (0 or 1) distinguishing e from e.Sym().
//
// Complexity: O(1).
func (e DEdgeID) Parity() uint32 { return uint32(e) & 1 }

// Sym flips the direction of e, staying in the dual arena.
//
// Complexity: O(1).
func (e DEdgeID) Sym() DEdgeID { return e ^ 1 }

// Rot rotates e by 90° into the primal arena.
//
// Complexity: O(1). Rot(Rot(e)) == e for PEdgeID and DEdgeID alike, since
// this package's arena tag has exactly two states (invariant holds
// trivially: Rot⁴ = id because Rot² = id already).
func (e DEdgeID) Rot() PEdgeID { return PEdgeID(e) }

// RotInv rotates e by -90° into the primal arena.
//
// Complexity: O(1).
func (e DEdgeID) RotInv() PEdgeID { return PEdgeID(e ^ 1) }

// MakeQuad returns the four directed-edge ids belonging to quad index k:
// the primal pair (e, e.Sym()) and the dual pair (e.Rot(), e.RotInv()).
// It performs no allocation; callers combine it with an arena append to
// implement MakeEdge.
//
// Complexity: O(1).
func MakeQuad(k uint32) (e0, e1 PEdgeID, d0, d1 DEdgeID) {
	e0 = PEdgeID(2 * k)
	e1 = e0.Sym()
	d0 = e0.Rot()
	d1 = e0.RotInv()
	return e0, e1, d0, d1
}
