// Package quadid is the quad-edge rotation algebra: pure index arithmetic
// over directed-edge identifiers, with no storage and no failure modes.
//
// A quad-edge packages one undirected edge as four directed edges: two
// primal (in the planar subdivision) and two dual (in its Voronoi dual).
// MakeEdge allocates a quad index k; the primal pair lives at PEdgeID
// 2k/2k+1 and the dual pair at DEdgeID 2k/2k+1 — the same quad index and
// parity bit shared across both arenas, per the "two low tag bits (parity,
// arena), shared quad index" encoding this package implements verbatim.
//
//	Sym(e)    = e XOR 1            — flip direction, same arena
//	Rot(e)    = same id, other arena
//	RotInv(e) = (e XOR 1), other arena
package quadid
