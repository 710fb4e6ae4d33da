package mesh

import "github.com/katalvlaran/quadedge/quadid"

// Swap flips the diagonal e of the quadrilateral formed by its two
// incident triangles. The edge's identity (its id) is preserved; only its
// endpoints change.
//
// Contract: let a = Oprev(e), b = Oprev(Sym(e)). Splice(e,a); Splice(Sym(e),b);
// Splice(e, Lnext(a)); Splice(Sym(e), Lnext(b)); then rewrite
// Org(e) = Dest(a), Org(Sym(e)) = Dest(b).
//
// Complexity: O(1).
func (m *Mesh[V, F]) Swap(e quadid.PEdgeID) error {
	a, err := m.Oprev(e)
	if err != nil {
		return err
	}
	b, err := m.Oprev(e.Sym())
	if err != nil {
		return err
	}

	if err := m.Splice(e, a); err != nil {
		return err
	}
	if err := m.Splice(e.Sym(), b); err != nil {
		return err
	}

	lnextA, err := m.Lnext(a)
	if err != nil {
		return err
	}
	if err := m.Splice(e, lnextA); err != nil {
		return err
	}

	lnextB, err := m.Lnext(b)
	if err != nil {
		return err
	}
	if err := m.Splice(e.Sym(), lnextB); err != nil {
		return err
	}

	destA, err := m.Dest(a)
	if err != nil {
		return err
	}
	destB, err := m.Dest(b)
	if err != nil {
		return err
	}

	if err := m.setOrg(e, destA); err != nil {
		return err
	}
	return m.setOrg(e.Sym(), destB)
}
