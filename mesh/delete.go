package mesh

import "github.com/katalvlaran/quadedge/quadid"

// DeletePrimal detaches e from both its origin rings via two splices with
// Oprev(e) and Oprev(Sym(e)), then tombstones the entire quad (both
// primal slots and both dual slots). The quad's slot indices are never
// reused.
//
// Complexity: O(1).
func (m *Mesh[V, F]) DeletePrimal(e quadid.PEdgeID) error {
	oprevE, err := m.Oprev(e)
	if err != nil {
		return err
	}
	oprevSym, err := m.Oprev(e.Sym())
	if err != nil {
		return err
	}

	if oprevE != e {
		if err := m.Splice(e, oprevE); err != nil {
			return err
		}
	}
	if oprevSym != e.Sym() {
		if err := m.Splice(e.Sym(), oprevSym); err != nil {
			return err
		}
	}

	sym := e.Sym()
	rot := e.Rot()
	rotInv := e.RotInv()

	m.primal[e].live = false
	m.primal[sym].live = false
	m.dual[rot].live = false
	m.dual[rotInv].live = false

	return nil
}
