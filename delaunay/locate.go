package delaunay

import (
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
	"github.com/katalvlaran/quadedge/quadid"
)

// LocatePoint walks the mesh to find an edge e such that x either lies on
// e or lies strictly inside e's left face. It starts from
// the triangulation's cached hint edge; only when no hint is recorded does
// it use the incident edge of the nearest indexed vertex (if the spatial
// index is enabled), falling back to the mesh's first live primal edge.
//
// Complexity: O(sqrt(n)) expected on a Delaunay mesh from a random start.
func (t *Triangulation) LocatePoint(x geom2d.Point) (quadid.PEdgeID, error) {
	e, err := t.startEdge(x)
	if err != nil {
		return 0, err
	}

	for {
		orgId, err := t.m.Org(e)
		if err != nil {
			return 0, err
		}
		destId, err := t.m.Dest(e)
		if err != nil {
			return 0, err
		}
		org, err := t.m.VertexAttr(orgId)
		if err != nil {
			return 0, err
		}
		dest, err := t.m.VertexAttr(destId)
		if err != nil {
			return 0, err
		}

		// Step 1: x coincides with an endpoint.
		if x == org || x == dest {
			t.m.SetHint(e)
			return e, nil
		}

		// Step 2: x is strictly right of e.
		if !ccwOrLinear(x, org, dest) {
			e = e.Sym()
			continue
		}

		// Step 3: the left face is the infinite face — x is outside the hull.
		left, err := t.m.Left(e)
		if err != nil {
			return 0, err
		}
		leftSite, err := t.m.FaceAttr(left)
		if err != nil {
			return 0, err
		}
		if leftSite.Infinite {
			t.m.SetHint(e)
			return e, nil
		}

		// Step 4: x is left of Onext(e).
		onext, err := t.m.Onext(e)
		if err != nil {
			return 0, err
		}
		if leftOf, err := t.leftOfEdge(x, onext); err != nil {
			return 0, err
		} else if leftOf {
			e = onext
			continue
		}

		// Step 5: x is left of Dprev(e).
		dprev, err := t.m.Dprev(e)
		if err != nil {
			return 0, err
		}
		if leftOf, err := t.leftOfEdge(x, dprev); err != nil {
			return 0, err
		} else if leftOf {
			e = dprev
			continue
		}

		// Step 6: x is strictly inside the left face of e.
		t.m.SetHint(e)
		return e, nil
	}
}

// leftOfEdge reports whether x lies strictly left of directed edge e
// (i.e., ccw(x, Org(e), Dest(e))... actually ccw(Org(e), Dest(e), x)).
func (t *Triangulation) leftOfEdge(x geom2d.Point, e quadid.PEdgeID) (bool, error) {
	orgId, err := t.m.Org(e)
	if err != nil {
		return false, err
	}
	destId, err := t.m.Dest(e)
	if err != nil {
		return false, err
	}
	org, err := t.m.VertexAttr(orgId)
	if err != nil {
		return false, err
	}
	dest, err := t.m.VertexAttr(destId)
	if err != nil {
		return false, err
	}
	return ccw(org, dest, x), nil
}

// startEdge picks LocatePoint's initial edge: the per-mesh hint if one is
// recorded, else the spatial index's nearest-vertex incident edge if the
// index is enabled, else the first live primal edge.
func (t *Triangulation) startEdge(x geom2d.Point) (quadid.PEdgeID, error) {
	if hint, ok := t.m.Hint(); ok {
		return hint, nil
	}
	if t.index != nil {
		if id, ok := t.index.Nearest(x); ok {
			if e, ok := t.incidentEdge(id); ok {
				return e, nil
			}
		}
	}
	if e, ok := t.m.FirstLivePrimal(); ok {
		return e, nil
	}
	return 0, mesh.ErrStaleEntity
}

// incidentEdge returns any live primal edge with origin v, by scanning the
// mesh. This is O(n) worst case; it is only ever used to seed a single
// LocatePoint call, not in a hot loop.
func (t *Triangulation) incidentEdge(v mesh.VertexId) (quadid.PEdgeID, bool) {
	for e, ok := t.m.FirstLivePrimal(); ok; e, ok = t.m.NextLivePrimal(e) {
		if orgId, err := t.m.Org(e); err == nil && orgId == v {
			return e, true
		}
		if destId, err := t.m.Dest(e); err == nil && destId == v {
			return e.Sym(), true
		}
	}
	return 0, false
}
