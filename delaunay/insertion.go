package delaunay

import (
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
	"github.com/katalvlaran/quadedge/quadid"
)

// InsertDelaunayVertex locates p, splits the mesh to include it as a new
// vertex, and restores the empty-circle property by flipping any edge the
// insertion leaves non-Delaunay. Inserting a point that coincides with an
// existing vertex is a no-op.
func (t *Triangulation) InsertDelaunayVertex(p geom2d.Point) error {
	e, err := t.LocatePoint(p)
	if err != nil {
		return err
	}

	orgId, err := t.m.Org(e)
	if err != nil {
		return err
	}
	destId, err := t.m.Dest(e)
	if err != nil {
		return err
	}
	org, err := t.m.VertexAttr(orgId)
	if err != nil {
		return err
	}
	dest, err := t.m.VertexAttr(destId)
	if err != nil {
		return err
	}
	if p == org || p == dest {
		return nil
	}
	// The third corner of e's left face is the remaining existing vertex
	// that p can coincide with.
	if apexEdge, err := t.m.Lnext(e); err == nil {
		if apexId, err := t.m.Dest(apexEdge); err == nil {
			if apex, err := t.m.VertexAttr(apexId); err == nil && apex == p {
				return nil
			}
		}
	}

	left, err := t.m.Left(e)
	if err != nil {
		return err
	}
	leftSite, err := t.m.FaceAttr(left)
	if err != nil {
		return err
	}

	var worklist []quadid.PEdgeID
	if leftSite.Infinite {
		worklist, err = t.insertExterior(p, e)
	} else {
		worklist, err = t.insertInterior(p, e)
	}
	if err != nil {
		return err
	}

	return t.restoreDelaunay(worklist)
}

// insertInterior splits the finite triangle left of e around a new vertex
// at p, fanning three (or more, if e's face is not a triangle) new spokes
// and reassigning faces so each sub-triangle gets a distinct id — the
// first keeps e's original face, the rest get freshly allocated ones. It
// returns the edges opposite p in each new triangle, the candidates the
// restoration walk must examine.
func (t *Triangulation) insertInterior(p geom2d.Point, e quadid.PEdgeID) ([]quadid.PEdgeID, error) {
	oldFace, err := t.m.Left(e)
	if err != nil {
		return nil, err
	}

	v := t.m.InsertVertex(p)
	t.IndexVertex(v, p)

	spoke0, err := t.m.ConnectVertex(e.Sym(), v)
	if err != nil {
		return nil, err
	}
	t.notifyInserted(spoke0)
	fanEnd := spoke0.Sym()

	cur := e
	base := spoke0
	for {
		newSpoke, err := t.m.ConnectPrimal(cur, base.Sym())
		if err != nil {
			return nil, err
		}
		t.notifyInserted(newSpoke)
		base = newSpoke

		nextCur, err := t.m.Oprev(newSpoke)
		if err != nil {
			return nil, err
		}
		cur = nextCur

		lnextCur, err := t.m.Lnext(cur)
		if err != nil {
			return nil, err
		}
		if lnextCur == spoke0 {
			break
		}
	}

	return t.assignFanFaces(fanEnd, oldFace, true)
}

// insertExterior extends the hull around a new vertex at p, which lies
// outside the triangulation, visible through the run of hull edges
// bracketing e. The infinite face is pushed outward by construction: the
// two extreme new spokes inherit it without extra bookkeeping. Every new
// finite triangle gets a freshly allocated face —
// there is no old finite face to reuse, since the space p fills in was
// previously the infinite face. It returns the edges opposite p in each
// new triangle.
func (t *Triangulation) insertExterior(p geom2d.Point, e quadid.PEdgeID) ([]quadid.PEdgeID, error) {
	start, end, err := t.hullVisibleRange(p, e)
	if err != nil {
		return nil, err
	}

	v := t.m.InsertVertex(p)
	t.IndexVertex(v, p)

	spoke0, err := t.m.ConnectVertex(start.Sym(), v)
	if err != nil {
		return nil, err
	}
	t.notifyInserted(spoke0)
	fanEnd := spoke0.Sym()

	cur := start
	lastSpoke := spoke0
	for {
		processed := cur
		newSpoke, err := t.m.ConnectPrimal(cur, fanEnd)
		if err != nil {
			return nil, err
		}
		t.notifyInserted(newSpoke)
		lastSpoke = newSpoke

		nextCur, err := t.m.Oprev(newSpoke)
		if err != nil {
			return nil, err
		}
		cur = nextCur

		if processed == end {
			break
		}
	}

	return t.assignOpenFanFaces(fanEnd, lastSpoke.Sym())
}

// hullVisibleRange returns the maximal contiguous run [start, end] of hull
// edges (Left infinite) visible from p, given a hull edge e already known
// to be visible or collinear with p. It walks the hull ring both ways
// from e via Lprev and Lnext.
func (t *Triangulation) hullVisibleRange(p geom2d.Point, e quadid.PEdgeID) (start, end quadid.PEdgeID, err error) {
	start = e
	for {
		prev, err := t.m.Lprev(start)
		if err != nil {
			return 0, 0, err
		}
		visible, err := t.hullEdgeVisible(p, prev)
		if err != nil {
			return 0, 0, err
		}
		if !visible {
			break
		}
		start = prev
	}

	end = e
	for {
		next, err := t.m.Lnext(end)
		if err != nil {
			return 0, 0, err
		}
		visible, err := t.hullEdgeVisible(p, next)
		if err != nil {
			return 0, 0, err
		}
		if !visible {
			break
		}
		end = next
	}

	return start, end, nil
}

// hullEdgeVisible reports whether p lies on or outside the hull edge e
// (ccwOrLinear(p, Org(e), Dest(e))), i.e. whether e is visible from p.
func (t *Triangulation) hullEdgeVisible(p geom2d.Point, e quadid.PEdgeID) (bool, error) {
	left, err := t.m.Left(e)
	if err != nil {
		return false, err
	}
	leftSite, err := t.m.FaceAttr(left)
	if err != nil {
		return false, err
	}
	if !leftSite.Infinite {
		return false, nil
	}

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

	return ccwOrLinear(p, org, dest), nil
}

// assignFanFaces walks the closed ring of new triangles around p starting
// at fanEnd, assigning each a face id — oldFace to the first when
// reuseFirst is set, a fresh allocation to every other — and collects the
// edge opposite p in each (the restoration walk's worklist).
func (t *Triangulation) assignFanFaces(fanEnd quadid.PEdgeID, oldFace mesh.FaceId, reuseFirst bool) ([]quadid.PEdgeID, error) {
	var worklist []quadid.PEdgeID
	cur := fanEnd
	first := true
	for {
		faceId := oldFace
		if !first || !reuseFirst {
			faceId = t.m.InsertFace(geom2d.FiniteSite(geom2d.Point{}))
		}
		first = false

		boundary, err := t.m.Lnext(cur)
		if err != nil {
			return nil, err
		}
		thirdEdge, err := t.m.Lnext(boundary)
		if err != nil {
			return nil, err
		}

		if err := t.m.SetLeft(cur, faceId); err != nil {
			return nil, err
		}
		if err := t.m.SetLeft(boundary, faceId); err != nil {
			return nil, err
		}
		if err := t.m.SetLeft(thirdEdge, faceId); err != nil {
			return nil, err
		}
		worklist = append(worklist, boundary)

		cur = thirdEdge.Sym()
		if cur == fanEnd {
			break
		}
	}
	return worklist, nil
}

// assignOpenFanFaces is assignFanFaces' counterpart for hull extension: the
// fan is an open chain from fanEnd to lastOut rather than a closed ring
// (the two ends remain adjacent to the infinite face), so every triangle
// gets a fresh face and the walk stops at lastOut instead of wrapping.
func (t *Triangulation) assignOpenFanFaces(fanEnd, lastOut quadid.PEdgeID) ([]quadid.PEdgeID, error) {
	var worklist []quadid.PEdgeID
	cur := fanEnd
	for cur != lastOut {
		faceId := t.m.InsertFace(geom2d.FiniteSite(geom2d.Point{}))

		boundary, err := t.m.Lnext(cur)
		if err != nil {
			return nil, err
		}
		thirdEdge, err := t.m.Lnext(boundary)
		if err != nil {
			return nil, err
		}

		if err := t.m.SetLeft(cur, faceId); err != nil {
			return nil, err
		}
		if err := t.m.SetLeft(boundary, faceId); err != nil {
			return nil, err
		}
		if err := t.m.SetLeft(thirdEdge, faceId); err != nil {
			return nil, err
		}
		worklist = append(worklist, boundary)

		cur = thirdEdge.Sym()
	}
	return worklist, nil
}

// restoreDelaunay walks the worklist of edges opposite the just-inserted
// vertex, flipping any that fail IsDelaunay. A flip can expose new suspect
// edges — the two edges of the newly formed triangles that are themselves
// now opposite the inserted vertex — so those are pushed back onto the
// worklist instead of advancing past them.
func (t *Triangulation) restoreDelaunay(worklist []quadid.PEdgeID) error {
	stack := append([]quadid.PEdgeID(nil), worklist...)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ok, err := t.IsDelaunay(e)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		if err := t.m.Swap(e); err != nil {
			return err
		}
		t.notifyRemoved(e)
		t.notifyInserted(e)

		lprevE, err := t.m.Lprev(e)
		if err != nil {
			return err
		}
		lnextSym, err := t.m.Lnext(e.Sym())
		if err != nil {
			return err
		}
		stack = append(stack, lprevE, lnextSym)
	}
	return nil
}
