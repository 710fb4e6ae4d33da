package delaunay

import "github.com/katalvlaran/quadedge/quadid"

// IsDelaunay reports whether interior edge e satisfies the empty-circle
// property, given the triangles (x,y,a) on its left and (y,x,b) on its
// right, where x=Org(e), y=Dest(e), a=Dest(Onext(e)), b=Dest(Oprev(e)).
// An edge is automatically Delaunay if either incident face is the
// infinite face.
func (t *Triangulation) IsDelaunay(e quadid.PEdgeID) (bool, error) {
	left, err := t.m.Left(e)
	if err != nil {
		return false, err
	}
	leftSite, err := t.m.FaceAttr(left)
	if err != nil {
		return false, err
	}
	if leftSite.Infinite {
		return true, nil
	}

	right, err := t.m.Right(e)
	if err != nil {
		return false, err
	}
	rightSite, err := t.m.FaceAttr(right)
	if err != nil {
		return false, err
	}
	if rightSite.Infinite {
		return true, nil
	}

	orgId, err := t.m.Org(e)
	if err != nil {
		return false, err
	}
	destId, err := t.m.Dest(e)
	if err != nil {
		return false, err
	}
	onext, err := t.m.Onext(e)
	if err != nil {
		return false, err
	}
	aId, err := t.m.Dest(onext)
	if err != nil {
		return false, err
	}
	oprev, err := t.m.Oprev(e)
	if err != nil {
		return false, err
	}
	bId, err := t.m.Dest(oprev)
	if err != nil {
		return false, err
	}

	x, err := t.m.VertexAttr(orgId)
	if err != nil {
		return false, err
	}
	y, err := t.m.VertexAttr(destId)
	if err != nil {
		return false, err
	}
	a, err := t.m.VertexAttr(aId)
	if err != nil {
		return false, err
	}
	b, err := t.m.VertexAttr(bId)
	if err != nil {
		return false, err
	}

	det := inCircleDet(a, x, y, b)
	if det == 0 {
		t.logDegenerate("inCircle", a, x, y, b)
	}
	return det <= 0, nil
}
