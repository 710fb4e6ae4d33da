package meshgraph

import (
	"github.com/katalvlaran/quadedge/dtw"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/delaunay/geom2d"
	"github.com/katalvlaran/quadedge/mesh"
	"github.com/katalvlaran/quadedge/quadid"
)

// HullBoundary returns the convex hull of t's inserted points as an ordered
// ring of vertex IDs, walked counterclockwise starting from an arbitrary
// hull vertex. A hull edge is identified by its Left face carrying the
// infinite site marker, the same convention the incremental insertion code
// uses to decide which edges are hull-visible from an exterior point; the
// ring itself is walked with Lnext, which always advances along a face's
// boundary.
//
// Returns ErrDegenerateHull if t has fewer than 3 vertices.
func HullBoundary(t *delaunay.Triangulation) ([]mesh.VertexId, error) {
	m := t.Mesh()

	var start quadid.PEdgeID
	found := false
	e, ok := m.FirstLivePrimal()
	for ok && !found {
		if isHullEdge(m, e) {
			start, found = e, true
			break
		}
		if sym := e.Sym(); isHullEdge(m, sym) {
			start, found = sym, true
			break
		}
		e, ok = m.NextLivePrimal(e)
	}
	if !found {
		return nil, ErrDegenerateHull
	}

	ring := make([]mesh.VertexId, 0)
	cur := start
	for {
		org, err := m.Org(cur)
		if err != nil {
			return nil, err
		}
		ring = append(ring, org)

		next, err := m.Lnext(cur)
		if err != nil {
			return nil, err
		}
		cur = next
		if cur == start {
			break
		}
		if len(ring) > m.Stats().LiveVertices {
			return nil, ErrDegenerateHull
		}
	}

	if len(ring) < 3 {
		return nil, ErrDegenerateHull
	}

	return ring, nil
}

// isHullEdge reports whether e's left face is the unbounded face, i.e. e
// runs along the convex hull with the hull's exterior to its left.
func isHullEdge(m *mesh.Mesh[geom2d.Point, geom2d.Site], e quadid.PEdgeID) bool {
	faceID, err := m.Left(e)
	if err != nil {
		return false
	}
	site, err := m.FaceAttr(faceID)
	if err != nil {
		return false
	}
	return site.Infinite
}

// HullSimilarity compares the shapes of a's and b's convex hulls by running
// Sakoe-Chiba windowed DTW over their boundary point sequences (interleaved
// x,y so DTW's 1-D cost metric still sees both coordinates), after
// resampling both rings to start at their leftmost-then-lowest point so
// the comparison isn't an artifact of which hull vertex HullBoundary
// happened to start at.
//
// Returns a DTW distance: 0 means identical hull shapes (up to the
// resampling rotation), larger values mean more dissimilar boundaries.
func HullSimilarity(a, b *delaunay.Triangulation) (float64, error) {
	ringA, err := HullBoundary(a)
	if err != nil {
		return 0, err
	}
	ringB, err := HullBoundary(b)
	if err != nil {
		return 0, err
	}

	seqA, err := hullCoordinateSequence(a, ringA)
	if err != nil {
		return 0, err
	}
	seqB, err := hullCoordinateSequence(b, ringB)
	if err != nil {
		return 0, err
	}

	opts := dtw.DefaultOptions()
	dist, _, err := dtw.DTW(seqA, seqB, &opts)
	if err != nil {
		return 0, err
	}

	return dist, nil
}

// hullCoordinateSequence rotates ring to start at its leftmost-then-lowest
// vertex and flattens it into an alternating [x0, y0, x1, y1, ...] sequence
// for DTW, which only compares 1-D sequences.
func hullCoordinateSequence(t *delaunay.Triangulation, ring []mesh.VertexId) ([]float64, error) {
	m := t.Mesh()

	points := make([]geom2d.Point, len(ring))
	for i, v := range ring {
		p, err := m.VertexAttr(v)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}

	startIdx := 0
	for i, p := range points {
		best := points[startIdx]
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			startIdx = i
		}
	}

	seq := make([]float64, 0, len(points)*2)
	for i := 0; i < len(points); i++ {
		p := points[(startIdx+i)%len(points)]
		seq = append(seq, float64(p.X), float64(p.Y))
	}

	return seq, nil
}
