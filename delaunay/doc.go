// SPDX-License-Identifier: MIT
// Package: quadedge/delaunay
//
// Package delaunay specializes the generic quad-edge mesh to planar point
// sets: vertex attribute V = geom2d.Point, face attribute F = geom2d.Site
// (a finite Voronoi dual point, or the sentinel infinite outer face). It
// adds exact-sign geometric predicates (ccw, ccwOrLinear, inCircle), point
// location by edge-walk (LocatePoint), and incremental insertion with
// edge-flip restoration of the empty-circle (Delaunay) property.
//
// What
//
//   - Triangulation wraps a *mesh.Mesh[geom2d.Point, geom2d.Site] and the
//     bookkeeping insertion needs: the LocatePoint hint (delegated to the
//     mesh itself), an optional spatialindex.Index accelerant, a set of
//     observer.Observer subscribers, and an injectable DegeneracyLogger.
//   - InsertDelaunayVertex(p) is the one public mutator: locate, then
//     dispatch to insertInterior or insertExterior depending on whether
//     the located edge's left face is infinite, then restore the
//     Delaunay property by walking and flipping suspect edges.
//
// Why
//
//   - Keeping the predicates and the insertion algorithm in one package
//     that owns the V/F instantiation lets the topological layer (package
//     mesh) stay fully generic and ignorant of geometry: quad-edge algebra,
//     topological mesh, and Delaunay layer stay cleanly separated.
//
// Numeric model
//
//   - Single-precision (float32) is the baseline throughout: upgrading to
//     exact arithmetic is a policy choice this repository does not make
//     (see DESIGN.md).
//
// Degenerate input
//
//   - Collinear triples and cocircular quadruples resolve to the
//     conservative predicate value; no error is raised. Cocircular
//     quadruples met by IsDelaunay are reported to the optional
//     DegeneracyLogger hook; collinear triples are not reported.
package delaunay
