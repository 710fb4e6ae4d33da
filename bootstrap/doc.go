// SPDX-License-Identifier: MIT
// Package: quadedge/bootstrap
//
// Package bootstrap seeds a delaunay.Triangulation with a small scaffold
// mesh before any point is inserted: a triangle or a square large enough
// to strictly contain a point cloud's bounding box. Every subsequent
// InsertDelaunayVertex call then locates into a non-empty mesh instead of
// needing special-cased bootstrap logic of its own.
//
// What
//
//   - SuperTriangle builds a three-vertex, one-face scaffold: the
//     classical Bowyer-Watson "super triangle" enclosing the input points.
//   - BoundingBox builds a four-vertex, two-face scaffold: an axis-aligned
//     square split along one diagonal, for callers that prefer a
//     rectangular working area (e.g. clamping later queries to it).
//   - Both use Triangulation.Mesh()'s construction escape hatch to call
//     MakeEdge/ConnectVertex/ConnectPrimal/SetLeft/SetRight directly,
//     exactly the way a hand-built fixture in package mesh's own test
//     suite would, rather than going through InsertDelaunayVertex.
//
// Why
//
//   - Factoring scaffold construction out of delaunay keeps that package's
//     insertion algorithm free of one-time-setup special cases: by the
//     time InsertDelaunayVertex runs, the mesh already has a located edge
//     for every reachable point to walk from.
package bootstrap
