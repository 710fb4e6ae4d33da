// SPDX-License-Identifier: MIT
// Package: quadedge/delaunay/geom2d
//
// Package geom2d defines the two small value types the Delaunay layer
// attaches to a mesh: Point (the vertex attribute) and Site (the face
// attribute, a finite Voronoi dual point or the infinite outer face).
// Both are comparable value structs, following the matrix package's
// convention of giving small shared types their own file next to the
// algorithms that use them.
package geom2d
