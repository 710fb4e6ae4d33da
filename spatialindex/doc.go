// SPDX-License-Identifier: MIT
// Package: quadedge/spatialindex
//
// Package spatialindex buckets live vertices into a uniform grid of square
// cells, accelerating package delaunay's LocatePoint walk by giving it a
// nearby starting vertex when no last-location hint is recorded.
// It is a pure accelerant: disabling it changes expected walk length, not
// correctness.
//
// Grounded on builder.Grid's constructor (impl_grid.go, a
// fixed row/col coordinate scheme with deterministic 4-neighborhood edges)
// and gridgraph's island/cell model, generalized from a graph-construction
// helper to a nearest-neighbor acceleration structure over float
// coordinates instead of integer grid coordinates.
package spatialindex
