// SPDX-License-Identifier: MIT
// Package: quadedge/meshgraph
//
// Package meshgraph exports a delaunay.Triangulation's primal 1-skeleton
// (its vertices and live edges) as a Euclidean-weighted graph, and wires
// that graph into a handful of classical graph algorithms: minimum
// spanning tree, shortest path, reachability, an approximate traveling
// salesman tour, spectral analysis, max flow, and hull-shape comparison.
//
// Every exported function here is a read-only, pure function of a
// Triangulation snapshot: none of them mutate the mesh, and none of them
// cache state across calls.
package meshgraph
