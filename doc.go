// Package quadedge is an incremental Delaunay triangulation built atop a
// quad-edge planar subdivision.
//
// What is quadedge?
//
//	A pure-Go implementation of the Guibas–Stolfi quad-edge data structure:
//	four parallel arenas (vertices, faces, primal directed edges, dual
//	directed edges) addressed by stable slot ids, plus the topological
//	primitives (MakeEdge, Splice, ConnectPrimal, ConnectVertex, Swap,
//	DeletePrimal) that every higher-level mesh operation is built from.
//
// Why a quad-edge mesh?
//
//   - One structure, two duals — the same edit to the primal subdivision
//     is simultaneously an edit to its Voronoi dual; no separate
//     bookkeeping is required.
//   - O(1) navigation — Rot, RotInv and Sym are bit operations on the
//     edge id; there is no pointer chasing to find a rotated twin.
//   - Generic core — the topological layer (package mesh) knows nothing
//     about geometry; package delaunay specializes it to 2D points and
//     Voronoi sites to get an incremental Delaunay triangulator.
//
// Package layout:
//
//	quadid/       — stateless rotation algebra on edge ids
//	mesh/         — generic arena + topological operators + ring iteration
//	delaunay/     — geometric predicates, point location, incremental insertion
//	bootstrap/    — scaffold triangulations to seed a mesh
//	spatialindex/ — uniform-grid acceleration for point location
//	meshgraph/    — exports a triangulation's 1-skeleton for graph algorithms
//	observer/     — read-only change-notification interfaces
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for the
// full specification this module implements.
package quadedge
