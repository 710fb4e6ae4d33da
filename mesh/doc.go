// Package mesh is the topological layer of the quad-edge data structure:
// four parallel arenas (vertices, faces, primal directed edges, dual
// directed edges) addressed by stable slot ids, and the Guibas–Stolfi
// topological primitives built on top of them.
//
// What
//
//   - Mesh[V, F] owns storage for vertex attributes V, face attributes F,
//     and the primal/dual directed edges that connect them. Vertices and
//     faces are generic over their attribute type; the topological layer
//     assumes nothing about V or F beyond their being ordinary Go values.
//     Package delaunay instantiates Mesh[geom2d.Point, geom2d.Site]; this
//     package's own tests instantiate Mesh[string, string] as a labelled
//     test mesh, matching the design stance that the topological core is
//     reusable for non-geometric meshes.
//   - MakeEdge allocates a fresh isolated quad. Splice is the one
//     primitive everything else reduces to: it merges or splits a pair of
//     Onext rings (and, simultaneously, the corresponding dual rings).
//     ConnectPrimal, ConnectVertex, Swap and DeletePrimal are all expressed
//     in terms of Splice plus direct slot writes.
//   - Ring iteration (OnextRing) walks a vertex's or face's incident edges
//     in O(degree) time using a Go 1.23 range-over-func iterator.
//
// Why
//
//   - Keeping this layer generic and storage-only means the hard geometric
//     work (predicates, point location, edge-flip restoration) lives one
//     layer up, in package delaunay, and can be tested against a
//     non-geometric instantiation of the same topological machinery.
//
// Concurrency
//
//   - Unlike core.Graph, Mesh carries no mutex: it assumes a
//     single-owner, single-threaded caller and performs no locking of its
//     own. Callers that share a Mesh across goroutines must synchronize
//     externally.
//
// Failure semantics
//
//   - Every topological operator fails with ErrStaleEntity if any input id
//     refers to a tombstoned or out-of-range slot, and otherwise never
//     fails. MakeEdge is the exception: it has no error result and stores
//     the vertex and face ids it is given without checking them. Because
//     slot ids are never reused, a tombstoned id can never alias a live one.
package mesh
