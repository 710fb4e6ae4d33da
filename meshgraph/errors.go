package meshgraph

import "errors"

// ErrVertexNotFound indicates a requested mesh.VertexId has no live vertex
// slot in the triangulation passed to Export or one of its consumers.
var ErrVertexNotFound = errors.New("meshgraph: vertex not found")

// ErrEmptyTriangulation indicates an operation that needs at least one
// vertex (a tour, a spanning tree, a hull) was given an empty mesh.
var ErrEmptyTriangulation = errors.New("meshgraph: triangulation has no vertices")

// ErrDisconnected indicates an operation that needs every vertex reachable
// from a common root (MST, a Hamiltonian tour) found the mesh's 1-skeleton
// split into more than one component.
var ErrDisconnected = errors.New("meshgraph: triangulation is disconnected")

// ErrDegenerateHull indicates a hull-boundary operation was given a
// triangulation with fewer than 3 hull vertices (e.g. an empty or
// single-triangle scaffold with no inserted points).
var ErrDegenerateHull = errors.New("meshgraph: hull has fewer than 3 vertices")
