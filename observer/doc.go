// SPDX-License-Identifier: MIT
// Package: quadedge/observer
//
// Package observer defines a read-only external-collaborator interface:
// visualization (or any other consumer) watches a triangulation change
// over time without ever mutating it. Unlike a per-call hook (a
// bfs.Option/dijkstra.Option-style callback passed once to a single
// traversal), an Observer is a persistent subscription — it outlives any
// single insertion, because a renderer wants to track a mesh across its
// whole lifetime, not one call.
package observer
