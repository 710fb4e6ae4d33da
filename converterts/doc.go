// Package converters provides two-way adapters between core.Graph and
// popular Go graph libraries:
//   - dominikbraun/graph
//   - gonum/graph
//   - hmdsefi/gograph
//   - yourbasic/graph
//
// Use converters to import/export adjacency, weights, and metadata between
// this module and external graph representations.
package converters
