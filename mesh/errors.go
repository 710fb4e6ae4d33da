// SPDX-License-Identifier: MIT
// Package: quadedge/mesh
//
// errors.go — sentinel errors for the mesh package.
//
// Error policy (matches core's convention):
//   - Only package-level sentinel values are exposed.
//   - Callers branch with errors.Is(err, ErrX), never string comparison.
//   - Operators fail without side effect: an ErrStaleEntity return means
//     the mesh was not mutated.
package mesh

import "errors"

// ErrStaleEntity is returned when an operation references a tombstoned or
// out-of-range vertex, face, primal-edge, or dual-edge slot.
var ErrStaleEntity = errors.New("mesh: stale or unknown entity")

// ErrNotReserved is returned by FillVertex when the target slot was not
// produced by ReserveVertex, or was already filled.
var ErrNotReserved = errors.New("mesh: slot was not reserved")

// ErrInvariantViolation signals that an internal consistency check failed
// (e.g. an Onext ring that never closes, or a Rot composition that does
// not return to its start). It is fatal: the mesh is considered corrupt.
// It is only raised by the consistency checks in invariants.go, which
// callers may run in tests; normal operation never triggers it.
var ErrInvariantViolation = errors.New("mesh: invariant violation")
