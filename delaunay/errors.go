package delaunay

import "errors"

// ErrInvariantViolation names the condition in which the Delaunay property
// does not hold for some interior edge after a restoration pass. No
// function in this package returns it; mesh-level corruption is reported
// by mesh.CheckInvariants as mesh.ErrInvariantViolation.
var ErrInvariantViolation = errors.New("delaunay: invariant violation")
