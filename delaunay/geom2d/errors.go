package geom2d

import "errors"

// ErrInvalidPoint is returned when a coordinate is NaN or ±Inf. This is the
// sole input-validation boundary of the Delaunay layer:
// everything past NewPoint assumes finite coordinates.
var ErrInvalidPoint = errors.New("geom2d: non-finite coordinate")
