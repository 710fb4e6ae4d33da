package bootstrap

import "errors"

// ErrNoPoints indicates that SuperTriangle or BoundingBox was called with
// an empty point slice; there is no bounding box to scaffold around.
var ErrNoPoints = errors.New("bootstrap: no points")
