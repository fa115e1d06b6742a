package core

import "errors"

// ErrPreconditionViolated is returned by an Engine's Link or Cut when the
// caller's precondition does not hold: Link across vertices already in the
// same tree, Cut of a pair that is not a represented edge, an out-of-range
// vertex index, or u == v where distinct vertices are required.
var ErrPreconditionViolated = errors.New("core: precondition violated")

// ErrOutOfRange indicates a vertex index outside [0, n). Always wrapped
// behind ErrPreconditionViolated by ValidateEndpoints so callers can branch
// on either sentinel with errors.Is.
var ErrOutOfRange = errors.New("core: vertex index out of range")

// ErrSameVertex indicates u == v where the operation requires two distinct
// vertices.
var ErrSameVertex = errors.New("core: expected distinct vertices")
