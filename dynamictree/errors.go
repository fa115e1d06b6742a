package dynamictree

import (
	"fmt"

	"github.com/katalvlaran/dynaforest/core"
)

// ErrNotConnected wraps core.ErrPreconditionViolated for LCA/PathAggregate
// queries issued on a disconnected pair.
var ErrNotConnected = fmt.Errorf("dynamictree: vertices are not connected: %w", core.ErrPreconditionViolated)

// ErrNotAnEdge wraps core.ErrPreconditionViolated for CutEdge calls whose
// argument pair is not currently a represented-tree edge.
var ErrNotAnEdge = fmt.Errorf("dynamictree: not an edge: %w", core.ErrPreconditionViolated)
