package stt

import (
	"fmt"

	"github.com/katalvlaran/dynaforest/core"
)

// ErrUnsupportedOperation wraps core.ErrPreconditionViolated for workload
// item types the STT engines do not implement: CutFromParent, LCA, and
// PathAggregate are dynamic-tree-engine-only per spec §9's open question.
// An STT Forest rejects them outright rather than aborting.
var ErrUnsupportedOperation = fmt.Errorf("stt: operation requires the dynamictree engine: %w", core.ErrPreconditionViolated)

// Option configures a Forest at construction time.
type Option func(*Forest)

// WithRotationCounter threads an opt-in rotation counter into a Forest:
// every call to rotate/rotateDsep/rotateIsep/rotateNosep increments
// *counter. Counting is off unless this option is given; it is chosen per
// Forest at run time, not by a build flag. Never a package-level global —
// each Forest owns its own pointer, or none at all.
func WithRotationCounter(counter *int64) Option {
	return func(f *Forest) {
		f.rotations = counter
	}
}

// Forest is an STT-backed dynamic forest over the fixed vertex set
// [0, n). The restructuring policy (Greedy Splay, MTR, or LTP) is fixed at
// construction and never changes the represented-forest semantics, only
// the auxiliary-tree shape and hence the amortized constant (spec §1).
type Forest struct {
	nodes     []node
	pol       policy
	n         int
	rotations *int64
}

// NewGreedy constructs an n-vertex STT forest that restructures with
// Greedy Splay (spec §4.3.1): the deepest legal splay step on the local
// four-node chain at every step of the climb.
func NewGreedy(n int, opts ...Option) *Forest {
	return newForest(n, greedyPolicy{}, opts)
}

// NewMTR constructs an n-vertex STT forest that restructures with
// Move-to-Root (spec §4.3.2): v is rotated to the top, clearing any
// separator parent in its way first.
func NewMTR(n int, opts ...Option) *Forest {
	return newForest(n, mtrPolicy{}, opts)
}

// NewLTP constructs an n-vertex STT forest that restructures with Local
// Two-Pass (spec §4.3.3): like Greedy Splay but with lookahead bounded to
// the local four-node chain, falling back to a move-branching-node loop
// when neither v nor its parent can be spliced directly.
func NewLTP(n int, opts ...Option) *Forest {
	return newForest(n, ltpPolicy{}, opts)
}

func newForest(n int, pol policy, opts []Option) *Forest {
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = emptyNode()
	}
	f := &Forest{nodes: nodes, pol: pol, n: n}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Size returns the fixed vertex count, satisfying core.Engine.
func (f *Forest) Size() int { return f.n }

// PolicyName reports which restructuring discipline this Forest uses
// ("greedy", "mtr", or "ltp"), mainly useful for bench/CLI labelling.
func (f *Forest) PolicyName() string { return f.pol.name() }

func (f *Forest) countRotation() {
	if f.rotations != nil {
		*f.rotations++
	}
}

// access runs the Forest's restructuring policy at v, leaving v at the
// root of its auxiliary tree (spec §4.3's access(v) contract).
func (f *Forest) access(v int32) {
	f.pol.access(f, v)
}

// Link joins the trees containing u and v (spec §4.3.4). Fails with
// core.ErrPreconditionViolated if u and v are already connected, or if
// either index is out of range.
func (f *Forest) Link(u, v int) error {
	if err := core.ValidateEndpoints(f.n, u, v); err != nil {
		return err
	}
	ui, vi := int32(u), int32(v)
	f.access(ui)
	f.access(vi)
	if f.sttRoot(ui) == vi {
		return fmt.Errorf("stt: link(%d,%d): already connected: %w", u, v, core.ErrPreconditionViolated)
	}
	// After both accesses, ui is the root of its own auxiliary tree
	// (access(vi) cannot have touched it, since they are in different
	// trees) and ui.dsepChild is nil, so attach is a plain non-separator
	// parent assignment (spec §4.3.4).
	f.nodes[ui].parent = vi

	return nil
}

// Cut removes the represented edge (u, v) (spec §4.3.4). Fails with
// core.ErrPreconditionViolated if (u, v) is not currently an edge of the
// represented forest, or if either index is out of range.
func (f *Forest) Cut(u, v int) error {
	if err := core.ValidateEndpoints(f.n, u, v); err != nil {
		return err
	}
	ui, vi := int32(u), int32(v)
	f.access(ui)
	f.access(vi)
	if f.nodes[ui].parent != vi || f.isSeparator(ui) {
		return fmt.Errorf("stt: cut(%d,%d): not an edge: %w", u, v, core.ErrPreconditionViolated)
	}
	f.nodes[ui].parent = nilIdx

	return nil
}

// Connected reports whether u and v lie in the same represented tree
// (spec §4.3.4). Never fails; an out-of-range index is reported as false.
func (f *Forest) Connected(u, v int) bool {
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return false
	}
	ui, vi := int32(u), int32(v)
	if ui == vi {
		return true
	}
	f.access(ui)
	f.access(vi)

	return f.sttRoot(ui) == vi
}

// CutFromParent and LCA are spec §3.4 workload item types admitted by the
// grammar, and PathAggregate is a dynamic-tree query; all three are
// meaningful only for the dynamic-tree engine (spec §9's open question). An STT Forest rejects them rather than
// aborting.
func (f *Forest) CutFromParent(int) error   { return ErrUnsupportedOperation }
func (f *Forest) LCA(int, int) (int, error) { return -1, ErrUnsupportedOperation }
func (f *Forest) PathAggregate(int, int) (int, error) {
	return 0, ErrUnsupportedOperation
}
