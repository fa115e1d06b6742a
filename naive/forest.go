package naive

import (
	"fmt"

	"github.com/katalvlaran/dynaforest/core"
)

const nilIdx = -1

// Forest is the simplest possible correct dynamic forest: one parent
// array, walked iteratively on every query. It exists only to check the
// balanced engines against (spec §4.5, §8 invariant 4); it makes no
// attempt to be fast.
//
// Grounded on naive::Root/Cut/Link/LeafmostCommonAnc of tree-inl.h,
// translated from pointer chasing to index chasing over a parent slice
// per spec §9's recursion-avoidance note — Evert below is the one
// operation the original implements recursively in spirit (repeated
// parent reassignment along a path) and is kept iterative here exactly as
// the original already is.
type Forest struct {
	parent []int
	n      int
}

// NewForest constructs an n-vertex naive forest of isolated vertices.
func NewForest(n int) *Forest {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = nilIdx
	}

	return &Forest{parent: parent, n: n}
}

// Size returns the fixed vertex count n.
func (f *Forest) Size() int { return f.n }

// Root walks v's parent chain to the represented-tree root.
func (f *Forest) Root(v int) int {
	for f.parent[v] != nilIdx {
		v = f.parent[v]
	}

	return v
}

// Connected reports whether u and v share a root. Never fails; an
// out-of-range index is reported as false, matching every other engine's
// contract.
func (f *Forest) Connected(u, v int) bool {
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return false
	}

	return f.Root(u) == f.Root(v)
}

// Evert makes v the root of its represented tree by reversing every
// parent pointer from v down to the old root, in place and without
// recursion (naive::WithEvert::Evert).
func (f *Forest) Evert(v int) {
	var prev = nilIdx
	for v != nilIdx {
		next := f.parent[v]
		f.parent[v] = prev
		prev = v
		v = next
	}
}

// Link joins the trees of u and v by adding the edge (u, v): u is everted
// and then made a child of v (spec §4.1). Fails with
// core.ErrPreconditionViolated if they are already connected or an index
// is out of range.
func (f *Forest) Link(u, v int) error {
	if err := core.ValidateEndpoints(f.n, u, v); err != nil {
		return err
	}
	if f.Connected(u, v) {
		return fmt.Errorf("naive: link(%d,%d): already connected: %w", u, v, core.ErrPreconditionViolated)
	}
	f.Evert(u)
	f.parent[u] = v

	return nil
}

// CutEdge removes the represented edge (u, v). Fails with
// core.ErrPreconditionViolated if (u, v) is not an edge.
func (f *Forest) CutEdge(u, v int) error {
	if err := core.ValidateEndpoints(f.n, u, v); err != nil {
		return err
	}
	switch {
	case f.parent[u] == v:
		f.parent[u] = nilIdx
	case f.parent[v] == u:
		f.parent[v] = nilIdx
	default:
		return fmt.Errorf("naive: cut(%d,%d): not an edge: %w", u, v, core.ErrPreconditionViolated)
	}

	return nil
}

// Cut is the single-vertex "cut from parent" primitive (spec §4.4):
// detaches v from its current parent, if any, and returns the old parent
// index (or -1 if v was already a root).
func (f *Forest) Cut(v int) int {
	p := f.parent[v]
	f.parent[v] = nilIdx

	return p
}

// Depth returns the number of parent-pointer steps from v up to its
// represented-tree root under the current rooting. Exposed alongside
// Root/LCA as an observational primitive equivalence's distance-invariant
// check needs (naive::LeafmostCommonAnc's depth helper).
func (f *Forest) Depth(v int) int {
	d := 0
	for f.parent[v] != nilIdx {
		v = f.parent[v]
		d++
	}

	return d
}

// LCA returns the leafmost common ancestor of u and v along the current
// parent-chain orientation, or -1 if they are not in the same tree
// (naive::LeafmostCommonAnc).
func (f *Forest) LCA(u, v int) int {
	if f.Root(u) != f.Root(v) {
		return nilIdx
	}
	du, dv := f.Depth(u), f.Depth(v)
	for du > dv {
		u = f.parent[u]
		du--
	}
	for dv > du {
		v = f.parent[v]
		dv--
	}
	for u != v {
		u = f.parent[u]
		v = f.parent[v]
	}

	return u
}
