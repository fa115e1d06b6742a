package dynamictree

import (
	"errors"

	"github.com/katalvlaran/dynaforest/core"
)

// expose splices x's preferred path to the represented-tree root, leaving
// x at the root of the resulting auxiliary splay tree (spec §4.4's
// `expose(v)`, conventionally also called `access`). Returns the last
// node reached just before x itself — the previous top of x's preferred
// path, which is the node at which the LCA of two vertices is found when
// expose is called twice in a row (spec §4.4's `LCA(u,v)`).
func (f *Forest[V, A]) expose(x int32) int32 {
	last := nilIdx
	for y := x; y != nilIdx; {
		f.splay(y)
		f.nodes[y].solid[1] = last
		f.pull(y)
		last = y
		y = f.nodes[y].parent
	}
	f.splay(x)

	return last
}

// toggle reverses x's own solid-subtree orientation immediately (swapping
// its two children and flagging the flip for later push-down into those
// children), the primitive behind Evert.
func (f *Forest[V, A]) toggle(x int32) {
	if x == nilIdx {
		return
	}
	nd := &f.nodes[x]
	nd.solid[0], nd.solid[1] = nd.solid[1], nd.solid[0]
	for _, c := range nd.solid {
		if c != nilIdx {
			f.nodes[c].flip = !f.nodes[c].flip
		}
	}
}

// Evert makes v the root of its represented tree (spec §4.4). O(log n)
// amortized.
func (f *Forest[V, A]) Evert(v int) {
	x := int32(v)
	f.expose(x)
	f.toggle(x)
}

// Root returns the represented-tree root of v's component (spec §4.4).
// O(log n) amortized.
func (f *Forest[V, A]) Root(v int) int {
	x := int32(v)
	f.expose(x)
	f.pushDown(x)
	for f.nodes[x].solid[0] != nilIdx {
		x = f.nodes[x].solid[0]
		f.pushDown(x)
	}
	f.splay(x)

	return int(x)
}

// Connected reports whether u and v lie in the same represented tree
// (spec §4.1/§4.4). Never fails; an out-of-range index is reported as
// false.
func (f *Forest[V, A]) Connected(u, v int) bool {
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return false
	}
	if u == v {
		return true
	}

	return f.Root(u) == f.Root(v)
}

// LCA returns the leafmost common ancestor of u and v in the represented
// tree's current rooting (spec §4.4), or an error wrapping
// core.ErrPreconditionViolated if they are not connected. Unlike
// Connected/Link/Cut, LCA depends on which vertex is currently the
// represented root — callers that need a specific root must Evert it
// first.
//
// Implementation: expose(u) solidifies the whole root..u path into one
// auxiliary splay tree; expose(v) then walks v's path-parent pointers
// upward, and the node reached exactly when it first touches that
// already-solid root..u tree is the branch point — which is also the
// last node recorded by expose's own bookkeeping, since from there on
// every further step stays within one solid tree and the walk terminates
// immediately (that top node's parent becomes nil as soon as it is
// splayed to the front).
func (f *Forest[V, A]) LCA(u, v int) (int, error) {
	if err := f.validate(u, v); err != nil && !errors.Is(err, core.ErrSameVertex) {
		return -1, err
	}
	if !f.Connected(u, v) {
		return -1, ErrNotConnected
	}
	ui, vi := int32(u), int32(v)
	f.expose(ui)
	anc := f.expose(vi)

	return int(anc), nil
}
