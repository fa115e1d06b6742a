package dynamictree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynaforest/core"
)

// Forest is a self-adjusting (splay-based) link-cut tree over the fixed
// vertex set [0, n), generic over a per-vertex value type V and a
// path/subtree aggregate type A (spec §4.4, §3.3). Every operation except
// AddAlongPath (linear in the path length) is O(log n) amortized.
type Forest[V any, A any] struct {
	nodes        []ltNode[V, A]
	n            int
	vops         ValueOps[V]
	aops         AggrOps[V, A]
	splayPathBuf []int32
}

// NewForest constructs an n-vertex dynamic tree decorated with vops/aops.
func NewForest[V any, A any](n int, vops ValueOps[V], aops AggrOps[V, A]) *Forest[V, A] {
	nodes := make([]ltNode[V, A], n)
	for i := range nodes {
		nodes[i] = emptyLTNode[V, A](vops.Identity(), aops.Empty())
	}

	return &Forest[V, A]{nodes: nodes, n: n, vops: vops, aops: aops, splayPathBuf: make([]int32, 0, 64)}
}

// NewConnectivityForest builds a Forest decorated with no value or
// aggregate (V = A = struct{}), for callers that only need
// Link/Cut/Connected — mirrors dtree::Nop<Type> giving a pure
// connectivity instance in the original source.
func NewConnectivityForest(n int) *Forest[struct{}, struct{}] {
	return NewForest[struct{}, struct{}](n, Nop[struct{}](), NopAggr[struct{}, struct{}]())
}

// Size satisfies core.Engine.
func (f *Forest[V, A]) Size() int { return f.n }

func (f *Forest[V, A]) validate(u, v int) error {
	return core.ValidateEndpoints(f.n, u, v)
}

// Link joins the trees containing u and v by making v the new represented
// parent of u's tree (spec §4.4: `evert(u); expose(v);` then attach).
// Fails with core.ErrPreconditionViolated if u and v are already
// connected, or if either index is out of range.
func (f *Forest[V, A]) Link(u, v int) error {
	if err := f.validate(u, v); err != nil {
		return err
	}
	if f.Connected(u, v) {
		return fmt.Errorf("dynamictree: link(%d,%d): already connected: %w", u, v, core.ErrPreconditionViolated)
	}
	ui, vi := int32(u), int32(v)
	f.Evert(int(ui))
	f.expose(vi)
	f.nodes[ui].parent = vi

	return nil
}

// CutFromParent detaches v from its current represented-tree parent (if
// any), per spec §4.4's single-vertex `cut(v)`. Returns true if v had a
// parent and was detached, false if v was already a tree root.
func (f *Forest[V, A]) CutFromParent(v int) bool {
	x := int32(v)
	f.expose(x)
	left := f.nodes[x].solid[0]
	if left == nilIdx {
		return false
	}
	f.nodes[left].parent = nilIdx
	f.nodes[x].solid[0] = nilIdx
	f.pull(x)

	return true
}

// CutEdge removes the represented edge (u, v): the two-vertex form needed
// by core.Engine and the workload's `d u v` item, derived from Evert +
// expose per SPEC_FULL.md §5 — v becomes the represented root, then u's
// immediate parent (the sole node on u's side of the path, if u and v are
// directly adjacent) must be exactly v. Fails with
// core.ErrPreconditionViolated if (u, v) is not currently an edge.
func (f *Forest[V, A]) CutEdge(u, v int) error {
	if err := f.validate(u, v); err != nil {
		return err
	}
	ui, vi := int32(u), int32(v)
	f.Evert(int(vi))
	f.expose(ui)
	left := f.nodes[ui].solid[0]
	if left != vi || f.nodes[left].solid[0] != nilIdx || f.nodes[left].solid[1] != nilIdx {
		return fmt.Errorf("dynamictree: cut(%d,%d): %w", u, v, ErrNotAnEdge)
	}
	f.nodes[left].parent = nilIdx
	f.nodes[ui].solid[0] = nilIdx
	f.pull(ui)

	return nil
}

// Cut is the core.Engine-facing alias for CutEdge.
func (f *Forest[V, A]) Cut(u, v int) error { return f.CutEdge(u, v) }

// PathValue returns v's own accumulated V-value: the group sum of every
// delta that AddAlongPath has applied to a path containing v. It reads
// v's stored value; it does not sum values along v's ancestor path.
func (f *Forest[V, A]) PathValue(v int) V {
	x := int32(v)
	f.expose(x)

	return f.nodes[x].value
}

// AddAlongPath composes delta into every vertex on the path from the
// current represented root to v inclusive, via the ValueOps group
// (spec §4.4). Implemented by exposing v (so the whole path becomes one
// solid subtree rooted at v) and then visiting every node of that
// subtree, adding delta to each stored value and recomputing aggregates
// on the way back up. This Forest has no lazy "value delta" slot, so the
// update is eager and its cost is linear in the length of the path, not
// O(log n).
func (f *Forest[V, A]) AddAlongPath(v int, delta V) {
	x := int32(v)
	f.expose(x)
	f.addAlongSolidSubtree(x, delta)
}

func (f *Forest[V, A]) addAlongSolidSubtree(x int32, delta V) {
	if x == nilIdx {
		return
	}
	f.pushDown(x)
	nd := &f.nodes[x]
	nd.value = f.vops.Plus(nd.value, delta)
	f.addAlongSolidSubtree(nd.solid[0], delta)
	f.addAlongSolidSubtree(nd.solid[1], delta)
	f.pull(x)
}

// PathAggregate returns the combine of every vertex's aggregate
// contribution on the path from u to v inclusive (spec §4.4). Fails with
// core.ErrPreconditionViolated if u and v are not connected.
func (f *Forest[V, A]) PathAggregate(u, v int) (A, error) {
	var zero A
	if err := f.validate(u, v); err != nil && !errors.Is(err, core.ErrSameVertex) {
		return zero, err
	}
	if !f.Connected(u, v) {
		return zero, ErrNotConnected
	}
	ui, vi := int32(u), int32(v)
	f.Evert(int(ui))
	f.expose(vi)

	return f.nodes[vi].aggr, nil
}
