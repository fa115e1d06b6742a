package dynamictree

// ltNode is one vertex's splay-tree record in the self-adjusting
// link-cut tree. solid[0] points rootward (toward lower depth on the
// current preferred path), solid[1] points leafward; parent is either a
// solid edge (when this node is not the root of its auxiliary splay
// tree) or a path-parent pointer (when it is) — the two cases are
// distinguished by isRoot, never stored as a separate bit (spec §3.3:
// "three bits identifying which slot... and whether its subtree
// orientation is flipped"; here the slot identity is derived the same
// way STT's NST is derived, and flip is the only bit actually stored).
//
// value and aggr decorate the node per the generic ValueOps[V]/AggrOps
// the owning Forest was built with: value is the vertex's own datum,
// aggr is the combine of the whole solid subtree rooted here (spec
// §4.4's aggregate guarantee).
type ltNode[V any, A any] struct {
	parent int32
	solid  [2]int32
	flip   bool
	value  V
	aggr   A
}

func emptyLTNode[V any, A any](value V, aggr A) ltNode[V, A] {
	return ltNode[V, A]{parent: nilIdx, solid: [2]int32{nilIdx, nilIdx}, value: value, aggr: aggr}
}

const nilIdx int32 = -1

// isRoot reports whether x is the root of its own auxiliary splay tree,
// i.e. its parent pointer (if any) is a path-parent pointer rather than a
// solid edge (spec §3.3's solid/dashed/dotted classification).
func (f *Forest[V, A]) isRoot(x int32) bool {
	p := f.nodes[x].parent
	if p == nilIdx {
		return true
	}

	return f.nodes[p].solid[0] != x && f.nodes[p].solid[1] != x
}

// pushDown propagates x's pending flip bit one level down, swapping its
// solid children and toggling their own flip bits, per spec §4.4's lazy
// reverse discipline.
func (f *Forest[V, A]) pushDown(x int32) {
	nd := &f.nodes[x]
	if !nd.flip {
		return
	}
	nd.flip = false
	nd.solid[0], nd.solid[1] = nd.solid[1], nd.solid[0]
	for _, c := range nd.solid {
		if c != nilIdx {
			f.nodes[c].flip = !f.nodes[c].flip
		}
	}
}

// pull recomputes x's aggregate from its two solid children plus its own
// value, after any structural change touching x (spec §4.4: "updating
// exactly the affected nodes on the way out of each splay").
func (f *Forest[V, A]) pull(x int32) {
	nd := &f.nodes[x]
	a := f.aops.FromValue(nd.value)
	if l := nd.solid[0]; l != nilIdx {
		a = f.aops.Combine(f.nodes[l].aggr, a)
	}
	if r := nd.solid[1]; r != nilIdx {
		a = f.aops.Combine(a, f.nodes[r].aggr)
	}
	nd.aggr = a
}
