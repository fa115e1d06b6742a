package dynamictree

// childSide reports which solid-child slot of p holds x (0 or 1); x must
// be a solid child of p.
func (f *Forest[V, A]) childSide(p, x int32) int {
	if f.nodes[p].solid[0] == x {
		return 0
	}

	return 1
}

// rotate moves x above its parent p within their shared auxiliary splay
// tree, preserving in-order (depth) order and path-parent pointers of
// siblings untouched by the rotation. Standard top-tree splay rotation,
// following the teacher's "single canonical primitive" shape used by
// stt.rotate for the STT engine's analogous operation.
func (f *Forest[V, A]) rotate(x int32) {
	p := f.nodes[x].parent
	g := f.nodes[p].parent
	pWasRoot := f.isRoot(p)
	side := f.childSide(p, x)
	other := 1 - side

	child := f.nodes[x].solid[other]
	f.nodes[p].solid[side] = child
	if child != nilIdx {
		f.nodes[child].parent = p
	}
	f.nodes[x].solid[other] = p
	f.nodes[p].parent = x
	f.nodes[x].parent = g
	if !pWasRoot {
		gSide := f.childSide(g, p)
		f.nodes[g].solid[gSide] = x
	}

	f.pull(p)
	f.pull(x)
}

// splay pushes down pending flips along the path from the auxiliary root
// to x, then rotates x to that root, using the standard zig/zig-zig/
// zig-zag case split.
func (f *Forest[V, A]) splay(x int32) {
	// Collect the path from the top down so pushDown sees parents before
	// children, then apply it.
	path := f.splayPathBuf[:0]
	for y := x; ; {
		path = append(path, y)
		if f.isRoot(y) {
			break
		}
		y = f.nodes[y].parent
	}
	for i := len(path) - 1; i >= 0; i-- {
		f.pushDown(path[i])
	}
	f.splayPathBuf = path[:0]

	for !f.isRoot(x) {
		p := f.nodes[x].parent
		if f.isRoot(p) {
			f.rotate(x)
			break
		}
		g := f.nodes[p].parent
		if (f.childSide(g, p) == 0) == (f.childSide(p, x) == 0) {
			f.rotate(p)
			f.rotate(x)
		} else {
			f.rotate(x)
			f.rotate(x)
		}
	}
}
