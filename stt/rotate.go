package stt

// rotate moves v above its parent p, re-establishing every invariant of
// §3.2 in one pass. It is always legal to call when v is a separator of p,
// or p is not a separator of its own parent g (spec §4.2's legality rule);
// callers that already know v's NST should prefer rotateDsep/rotateIsep/
// rotateNosep, which elide the branches that NST makes statically
// impossible. Returns the NST that p — the node that used to sit above
// v — had before the rotation, which is v's NST after it (v takes over
// p's slot in g); many callers reuse it as v's new NST instead of
// recomputing it.
//
// Grounded on the ROT_NST branch of
// _examples/original_source/stt-cpp/stt.h, translated from a pointer
// struct to the int32 arena of node.go.
func (f *Forest) rotate(v int32) nst {
	nd := f.nodes
	p := nd[v].parent
	g := nd[p].parent
	c := nd[v].dsepChild

	nd[v].parent = g
	nd[p].parent = v
	if c != nilIdx {
		nd[c].parent = p
		nd[c].dsepChild, nd[c].isepChild = nd[c].isepChild, nd[c].dsepChild
	}

	pType := nosep
	if g != nilIdx {
		oldPDsep := nd[p].dsepChild
		if oldPDsep != nilIdx && oldPDsep != v {
			nd[p].isepChild = oldPDsep
		} else if nd[p].isepChild == v {
			nd[p].isepChild = nilIdx
		}

		if p == nd[g].dsepChild {
			pType = dsep
			nd[g].dsepChild = v
		} else if p == nd[g].isepChild {
			pType = isep
			nd[g].isepChild = v
		}

		if oldPDsep != v {
			// p separates v and g.
			nd[v].dsepChild = p
		} else {
			// v separates p and g.
			nd[v].dsepChild = nd[v].isepChild
			if pType != nosep {
				nd[v].isepChild = p
			} else {
				nd[v].isepChild = nilIdx
			}
		}
	} else {
		nd[v].dsepChild = nilIdx
	}
	nd[p].dsepChild = c

	f.countRotation()

	return pType
}

// rotateDsep is rotate specialized for the case where v is already known
// to occupy p.dsepChild (so p is guaranteed not to be the auxiliary root).
func (f *Forest) rotateDsep(v int32) nst {
	nd := f.nodes
	p := nd[v].parent
	g := nd[p].parent
	c := nd[v].dsepChild

	nd[v].parent = g
	nd[p].parent = v
	if c != nilIdx {
		nd[c].parent = p
		nd[c].dsepChild, nd[c].isepChild = nd[c].isepChild, nd[c].dsepChild
	}

	pType := nosep
	if p == nd[g].dsepChild {
		pType = dsep
		nd[g].dsepChild = v
	} else if p == nd[g].isepChild {
		pType = isep
		nd[g].isepChild = v
	}

	// v separates p and g.
	nd[v].dsepChild = nd[v].isepChild
	if pType != nosep {
		nd[v].isepChild = p
	} else {
		nd[v].isepChild = nilIdx
	}
	nd[p].dsepChild = c

	f.countRotation()

	return pType
}

// rotateIsep is rotate specialized for the case where v is already known
// to occupy p.isepChild.
func (f *Forest) rotateIsep(v int32) nst {
	nd := f.nodes
	p := nd[v].parent
	g := nd[p].parent
	c := nd[v].dsepChild

	nd[v].parent = g
	nd[p].parent = v
	if c != nilIdx {
		nd[c].parent = p
		nd[c].dsepChild, nd[c].isepChild = nd[c].isepChild, nd[c].dsepChild
	}

	oldPDsep := nd[p].dsepChild
	nd[p].isepChild = oldPDsep

	pType := nosep
	if p == nd[g].dsepChild {
		pType = dsep
		nd[g].dsepChild = v
	} else if p == nd[g].isepChild {
		pType = isep
		nd[g].isepChild = v
	}

	// p separates v and g: known, since v was p's isep child.
	nd[v].dsepChild = p
	nd[p].dsepChild = c

	f.countRotation()

	return pType
}

// rotateNosep is rotate specialized for the case where both v and p are
// known not to be separators. Always returns nosep.
func (f *Forest) rotateNosep(v int32) nst {
	nd := f.nodes
	p := nd[v].parent
	g := nd[p].parent
	c := nd[v].dsepChild

	nd[v].parent = g
	nd[p].parent = v
	if c != nilIdx {
		nd[c].parent = p
		nd[c].dsepChild, nd[c].isepChild = nd[c].isepChild, nd[c].dsepChild
	}

	if g != nilIdx {
		oldPDsep := nd[p].dsepChild
		if oldPDsep != nilIdx {
			nd[p].isepChild = oldPDsep
		}
		// p cannot be a separator child of g, or this rotation would
		// not have been legal.
		nd[v].dsepChild = p
	} else {
		nd[v].dsepChild = nilIdx
	}
	nd[p].dsepChild = c

	f.countRotation()

	return nosep
}

// rotateTypeHint dispatches to the specialization matching the already
// known NST t of v, avoiding a redundant parent-slot read.
func (f *Forest) rotateTypeHint(v int32, t nst) nst {
	switch t {
	case dsep:
		return f.rotateDsep(v)
	case isep:
		return f.rotateIsep(v)
	default:
		return f.rotateNosep(v)
	}
}

// splayStepTypeHint performs one splay step (spec §4.2): two rotations
// that move v two auxiliary-tree levels up. vType/pType are v and p's NST
// before the step, already known to the caller.
func (f *Forest) splayStepTypeHint(v int32, vType nst, p int32, pType nst) {
	if vType == dsep {
		f.rotateDsep(v)
		f.rotateTypeHint(v, pType)
	} else {
		f.rotateTypeHint(p, pType)
		f.rotate(v)
	}
}
