package stt

// ltpPolicy implements Local Two-Pass (spec §4.3.3): like Greedy Splay,
// but lookahead never reaches past the great-grandparent's separator
// status; when that is inconclusive, a local moveBranchingNode loop
// rotates the branching node (g) up until it is no longer a separator,
// instead of recomputing NSTs from scratch.
//
// Grounded on VARIANT 8 of
// _examples/original_source/stt-cpp/ltp_stt.cpp ("Improved impl with
// NodeSepType and less re-trying").
type ltpPolicy struct{}

func (ltpPolicy) name() string { return "ltp" }

func (ltpPolicy) access(f *Forest, v int32) {
	nd := f.nodes
	for {
		p := nd[v].parent
		if p == nilIdx {
			return
		}
		g := nd[p].parent
		if g == nilIdx {
			f.rotate(v)
			continue
		}
		vSep := f.sepTypeOf(v, p)
		pSep := f.sepTypeOf(p, g)

		if vSep != nosep && pSep != nosep {
			f.splayStepTypeHint(v, vSep, p, pSep)
			continue
		}

		gg := nd[g].parent
		if gg == nilIdx {
			f.splayStepTypeHint(v, vSep, p, pSep)
			continue
		}
		gSep := f.sepTypeOf(g, gg)
		switch {
		case gSep == nosep:
			f.splayStepTypeHint(v, vSep, p, pSep)
		case pSep != nosep:
			f.splayStepTypeHint(p, pSep, g, gSep)
		default:
			// !p_sep and g_sep: neither v nor p can be splayed yet.
			// Rotate the branching node (g) upward until it stops being
			// a separator, rather than recursing into the full
			// four-node lookahead again.
			f.moveBranchingNode(g)
		}
	}
}

// moveBranchingNode rotates v upward until it is no longer a separator of
// its parent, reusing each rotation's returned NST instead of re-reading
// parent slots (spec §4.3.3's "efficiency refinement").
func (f *Forest) moveBranchingNode(v int32) {
	nd := f.nodes
	for {
		p := nd[v].parent
		if p == nilIdx {
			return
		}
		vSep := f.sepTypeOf(v, p)
		if vSep == nosep {
			return
		}
		g := nd[p].parent // must exist: v is a separator of p
		pSep := f.sepTypeOf(p, g)
		if pSep != nosep {
			f.splayStepTypeHint(v, vSep, p, pSep)
			continue
		}
		f.rotateTypeHint(v, vSep)

		return
	}
}
