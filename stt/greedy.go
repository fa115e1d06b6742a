package stt

// greedyPolicy implements Greedy Splay (spec §4.3.1): repeat until v is
// the auxiliary-tree root, picking the deepest legal splay step on the
// chain v, parent, grandparent, great-grandparent.
//
// Grounded on VARIANT 3 of
// _examples/original_source/stt-cpp/greedy_stt.cpp ("Improved Greedy impl
// from Rust lib, using NodeSepType"), rewritten against the Go node arena
// and rotateTypeHint/splayStepTypeHint helpers of rotate.go.
type greedyPolicy struct{}

func (greedyPolicy) name() string { return "greedy" }

func (greedyPolicy) access(f *Forest, v int32) {
	nd := f.nodes
	for {
		p := nd[v].parent
		if p == nilIdx {
			return
		}
		g := nd[p].parent
		if g == nilIdx {
			// p is root: a single rotation of v is always legal here.
			f.rotate(v)
			continue
		}
		vSep := f.sepTypeOf(v, p)
		pSep := f.sepTypeOf(p, g)

		if vSep != nosep && pSep != nosep {
			// Both v and parent are separators: splaying at v is legal
			// without even looking at g's NST.
			f.splayStepTypeHint(v, vSep, p, pSep)
			continue
		}

		gg := nd[g].parent
		if gg == nilIdx {
			// g is root, so splaying at v must be legal (case 2: a
			// non-separator grandparent makes a single rotation legal).
			f.splayStepTypeHint(v, vSep, p, pSep)
			continue
		}
		gSep := f.sepTypeOf(g, gg)
		switch {
		case gSep == nosep:
			// grandparent not a separator: splay at v.
			f.splayStepTypeHint(v, vSep, p, pSep)
		case pSep != nosep:
			// g and p are both separators: splaying at p is legal.
			f.splayStepTypeHint(p, pSep, g, gSep)
		default:
			// Neither v-splay nor p-splay is legal yet: g is a
			// separator and p is not, so splay at g (proven legal by
			// exhaustion of the earlier cases, spec §4.3.1 step 4).
			ggg := nd[gg].parent
			ggSep := f.sepTypeOf(gg, ggg)
			if ggSep == nosep {
				f.splayStepTypeHint(p, pSep, g, gSep)
			} else {
				f.splayStepTypeHint(g, gSep, gg, ggSep)
			}
		}
	}
}
