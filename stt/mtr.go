package stt

// mtrPolicy implements Move-to-Root (spec §4.3.2): climb rotates v to the
// top; whenever v would be an illegal rotation target (v non-separator,
// parent a separator), first rotate the parent up until it stops being a
// separator, then rotate v.
//
// Grounded on VARIANT 6 of
// _examples/original_source/stt-cpp/mtr_stt.cpp, which tracks v's NST
// across the whole climb via rotate's return value instead of re-reading
// the parent's slots on every iteration (spec §4.3.2's "v_sep_type...
// without re-reading the parent's fields").
type mtrPolicy struct{}

func (mtrPolicy) name() string { return "mtr" }

func (mtrPolicy) access(f *Forest, v int32) {
	vType := f.sepType(v)
	for vType != nosep {
		vType = f.rotateTypeHint(v, vType)
	}

	for f.nodes[v].parent != nilIdx {
		p := f.nodes[v].parent
		pType := f.sepType(p)
		for pType != nosep {
			pType = f.rotateTypeHint(p, pType)
		}
		// Both v and p are now non-separators: a plain rotation of v is
		// legal.
		f.rotateNosep(v)
	}
}
