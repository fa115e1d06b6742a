// Package naive is the pointer-chasing (here, index-chasing) reference
// dynamic forest used exclusively by package equivalence as ground truth.
// Every operation walks the parent array directly; nothing is balanced or
// cached. Grounded on
// _examples/original_source/dtree/dtree-May_2014/dtree/naive/tree-inl.h.
package naive
