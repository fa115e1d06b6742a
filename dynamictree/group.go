package dynamictree

import "golang.org/x/exp/constraints"

// ValueOps describes the group (associative, invertible) structure of the
// per-vertex decoration a caller attaches along represented-tree paths
// (spec §4.4: "Values support a group... typical instances are addition,
// bitwise-xor, or a no-op"). Identity must be Plus's neutral element;
// Minus must be the group inverse operation (Minus(Plus(a,b), b) == a).
//
// Grounded on dtree::Group_'s typedef-of-operations shape in
// _examples/original_source/dtree/dtree-May_2014/dtree/naive/common.h,
// translated from a C++ template-parameter "type with static methods" to
// a Go generic function bundle, per spec §9's explicit guidance against
// carrying the mixin/template-parameter idiom forward verbatim.
type ValueOps[V any] struct {
	Identity func() V
	Plus     func(a, b V) V
	Minus    func(a, b V) V
}

// AggrOps describes the semigroup (associative combine) structure of a
// subtree/path aggregate (spec §4.4: "Aggregates support a semigroup...
// count, min/max, sum, or directed pairs"). FromValue lifts one vertex's
// stored value into a singleton aggregate; Combine merges two adjacent
// aggregates; Empty is the identity of Combine, used for missing
// children.
type AggrOps[V any, A any] struct {
	Empty     func() A
	Combine   func(a, b A) A
	FromValue func(v V) A
}

// Nop returns the trivial ValueOps for plain connectivity use, where no
// per-vertex value is tracked. Mirrors dtree::Nop<Type> from the original
// source.
func Nop[V any]() ValueOps[V] {
	var zero V

	return ValueOps[V]{
		Identity: func() V { return zero },
		Plus:     func(a, _ V) V { return a },
		Minus:    func(a, _ V) V { return a },
	}
}

// NopAggr returns the trivial AggrOps for plain connectivity use.
func NopAggr[V any, A any]() AggrOps[V, A] {
	var zero A

	return AggrOps[V, A]{
		Empty:     func() A { return zero },
		Combine:   func(a, _ A) A { return a },
		FromValue: func(V) A { return zero },
	}
}

// SumOps builds AggrOps for any numeric type by summing FromValue-mapped
// leaf contributions; package equivalence uses it to count the vertices
// on a path.
func SumOps[V any, A Number](fromValue func(V) A) AggrOps[V, A] {
	return AggrOps[V, A]{
		Empty:     func() A { var z A; return z },
		Combine:   func(a, b A) A { return a + b },
		FromValue: fromValue,
	}
}

// MinOps builds AggrOps combining by minimum.
func MinOps[V any, A Number](top A, fromValue func(V) A) AggrOps[V, A] {
	return AggrOps[V, A]{
		Empty: func() A { return top },
		Combine: func(a, b A) A {
			if a < b {
				return a
			}

			return b
		},
		FromValue: fromValue,
	}
}

// MaxOps builds AggrOps combining by maximum.
func MaxOps[V any, A Number](bottom A, fromValue func(V) A) AggrOps[V, A] {
	return AggrOps[V, A]{
		Empty: func() A { return bottom },
		Combine: func(a, b A) A {
			if a > b {
				return a
			}

			return b
		},
		FromValue: fromValue,
	}
}

// Number is the numeric constraint backing SumOps/MinOps/MaxOps, reusing
// golang.org/x/exp/constraints (as newbthenewbd-btrfs-rec does) rather
// than hand-duplicating per-type aggregate helpers (SPEC_FULL.md §2's
// domain-stack wiring).
type Number interface {
	constraints.Integer | constraints.Float
}
