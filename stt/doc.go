// Package stt implements the search-tree-on-tree (STT) dynamic forest:
// each vertex's auxiliary tree position is encoded with only a parent
// pointer plus two separator-child slots (dsep, isep), no explicit
// left/right children. Three access policies — Greedy Splay, Move-to-Root
// (MTR), and Local Two-Pass (LTP) — restructure the auxiliary trees
// differently on every access but answer link/cut/connected identically.
//
// What & why
//
//   - An STT represents an unrooted forest without ever storing which
//     direction is "up": a node p's child c is either a non-separator
//     (the represented edge is (c, p)) or a separator occupying p.dsep or
//     p.isep (the represented edge is (c, p.parent) — c separates p from
//     its own parent in the represented tree). This lets a single
//     rotation primitive keep the represented forest invariant while
//     rebalancing the auxiliary tree, without ever touching more than the
//     six nodes the spec's decision table names.
//   - access(v) climbs v to the auxiliary-tree root while only ever
//     performing legal rotations (v is a separator, or v's parent is
//     not); the three policies differ only in which legal rotation they
//     pick at each step, which is where their amortized bounds diverge.
//
// Complexity: every Link/Cut/Connected is O(log n) amortized for MTR and
// LTP, and O(log n) expected-amortized for Greedy Splay (spec §4.1).
//
// Error conditions
//
//   - ErrUnsupportedOperation: CutFromParent/LCA workload items and
//     PathAggregate queries are dynamic-tree-engine-only (spec §9's open
//     question); an STT Forest rejects them with ErrUnsupportedOperation
//     wrapping core.ErrPreconditionViolated rather than aborting. Path
//     items are connectivity queries and are answered by Connected.
//   - core.ErrPreconditionViolated: Link across the same tree, Cut of a
//     non-edge, or an out-of-range vertex index.
package stt
