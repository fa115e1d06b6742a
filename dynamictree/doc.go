// Package dynamictree implements the self-adjusting (splay-based)
// Sleator-Tarjan link-cut tree: Expose/Link/Cut/Evert/Root/Connected/LCA
// plus optional value and aggregate decorations generic over any V/A pair
// (spec §4.4). Every public operation except AddAlongPath (linear in the
// path length) is O(log n) amortized.
//
// What & why
//
//   - Each vertex's position is a node in a splay tree along its
//     preferred path; path-parent pointers (not stored as solid edges)
//     stitch preferred paths together into the full represented tree.
//     Expose splices a vertex's path to the root and splays it to the
//     top, re-establishing the preferred path as it goes (spec §4.4).
//   - Evert flips the represented tree's root by toggling the lazy
//     orientation bit on the exposed vertex's whole solid subtree; the
//     bit is pushed down to children lazily, one splay step at a time.
//   - Value/aggregate decoration is supplied by the caller as small
//     function bundles (ValueOps[V], AggrOps[V, A]) rather than through
//     the original C++ source's mixin/template-parameter composition
//     (spec §9's explicit redesign guidance): Go generics over a node
//     type parameterized by V and A give the same flexibility without a
//     class hierarchy.
//
// Error conditions: core.ErrPreconditionViolated (via ErrNotConnected,
// ErrNotAnEdge) for Link across an existing component, CutEdge of a
// non-edge, or an LCA/PathAggregate query on a disconnected pair.
package dynamictree
