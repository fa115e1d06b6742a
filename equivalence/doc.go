// Package equivalence drives random, precondition-respecting workloads
// against the naive reference engine and one or more core.Engine backends
// in lock-step, asserting identical Connected answers after every step
// (spec §4.5, §8 invariant 4, scenario S6). It encodes the behavioural
// contract shared by every engine in this module.
package equivalence
