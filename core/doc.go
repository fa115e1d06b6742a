// Package core defines the shared contract every dynamic-forest engine in
// this module satisfies, plus the sentinel errors and validation helper
// used to report precondition violations uniformly across engines.
//
// It intentionally carries no forest implementation of its own: the STT
// engine lives in package stt, the self-adjusting link-cut engine lives in
// package dynamictree, and the pointer-chasing reference engine lives in
// package naive. The stt and dynamictree forests implement Engine so that
// package bench, package equivalence, and cmd/dynaforest can be written
// once against this interface and run unmodified against any backend;
// the naive reference does not implement Engine and is driven directly by
// package equivalence.
package core
