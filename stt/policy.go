package stt

// policy is the restructuring discipline a Forest applies inside access.
// All three implementations leave v at the auxiliary-tree root and
// preserve represented-tree semantics; they differ only in which legal
// rotation they pick at each step of the climb (spec §4.3).
type policy interface {
	access(f *Forest, v int32)
	name() string
}
