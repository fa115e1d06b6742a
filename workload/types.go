package workload

// Type is the operation kind of a workload Item (spec §3.4). Only Link,
// Cut, and Path are required for the connectivity core; CutFromParent and
// LCA are dynamic-tree-engine-only (spec §9).
type Type int

const (
	Link Type = iota
	Cut
	CutFromParent
	LCA
	Path
)

// String renders the Type as the single-letter prefix it parses from
// (spec §6.2's grammar table), for diagnostics.
func (t Type) String() string {
	switch t {
	case Link:
		return "i"
	case Cut:
		return "d"
	case CutFromParent:
		return "d1"
	case LCA:
		return "a"
	case Path:
		return "p"
	default:
		return "?"
	}
}

// Item is one workload operation: `{type, a, b, c}` with a, b, c ∈
// [-1, n) (spec §3.4). C is reserved for future three-argument item types
// and unused by the grammar of spec §6.2; it is always -1 today.
type Item struct {
	Type Type
	A    int
	B    int
	C    int
}
