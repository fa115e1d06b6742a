package equivalence

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dynaforest/core"
	"github.com/katalvlaran/dynaforest/dynamictree"
	"github.com/katalvlaran/dynaforest/naive"
	"github.com/katalvlaran/dynaforest/workload"
)

// edgeKey encodes an undirected pair as a single map key, lowest index
// first.
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// RandomWorkload generates a feasible random sequence of ops link/cut/
// path items over n vertices: every LINK only pairs vertices in
// different components, every CUT references a live edge, and PATH
// queries an arbitrary pair — mirroring how tsp/rng.go and
// prim_kruskal_test.go's buildMediumGraph keep randomized generation
// deterministic (seeded *rand.Rand) and well-formed (spec §8 scenario
// S6, SPEC_FULL.md §7).
func RandomWorkload(n, ops int, seed int64) []workload.Item {
	r := rand.New(rand.NewSource(seed))
	nf := naive.NewForest(n)
	edgeList := make([][2]int, 0, ops)
	edgeIdx := make(map[[2]int]int, ops)
	items := make([]workload.Item, 0, ops)

	removeEdge := func(k [2]int) {
		i, ok := edgeIdx[k]
		if !ok {
			return
		}
		last := len(edgeList) - 1
		edgeList[i] = edgeList[last]
		edgeIdx[edgeList[i]] = i
		edgeList = edgeList[:last]
		delete(edgeIdx, k)
	}

	for len(items) < ops {
		switch r.Intn(3) {
		case 0: // LINK
			if n < 2 {
				continue
			}
			u, v := r.Intn(n), r.Intn(n)
			if u == v || nf.Connected(u, v) {
				continue
			}
			_ = nf.Link(u, v)
			k := edgeKey(u, v)
			edgeIdx[k] = len(edgeList)
			edgeList = append(edgeList, k)
			items = append(items, workload.Item{Type: workload.Link, A: u, B: v, C: -1})
		case 1: // CUT
			if len(edgeList) == 0 {
				continue
			}
			k := edgeList[r.Intn(len(edgeList))]
			_ = nf.CutEdge(k[0], k[1])
			removeEdge(k)
			items = append(items, workload.Item{Type: workload.Cut, A: k[0], B: k[1], C: -1})
		default: // PATH
			if n == 0 {
				continue
			}
			u, v := r.Intn(n), r.Intn(n)
			items = append(items, workload.Item{Type: workload.Path, A: u, B: v, C: -1})
		}
	}

	return items
}

// Divergence describes the first point at which an engine's answer
// disagreed with the naive reference engine. Detail names which
// observational surface disagreed (Connected, Root, LCA, or aggregate)
// when that is more specific than the Want/Got booleans alone convey.
type Divergence struct {
	Engine string
	Step   int
	Item   workload.Item
	Want   bool
	Got    bool
	Detail string
}

func (d *Divergence) Error() string {
	if d.Detail != "" {
		return fmt.Sprintf("equivalence: engine %q diverged at step %d (%s %d %d): %s",
			d.Engine, d.Step, d.Item.Type, d.Item.A, d.Item.B, d.Detail)
	}

	return fmt.Sprintf("equivalence: engine %q diverged at step %d (%s %d %d): want %v, got %v",
		d.Engine, d.Step, d.Item.Type, d.Item.A, d.Item.B, d.Want, d.Got)
}

// rootEngine is satisfied by any core.Engine that also exposes the
// observational Root primitive (spec §4.4's `root(v)`) — currently
// dynamictree.Forest. Engines without a notion of represented-tree root
// (stt.Forest) are simply skipped by the check below.
type rootEngine interface {
	Root(v int) int
}

// Run drives items against a naive.Forest ground truth and every named
// core.Engine in engines, in lock-step, and returns the first Divergence
// found or nil if every engine agreed with the reference on every
// observational query (spec §8 invariant 4). LINK and CUT items are
// assumed to already satisfy their preconditions (as RandomWorkload
// guarantees); a precondition violation from an engine is itself reported
// as a Divergence rather than propagated, since it means that engine
// disagreed with the naive forest about the represented-forest state.
//
// Beyond Connected, every engine satisfying rootEngine has Root checked
// for internal self-consistency against that same engine's own Connected
// answer (root identity itself is not cross-engine comparable — spec
// §3.1 — since different restructuring disciplines and the dtree
// CutEdge's own Evert are each free to re-root however they like; only
// the equivalence-class structure Root induces is an invariant). A
// private counting dynamictree.Forest, mirrored alongside the naive
// reference, additionally cross-checks the tree-distance between every
// connected pair against naive's own Depth/LCA — an intrinsic property of
// the represented tree that, unlike root identity, does not depend on
// which vertex either engine currently treats as root — and validates
// that private forest's own LCA answer actually lies on the queried path
// (spec §4.4, §4.5; DESIGN.md's "naive... exclusively" grounding claim).
func Run(n int, items []workload.Item, engines map[string]core.Engine) *Divergence {
	nf := naive.NewForest(n)
	dist := newCountingForest(n)

	checkConnectedPair := func(u, v int, step int, item workload.Item) *Divergence {
		for name, eng := range engines {
			if re, ok := eng.(rootEngine); ok {
				if div := checkRootConsistency(name, eng, re, u, v, step, item); div != nil {
					return div
				}
			}
		}

		return checkDistanceInvariant(nf, dist, u, v, step, item)
	}

	for step, item := range items {
		switch item.Type {
		case workload.Link:
			_ = nf.Link(item.A, item.B)
			_ = dist.Link(item.A, item.B)
			for name, eng := range engines {
				if err := eng.Link(item.A, item.B); err != nil {
					return &Divergence{Engine: name, Step: step, Item: item, Want: true, Got: false}
				}
			}
			if div := checkConnectedPair(item.A, item.B, step, item); div != nil {
				return div
			}
		case workload.Cut:
			_ = nf.CutEdge(item.A, item.B)
			_ = dist.Cut(item.A, item.B)
			for name, eng := range engines {
				if err := eng.Cut(item.A, item.B); err != nil {
					return &Divergence{Engine: name, Step: step, Item: item, Want: true, Got: false}
				}
			}
			for name, eng := range engines {
				if re, ok := eng.(rootEngine); ok {
					if div := checkRootConsistency(name, eng, re, item.A, item.B, step, item); div != nil {
						return div
					}
				}
			}
		case workload.Path:
			want := nf.Connected(item.A, item.B)
			for name, eng := range engines {
				got := eng.Connected(item.A, item.B)
				if got != want {
					return &Divergence{Engine: name, Step: step, Item: item, Want: want, Got: got}
				}
			}
			if want {
				if div := checkConnectedPair(item.A, item.B, step, item); div != nil {
					return div
				}
			}
		}
	}

	return nil
}

// checkRootConsistency verifies that eng's Root agrees with its own
// Connected (same root iff connected) and that Root is idempotent.
// It never compares root identity across engines (not an invariant).
func checkRootConsistency(name string, eng core.Engine, re rootEngine, u, v, step int, item workload.Item) *Divergence {
	connected := eng.Connected(u, v)
	sameRoot := re.Root(u) == re.Root(v)
	if connected != sameRoot {
		return &Divergence{
			Engine: name, Step: step, Item: item, Want: connected, Got: sameRoot,
			Detail: fmt.Sprintf("Root(%d)==Root(%d) is %v but Connected(%d,%d) is %v", u, v, sameRoot, u, v, connected),
		}
	}
	ru := re.Root(u)
	if re.Root(ru) != ru {
		return &Divergence{
			Engine: name, Step: step, Item: item, Want: true, Got: false,
			Detail: fmt.Sprintf("Root(%d) is not idempotent: Root(Root(%d))=%d != %d", u, u, re.Root(ru), ru),
		}
	}

	return nil
}

// checkDistanceInvariant cross-validates, for a pair already known to be
// connected, that the private counting forest's tree-distance between u
// and v agrees with the naive reference's own Depth/LCA-derived distance,
// and that the counting forest's own LCA answer actually lies on the u-v
// path (duAnc + dAncV == duv). Both checks are rooting-convention
// independent: tree distance and "does this vertex lie on the path" are
// intrinsic properties of the unrooted represented tree.
func checkDistanceInvariant(nf *naive.Forest, dist *countingForest, u, v, step int, item workload.Item) *Divergence {
	naiveAnc := nf.LCA(u, v)
	naiveDist := nf.Depth(u) + nf.Depth(v) - 2*nf.Depth(naiveAnc)

	distCount, err := dist.PathAggregate(u, v)
	if err != nil {
		return &Divergence{
			Engine: "dtree", Step: step, Item: item, Want: true, Got: false,
			Detail: fmt.Sprintf("PathAggregate(%d,%d) failed on a connected pair: %v", u, v, err),
		}
	}
	if got := distCount - 1; got != naiveDist {
		return &Divergence{
			Engine: "dtree", Step: step, Item: item, Want: true, Got: false,
			Detail: fmt.Sprintf("path length %d disagrees with naive reference %d", got, naiveDist),
		}
	}

	anc, err := dist.LCA(u, v)
	if err != nil {
		return &Divergence{
			Engine: "dtree", Step: step, Item: item, Want: true, Got: false,
			Detail: fmt.Sprintf("LCA(%d,%d) failed on a connected pair: %v", u, v, err),
		}
	}
	duAnc, errU := dist.PathAggregate(u, anc)
	dAncV, errV := dist.PathAggregate(anc, v)
	duv, errUV := dist.PathAggregate(u, v)
	if errU != nil || errV != nil || errUV != nil {
		return &Divergence{
			Engine: "dtree", Step: step, Item: item, Want: true, Got: false,
			Detail: fmt.Sprintf("LCA(%d,%d)=%d is not connected to both endpoints", u, v, anc),
		}
	}
	if (duAnc-1)+(dAncV-1) != duv-1 {
		return &Divergence{
			Engine: "dtree", Step: step, Item: item, Want: true, Got: false,
			Detail: fmt.Sprintf("LCA(%d,%d)=%d does not lie on the %d-%d path", u, v, anc, u, v),
		}
	}

	return nil
}

// countingForest is a dynamictree.Forest decorated with a constant-1
// aggregate, so PathAggregate(u, v) returns the number of vertices on the
// path from u to v inclusive (i.e. tree-distance + 1). Built internally
// by Run purely to cross-check the dynamic-tree engine's Root/LCA/
// PathAggregate observational surface against the naive reference,
// independent of whatever connectivity-only engines the caller passed in
// (spec §4.4; DESIGN.md's grounding of naive as the tester's exclusive
// ground truth).
type countingForest = dynamictree.Forest[int, int]

func newCountingForest(n int) *countingForest {
	vops := dynamictree.ValueOps[int]{
		Identity: func() int { return 0 },
		Plus:     func(a, b int) int { return a + b },
		Minus:    func(a, b int) int { return a - b },
	}
	aops := dynamictree.SumOps[int, int](func(int) int { return 1 })

	return dynamictree.NewForest[int, int](n, vops, aops)
}
