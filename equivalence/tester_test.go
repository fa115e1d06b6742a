package equivalence_test

import (
	"testing"

	"github.com/katalvlaran/dynaforest/core"
	"github.com/katalvlaran/dynaforest/dynamictree"
	"github.com/katalvlaran/dynaforest/equivalence"
	"github.com/katalvlaran/dynaforest/stt"
	"github.com/katalvlaran/dynaforest/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEngines(n int) map[string]core.Engine {
	return map[string]core.Engine{
		"greedy": stt.NewGreedy(n),
		"mtr":    stt.NewMTR(n),
		"ltp":    stt.NewLTP(n),
		"dtree":  dynamictree.NewConnectivityForest(n),
	}
}

func TestRandomWorkload_RespectsPreconditions(t *testing.T) {
	const n = 40
	items := equivalence.RandomWorkload(n, 500, 1)
	require.Len(t, items, 500)
	for _, it := range items {
		assert.True(t, it.A >= 0 && it.A < n)
		if it.Type != 0 || it.B != -1 {
			// Link/Cut/Path all carry a real B; CutFromParent would not,
			// but RandomWorkload never emits that type.
			assert.True(t, it.B >= 0 && it.B < n)
		}
	}
}

// TestEquivalence_Scenario_S6 mirrors spec §8 scenario S6: a long random
// workload must produce identical Connected answers from every engine and
// the naive reference at every step.
func TestEquivalence_Scenario_S6(t *testing.T) {
	const n = 100
	const ops = 10000

	for _, seed := range []int64{1, 2, 3, 42} {
		items := equivalence.RandomWorkload(n, ops, seed)
		div := equivalence.Run(n, items, allEngines(n))
		assert.Nil(t, div, "seed %d: %v", seed, div)
	}
}

func TestEquivalence_SmallDeterministic(t *testing.T) {
	const n = 8
	for seed := int64(0); seed < 20; seed++ {
		items := equivalence.RandomWorkload(n, 200, seed)
		div := equivalence.Run(n, items, allEngines(n))
		assert.Nil(t, div, "seed %d: %v", seed, div)
	}
}

func TestEquivalence_SingleEngineDivergenceIsReported(t *testing.T) {
	// A deliberately broken stub engine that always reports disconnected
	// should be caught as a divergence as soon as a non-trivial Connected
	// query is asked.
	const n = 4
	bad := &alwaysDisconnected{n: n}
	nfEngines := map[string]core.Engine{"bad": bad}

	items := []workload.Item{
		{Type: workload.Link, A: 0, B: 1, C: -1},
		{Type: workload.Path, A: 0, B: 1, C: -1},
	}
	div := equivalence.Run(n, items, nfEngines)
	// After linking 0 and 1, the Path query on that pair disagrees with the
	// stub.
	require.NotNil(t, div)
	assert.Equal(t, "bad", div.Engine)
}

type alwaysDisconnected struct{ n int }

func (a *alwaysDisconnected) Link(u, v int) error     { return nil }
func (a *alwaysDisconnected) Cut(u, v int) error      { return nil }
func (a *alwaysDisconnected) Connected(u, v int) bool { return u == v }
func (a *alwaysDisconnected) Size() int               { return a.n }
