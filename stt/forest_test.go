package stt_test

import (
	"testing"

	"github.com/katalvlaran/dynaforest/core"
	"github.com/katalvlaran/dynaforest/stt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constructors enumerates all three STT restructuring policies so every
// scenario below runs against each one (spec §8 S1-S5 apply identically
// regardless of policy).
var constructors = map[string]func(int) *stt.Forest{
	"greedy": func(n int) *stt.Forest { return stt.NewGreedy(n) },
	"mtr":    func(n int) *stt.Forest { return stt.NewMTR(n) },
	"ltp":    func(n int) *stt.Forest { return stt.NewLTP(n) },
}

func forEachPolicy(t *testing.T, fn func(t *testing.T, newForest func(int) *stt.Forest)) {
	t.Helper()
	for name, newForest := range constructors {
		t.Run(name, func(t *testing.T) { fn(t, newForest) })
	}
}

// TestScenario_S1 is spec §8 scenario S1.
func TestScenario_S1(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(5)
		require.NoError(t, f.Link(0, 1))
		require.NoError(t, f.Link(1, 2))
		require.NoError(t, f.Link(3, 4))
		assert.True(t, f.Connected(0, 2))
		assert.False(t, f.Connected(2, 4))
		require.NoError(t, f.Link(2, 3))
		assert.True(t, f.Connected(0, 4))
	})
}

// TestScenario_S2 is spec §8 scenario S2.
func TestScenario_S2(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(3)
		require.NoError(t, f.Link(0, 1))
		require.NoError(t, f.Link(1, 2))
		require.NoError(t, f.Cut(1, 0))
		assert.False(t, f.Connected(0, 2))
		assert.True(t, f.Connected(1, 2))
	})
}

// TestScenario_S3 is spec §8 scenario S3.
func TestScenario_S3(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(4)
		require.NoError(t, f.Link(0, 1))
		require.NoError(t, f.Link(2, 3))
		require.NoError(t, f.Link(1, 2))
		require.NoError(t, f.Cut(1, 2))
		assert.False(t, f.Connected(0, 3))
	})
}

// TestScenario_S4 is spec §8 scenario S4: cut the middle edge of a path.
func TestScenario_S4(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(6)
		require.NoError(t, f.Link(0, 1))
		require.NoError(t, f.Link(1, 2))
		require.NoError(t, f.Link(2, 3))
		require.NoError(t, f.Link(3, 4))
		require.NoError(t, f.Link(4, 5))
		require.NoError(t, f.Cut(2, 3))
		assert.False(t, f.Connected(0, 5))
		assert.True(t, f.Connected(0, 2))
		assert.True(t, f.Connected(3, 5))
	})
}

// TestScenario_S5 is spec §8 scenario S5: a star, then cutting the hub.
func TestScenario_S5(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(10)
		for i := 1; i <= 9; i++ {
			require.NoError(t, f.Link(0, i))
		}
		for i := 1; i <= 9; i++ {
			for j := i + 1; j <= 9; j++ {
				assert.True(t, f.Connected(i, j), "connected(%d,%d)", i, j)
			}
		}
		require.NoError(t, f.Cut(0, 5))
		assert.False(t, f.Connected(5, 7))
		assert.True(t, f.Connected(1, 7))
	})
}

// TestConnected_ReflexiveAndSymmetric is spec §8 invariant 5.
func TestConnected_ReflexiveAndSymmetric(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(4)
		require.NoError(t, f.Link(0, 1))
		for u := 0; u < 4; u++ {
			assert.True(t, f.Connected(u, u))
		}
		assert.Equal(t, f.Connected(0, 2), f.Connected(2, 0))
		assert.Equal(t, f.Connected(0, 1), f.Connected(1, 0))
	})
}

// TestLinkCut_Inversion is spec §8 invariant 6: link then cut the same
// edge restores the pre-link state.
func TestLinkCut_Inversion(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(5)
		require.NoError(t, f.Link(1, 2))
		require.NoError(t, f.Link(3, 4))
		before := make([][]bool, 5)
		for i := range before {
			before[i] = make([]bool, 5)
			for j := range before[i] {
				before[i][j] = f.Connected(i, j)
			}
		}

		require.NoError(t, f.Link(0, 1))
		require.NoError(t, f.Cut(0, 1))

		for i := range before {
			for j := range before[i] {
				assert.Equal(t, before[i][j], f.Connected(i, j), "pair (%d,%d)", i, j)
			}
		}
	})
}

func TestLink_RejectsSameTree(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(3)
		require.NoError(t, f.Link(0, 1))
		err := f.Link(0, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrPreconditionViolated)
	})
}

func TestCut_RejectsNonEdge(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(3)
		require.NoError(t, f.Link(0, 1))
		err := f.Cut(0, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrPreconditionViolated)
	})
}

func TestLink_RejectsOutOfRange(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(3)
		err := f.Link(0, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrOutOfRange)
	})
}

func TestConnected_OutOfRangeIsFalse(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(3)
		assert.False(t, f.Connected(0, 50))
	})
}

func TestUnsupportedOperations_RejectCleanly(t *testing.T) {
	forEachPolicy(t, func(t *testing.T, newForest func(int) *stt.Forest) {
		f := newForest(3)
		require.NoError(t, f.Link(0, 1))

		err := f.CutFromParent(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, stt.ErrUnsupportedOperation)

		_, err = f.LCA(0, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, stt.ErrUnsupportedOperation)

		_, err = f.PathAggregate(0, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, stt.ErrUnsupportedOperation)
	})
}

func TestWithRotationCounter(t *testing.T) {
	var rotations int64
	f := stt.NewGreedy(10, stt.WithRotationCounter(&rotations))
	for i := 1; i < 10; i++ {
		require.NoError(t, f.Link(0, i))
	}
	f.Connected(3, 7)
	assert.Greater(t, rotations, int64(0))
}

func TestPolicyName(t *testing.T) {
	assert.Equal(t, "greedy", stt.NewGreedy(1).PolicyName())
	assert.Equal(t, "mtr", stt.NewMTR(1).PolicyName())
	assert.Equal(t, "ltp", stt.NewLTP(1).PolicyName())
}

// TestEngineInterface asserts *stt.Forest satisfies core.Engine (spec §3
// of SPEC_FULL.md: every concrete Forest implements the shared facade).
func TestEngineInterface(t *testing.T) {
	var _ core.Engine = stt.NewGreedy(1)
	var _ core.Engine = stt.NewMTR(1)
	var _ core.Engine = stt.NewLTP(1)
}
