package stt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynaforest/stt"
)

// buildRandomTree links n vertices into a single random tree.
func buildRandomTree(r *rand.Rand, newForest func(int, ...stt.Option) *stt.Forest, n int) *stt.Forest {
	f := newForest(n)
	for i := 1; i < n; i++ {
		j := r.Intn(i)
		_ = f.Link(i, j)
	}

	return f
}

func benchmarkConnected(b *testing.B, newForest func(int, ...stt.Option) *stt.Forest) {
	const n = 2000
	r := rand.New(rand.NewSource(1))
	f := buildRandomTree(r, newForest, n)
	pairs := make([][2]int, b.N)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Connected(pairs[i][0], pairs[i][1])
	}
}

func BenchmarkConnected_Greedy(b *testing.B) { benchmarkConnected(b, stt.NewGreedy) }
func BenchmarkConnected_MTR(b *testing.B)    { benchmarkConnected(b, stt.NewMTR) }
func BenchmarkConnected_LTP(b *testing.B)    { benchmarkConnected(b, stt.NewLTP) }
