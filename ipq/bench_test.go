package ipq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstweight/ipq"
)

// BenchmarkPushPop measures a full fill/decrease/drain cycle over 10k vertices.
func BenchmarkPushPop(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	weights := make([]int64, n)
	for i := range weights {
		weights[i] = int64(r.Intn(1 << 20))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq, _ := ipq.New(n)
		for v, w := range weights {
			_ = pq.Push(v, w)
		}
		for v := 0; v < n; v += 2 {
			_ = pq.Push(v, weights[v]/2)
		}
		for !pq.IsEmpty() {
			_ = pq.Pop()
		}
	}
}
