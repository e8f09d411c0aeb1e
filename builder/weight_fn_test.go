package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstweight/builder"
	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

func TestConstantWeightFn(t *testing.T) {
	fn := builder.ConstantWeightFn(-3)
	assert.Equal(t, int64(-3), fn(nil))
	assert.Equal(t, int64(-3), fn(rand.New(rand.NewSource(1))))
}

func TestUniformWeightFn(t *testing.T) {
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })

	fn := builder.UniformWeightFn(2, 4)
	assert.Equal(t, int64(2), fn(nil), "nil rng falls back to min")

	r := rand.New(rand.NewSource(9))
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		w := fn(r)
		assert.True(t, w >= 2 && w <= 4, "w=%d", w)
		seen[w] = true
	}
	assert.Len(t, seen, 3, "all values of the closed interval appear")

	assert.Equal(t, int64(6), builder.UniformWeightFn(6, 6)(r))
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
