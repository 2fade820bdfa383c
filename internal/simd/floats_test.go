package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}

	assert.InDelta(t, float32(32), Dot(a, b), 1e-6)
}

func TestSquaredL2(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, 4}

	assert.InDelta(t, float32(25), SquaredL2(a, b), 1e-6)
	assert.InDelta(t, float32(0), SquaredL2(a, a), 1e-6)
}

func TestSquaredL2Batch(t *testing.T) {
	// Three 2-dim vectors in a flat layout.
	targets := []float32{
		0, 0,
		3, 4,
		1, 1,
	}
	out := make([]float32, 3)

	SquaredL2Batch([]float32{0, 0}, targets, 2, out)

	assert.InDelta(t, float32(0), out[0], 1e-6)
	assert.InDelta(t, float32(25), out[1], 1e-6)
	assert.InDelta(t, float32(2), out[2], 1e-6)
}

func TestScaleInPlace(t *testing.T) {
	v := []float32{1, 2, 4}
	ScaleInPlace(v, 0.5)

	assert.Equal(t, []float32{0.5, 1, 2}, v)
}
