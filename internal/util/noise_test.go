package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(42)
	b := NewNoise(42)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		assert.Equal(t, a.Noise1D(x), b.Noise1D(x), "шум должен совпадать для одного сида")
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoise(7)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.11
		v := n.Noise1D(x)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
