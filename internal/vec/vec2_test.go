package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Basics(t *testing.T) {
	a := Vec2{X: 3, Y: -2}
	b := Vec2{X: -1, Y: 4}

	assert.Equal(t, Vec2{X: 2, Y: 2}, a.Add(b))
	assert.Equal(t, 10, a.Manhattan(b))
	assert.Equal(t, 0, a.Manhattan(a))

	assert.True(t, Vec2{X: 0, Y: 0}.In(1, 1))
	assert.False(t, Vec2{X: 1, Y: 0}.In(1, 1))
	assert.False(t, a.In(10, 10))
}

func TestSquare(t *testing.T) {
	offsets := Square(1)
	assert.Len(t, offsets, 9)
	assert.Equal(t, Vec2{X: -1, Y: -1}, offsets[0])
	assert.Contains(t, offsets, Vec2{})
	assert.Equal(t, Vec2{X: 1, Y: 1}, offsets[8])

	assert.Equal(t, []Vec2{{}}, Square(0))
}
