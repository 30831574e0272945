package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/vmath"
)

// TestCollectibleBobStaysNearBase verifies animation is cosmetic and bounded
func TestCollectibleBobStaysNearBase(t *testing.T) {
	c := NewCollectible(7, FruitMelon, vmath.Vec3F{X: 3, Z: -4}, 0)
	assert.Equal(t, 1, c.Value)

	for i := 0; i < 100; i++ {
		c.Update(0.05)
		assert.InDelta(t, constants.CollectibleBobBase, c.Position.Y, constants.CollectibleBobAmp+1e-9)
	}
	assert.Equal(t, 3.0, c.Position.X)
	assert.Equal(t, -4.0, c.Position.Z)
}

// TestExplosionFadeSteps verifies opacity reaches zero after eight steps
func TestExplosionFadeSteps(t *testing.T) {
	e := NewExplosion(1, vmath.Vec3F{})
	steps := 0
	for !e.Fade() {
		steps++
		if steps > 20 {
			t.Fatal("explosion never finished fading")
		}
	}
	assert.Equal(t, 7, steps)
	assert.Equal(t, 0.0, e.Opacity)
}
