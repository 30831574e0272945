package systems

import (
	"math"

	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/vmath"
)

// Spawner creates items at uniform random arena positions
// No overlap checks: items may stack on each other, obstacles or characters
type Spawner struct {
	world *engine.World
}

// NewSpawner creates a spawner bound to a world
func NewSpawner(world *engine.World) *Spawner {
	return &Spawner{world: world}
}

// RandomPosition returns a ground point uniformly within the spawn extent
func (s *Spawner) RandomPosition() vmath.Vec3F {
	extent := s.world.SpawnExtent()
	return vmath.Vec3F{
		X: (s.world.Rand.Float64()*2 - 1) * extent,
		Z: (s.world.Rand.Float64()*2 - 1) * extent,
	}
}

func (s *Spawner) phase() float64 {
	return s.world.Rand.Float64() * 2 * math.Pi
}

// SpawnCollectible adds a random fruit
func (s *Spawner) SpawnCollectible() *entity.Collectible {
	fruit := entity.FruitTypes[s.world.Rand.IntN(len(entity.FruitTypes))]
	c := entity.NewCollectible(s.world.NextID(), fruit, s.RandomPosition(), s.phase())
	s.world.AddCollectible(c)
	return c
}

// SpawnPowerup adds a random power-up
func (s *Spawner) SpawnPowerup() *entity.Powerup {
	kind := entity.PowerupTypes[s.world.Rand.IntN(len(entity.PowerupTypes))]
	p := entity.NewPowerup(s.world.NextID(), kind, s.RandomPosition(), s.phase())
	s.world.AddPowerup(p)
	return p
}

// SpawnBomb adds a bomb
func (s *Spawner) SpawnBomb() *entity.Bomb {
	b := entity.NewBomb(s.world.NextID(), s.RandomPosition())
	s.world.AddBomb(b)
	return b
}
