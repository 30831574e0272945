package entity

import (
	"math"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/vmath"
)

// Collectible is a fruit worth Value points
type Collectible struct {
	ID       ID
	Type     FruitType
	Value    int
	Position vmath.Vec3F

	bobTime float64
	spin    float64
}

// NewCollectible creates a fruit at ground level; phase seeds the bob animation
func NewCollectible(id ID, fruit FruitType, pos vmath.Vec3F, phase float64) *Collectible {
	c := &Collectible{ID: id, Type: fruit, Value: 1, Position: pos, bobTime: phase}
	c.Position.Y = constants.CollectibleBobBase
	return c
}

func (c *Collectible) EntityID() ID     { return c.ID }
func (c *Collectible) Kind() Kind       { return KindCollectible }
func (c *Collectible) Pos() vmath.Vec3F { return c.Position }

func (c *Collectible) Transform() Transform {
	return Transform{Position: c.Position, Rotation: c.spin, Scale: 1}
}

// Update animates bob and spin, no gameplay effect
func (c *Collectible) Update(dt float64) {
	c.bobTime += dt * constants.CollectibleBobSpeed
	c.Position.Y = constants.CollectibleBobBase + math.Sin(c.bobTime)*constants.CollectibleBobAmp
	c.spin += dt * constants.CollectibleSpinSpeed
}

// Powerup grants a timed or instant effect on pickup, never respawned
type Powerup struct {
	ID       ID
	Type     PowerupType
	Position vmath.Vec3F

	bobTime float64
	spin    float64
}

// NewPowerup creates a floating power-up
func NewPowerup(id ID, kind PowerupType, pos vmath.Vec3F, phase float64) *Powerup {
	p := &Powerup{ID: id, Type: kind, Position: pos, bobTime: phase}
	p.Position.Y = constants.PowerupBobBase
	return p
}

func (p *Powerup) EntityID() ID     { return p.ID }
func (p *Powerup) Kind() Kind       { return KindPowerup }
func (p *Powerup) Pos() vmath.Vec3F { return p.Position }

func (p *Powerup) Transform() Transform {
	return Transform{Position: p.Position, Rotation: p.spin, Scale: 1}
}

// Update animates bob and spin, no gameplay effect
func (p *Powerup) Update(dt float64) {
	p.bobTime += dt * constants.PowerupBobSpeed
	p.Position.Y = constants.PowerupBobBase + math.Sin(p.bobTime)*constants.PowerupBobAmp
	p.spin += dt * constants.PowerupSpinSpeed
}

// Bomb is a static hazard detonated on contact
type Bomb struct {
	ID       ID
	Position vmath.Vec3F
}

func NewBomb(id ID, pos vmath.Vec3F) *Bomb {
	return &Bomb{ID: id, Position: pos}
}

func (b *Bomb) EntityID() ID     { return b.ID }
func (b *Bomb) Kind() Kind       { return KindBomb }
func (b *Bomb) Pos() vmath.Vec3F { return b.Position }

func (b *Bomb) Transform() Transform {
	return Transform{Position: b.Position, Scale: 1}
}

// Explosion is a presentation-only blast that fades on the wall clock
type Explosion struct {
	ID       ID
	Position vmath.Vec3F
	Opacity  float64
}

func NewExplosion(id ID, pos vmath.Vec3F) *Explosion {
	return &Explosion{ID: id, Position: pos, Opacity: constants.ExplosionOpacity}
}

// Fade lowers opacity one step, returns true once fully transparent
func (e *Explosion) Fade() bool {
	e.Opacity -= constants.ExplosionFadeStep
	if e.Opacity <= 1e-9 {
		e.Opacity = 0
		return true
	}
	return false
}

// ObstacleKind is a static level decoration type
type ObstacleKind string

const (
	ObstacleCrate ObstacleKind = "crate"
	ObstacleTree  ObstacleKind = "tree"
	ObstacleHole  ObstacleKind = "hole"
)

// Obstacle is level geometry; gameplay never collides with it
type Obstacle struct {
	Kind     ObstacleKind `json:"kind" yaml:"kind" msgpack:"kind"`
	Position vmath.Vec3F  `json:"position" yaml:"position" msgpack:"position"`
	Radius   float64      `json:"radius,omitempty" yaml:"radius,omitempty" msgpack:"radius,omitempty"`
}
