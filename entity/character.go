package entity

import (
	"math"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/vmath"
)

// Character is a player- or bot-controlled brawler
type Character struct {
	ID       ID
	IsPlayer bool
	Variant  string
	Hat      string

	Position vmath.Vec3F
	Rotation float64
	Velocity vmath.Vec3F
	Scale    float64

	Stamina float64
	Stunned bool
	Score   int

	SpeedMultiplier    float64
	StrengthMultiplier float64
	InfiniteStamina    bool
	Timers             EffectTimers

	tuning    *Tuning
	destroyed bool
}

// NewCharacter creates a character at rest with full stamina and neutral effects
func NewCharacter(id ID, variant string, isPlayer bool, pos vmath.Vec3F, tuning *Tuning) *Character {
	if tuning == nil {
		tuning = DefaultTuning()
	}
	return &Character{
		ID:                 id,
		IsPlayer:           isPlayer,
		Variant:            variant,
		Position:           pos,
		Scale:              1,
		Stamina:            tuning.MaxStamina,
		SpeedMultiplier:    constants.NeutralMultiplier,
		StrengthMultiplier: constants.NeutralMultiplier,
		tuning:             tuning,
	}
}

func (c *Character) EntityID() ID        { return c.ID }
func (c *Character) Kind() Kind          { return KindCharacter }
func (c *Character) Pos() vmath.Vec3F    { return c.Position }
func (c *Character) Tuning() *Tuning     { return c.tuning }
func (c *Character) Destroyed() bool     { return c.destroyed }
func (c *Character) Speed() float64      { return vmath.V3FMag(c.Velocity) }
func (c *Character) MaxStamina() float64 { return c.tuning.MaxStamina }

// Transform returns the presentation transform
func (c *Character) Transform() Transform {
	return Transform{Position: c.Position, Rotation: c.Rotation, Scale: c.Scale}
}

// Update advances timers, stamina and motion by dt seconds
// friction is the per-frame velocity retention, bound the planar half-extent
// A stunned character is frozen entirely, including its timers
func (c *Character) Update(dt, friction, bound float64) {
	if c.Stunned || c.destroyed {
		return
	}

	for _, kind := range timedKinds {
		t := c.Timers.slot(kind)
		if !t.Active {
			continue
		}
		t.Remaining -= dt
		if t.Remaining <= 0 {
			c.RemovePowerup(kind)
		}
	}

	if c.Stamina < c.tuning.MaxStamina {
		c.Stamina = math.Min(c.tuning.MaxStamina, c.Stamina+c.tuning.StaminaRegen*dt)
	}

	// Velocity is in units per frame, not per second
	c.Velocity = vmath.V3FScale(c.Velocity, friction)
	c.Position = vmath.V3FClampPlanar(vmath.V3FAdd(c.Position, c.Velocity), bound)
}

// Move accelerates along dir and turns to face it
func (c *Character) Move(dir vmath.Vec3F) {
	if c.Stunned || c.destroyed {
		return
	}
	c.Velocity = vmath.V3FAddScaled(c.Velocity, dir, c.tuning.PlayerSpeed*c.SpeedMultiplier)
	if vmath.V3FMagSq(dir) > 0 {
		c.Rotation = vmath.V3FFacing(dir)
	}
}

// Dash applies a forward impulse along the facing, returns false when gated
func (c *Character) Dash() bool {
	if c.Stunned || c.destroyed {
		return false
	}
	if !c.InfiniteStamina {
		if c.Stamina < c.tuning.DashCost {
			return false
		}
		c.Stamina -= c.tuning.DashCost
	}
	c.Velocity = vmath.V3FAddScaled(c.Velocity, vmath.V3FHeading(c.Rotation), c.tuning.DashSpeed)
	return true
}

// Stun freezes the character; expiry is scheduled by the owner
func (c *Character) Stun() {
	c.Stunned = true
}

// Unstun clears the stun flag, ignored after destruction
func (c *Character) Unstun() {
	if c.destroyed {
		return
	}
	c.Stunned = false
}

// AddScore adjusts score by delta, negative totals are allowed
func (c *Character) AddScore(delta int) {
	c.Score += delta
}

// ApplyPowerup activates an effect; re-applying a timed effect restarts its timer
func (c *Character) ApplyPowerup(kind PowerupType) {
	switch kind {
	case PowerupSpeed:
		c.SpeedMultiplier = constants.BoostMultiplier
	case PowerupStrength:
		c.StrengthMultiplier = constants.BoostMultiplier
	case PowerupStamina:
		c.InfiniteStamina = true
	case PowerupGolden:
		c.AddScore(c.tuning.GoldenBonus)
		c.Stamina = c.tuning.MaxStamina
		return
	default:
		return
	}
	*c.Timers.slot(kind) = Timer{Remaining: c.tuning.PowerupDuration, Active: true}
}

// RemovePowerup reverts an effect to neutral and clears its timer
func (c *Character) RemovePowerup(kind PowerupType) {
	switch kind {
	case PowerupSpeed:
		c.SpeedMultiplier = constants.NeutralMultiplier
	case PowerupStrength:
		c.StrengthMultiplier = constants.NeutralMultiplier
	case PowerupStamina:
		c.InfiniteStamina = false
	default:
		return
	}
	*c.Timers.slot(kind) = Timer{}
}

// Destroy marks the character dead so late scheduled mutations become no-ops
func (c *Character) Destroy() {
	c.destroyed = true
}
