package systems

import (
	"math"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/vmath"
)

// CollisionSystem resolves player contacts once per tick, after all movement
// Each collection is filtered in place; respawns are appended after the pass so they are never checked in it
type CollisionSystem struct {
	spawner *Spawner
}

func NewCollisionSystem(spawner *Spawner) *CollisionSystem {
	return &CollisionSystem{spawner: spawner}
}

func (s *CollisionSystem) Priority() int { return constants.PriorityCollision }

func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	p := w.Player
	if p == nil {
		return
	}

	s.collectibles(w, p)
	s.powerups(w, p)
	s.bombs(w, p)
	s.bots(w, p)
}

func (s *CollisionSystem) collectibles(w *engine.World, p *entity.Character) {
	respawn := 0
	kept := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if planarDist(p, c) >= constants.PickupRadius {
			kept = append(kept, c)
			continue
		}
		w.PlayCue(engine.CueCollect)
		p.AddScore(c.Value)
		w.Profile.Coins += c.Value
		w.FruitsCollected++
		w.Presenter.Remove(c.ID)
		respawn++
	}
	clear(w.Collectibles[len(kept):])
	w.Collectibles = kept

	for i := 0; i < respawn; i++ {
		s.spawner.SpawnCollectible()
	}
}

func (s *CollisionSystem) powerups(w *engine.World, p *entity.Character) {
	kept := w.Powerups[:0]
	for _, pu := range w.Powerups {
		if planarDist(p, pu) >= constants.PickupRadius {
			kept = append(kept, pu)
			continue
		}
		p.ApplyPowerup(pu.Type)
		w.PlayCue(engine.CuePowerup)
		w.Presenter.Remove(pu.ID)
	}
	clear(w.Powerups[len(kept):])
	w.Powerups = kept
}

func (s *CollisionSystem) bombs(w *engine.World, p *entity.Character) {
	respawn := 0
	kept := w.Bombs[:0]
	for _, b := range w.Bombs {
		if planarDist(p, b) >= constants.PickupRadius {
			kept = append(kept, b)
			continue
		}
		w.Presenter.Remove(b.ID)
		w.Explode(b.Position)
		w.StunCharacter(p, constants.StunDuration)

		drop := int(math.Floor(float64(p.Score) * constants.BombPenalty))
		p.AddScore(-drop)

		knockback := planarDirection(b.Position, p.Position)
		p.Velocity = vmath.V3FAddScaled(p.Velocity, knockback, constants.KnockbackForce)
		respawn++

		w.Logger.Debug("bomb detonated", "round", w.RoundID, "drop", drop, "score", p.Score)
	}
	clear(w.Bombs[len(kept):])
	w.Bombs = kept

	for i := 0; i < respawn; i++ {
		s.spawner.SpawnBomb()
	}
}

func (s *CollisionSystem) bots(w *engine.World, p *entity.Character) {
	for _, bot := range w.Bots {
		if planarDist(p, bot) >= constants.HitRadius || p.Speed() <= constants.HitSpeedThreshold {
			continue
		}
		w.PlayCue(engine.CueHit)
		w.StunCharacter(bot, constants.StunDuration)

		steal := int(math.Floor(float64(bot.Score) * constants.StealFraction * p.StrengthMultiplier))
		bot.AddScore(-steal)
		p.AddScore(steal)
	}
}
