package systems

import (
	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/vmath"
)

// PlayerSystem applies frame input to the player then advances it
type PlayerSystem struct {
	input engine.InputSource
}

func NewPlayerSystem(input engine.InputSource) *PlayerSystem {
	return &PlayerSystem{input: input}
}

func (s *PlayerSystem) Priority() int { return constants.PriorityPlayer }

func (s *PlayerSystem) Update(w *engine.World, dt float64) {
	p := w.Player
	if p == nil {
		return
	}

	if s.input != nil {
		dir, dash := s.input.Poll()
		if dash && p.Dash() {
			w.PlayCue(engine.CueDash)
		}
		if vmath.V3FMagSq(dir) > 0 {
			p.Move(vmath.V3FNormalize(dir))
		}
	}

	p.Update(dt, w.Friction(), w.Bound())
	w.Sync(p)
}

// AISystem steers every bot toward the first collectible, then advances it
// Targeting is deliberately naive: the first element, not the nearest
type AISystem struct{}

func NewAISystem() *AISystem {
	return &AISystem{}
}

func (s *AISystem) Priority() int { return constants.PriorityAI }

func (s *AISystem) Update(w *engine.World, dt float64) {
	for _, bot := range w.Bots {
		if !bot.Stunned && len(w.Collectibles) > 0 {
			target := w.Collectibles[0]
			bot.Move(planarDirection(bot.Position, target.Position))

			if w.Rand.Float64() < constants.BotDashChance && bot.Dash() {
				w.PlayCue(engine.CueDash)
			}
		}
		bot.Update(dt, w.Friction(), w.Bound())
		w.Sync(bot)
	}
}

// AnimationSystem bobs and spins items
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Priority() int { return constants.PriorityAnimation }

func (s *AnimationSystem) Update(w *engine.World, dt float64) {
	for _, c := range w.Collectibles {
		c.Update(dt)
		w.Sync(c)
	}
	for _, p := range w.Powerups {
		p.Update(dt)
		w.Sync(p)
	}
}

// planarDirection is the unit ground-plane vector from a to b
func planarDirection(from, to vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FSub(to, from)
	d.Y = 0
	return vmath.V3FNormalize(d)
}

// planarDist is ground-plane distance; item bob height is ignored
func planarDist(a, b entity.Ref) float64 {
	pa, pb := a.Pos(), b.Pos()
	pa.Y, pb.Y = 0, 0
	return vmath.V3FDist(pa, pb)
}
