package systems

import (
	"time"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
)

// ChaosDirector applies global rule changes and schedules their reversal on the wall clock
// The affected set is captured at trigger time; characters created later are unaffected
// Overlapping events are not reconciled: reversals apply to whatever state they find
type ChaosDirector struct {
	world   *engine.World
	spawner *Spawner
}

func NewChaosDirector(world *engine.World, spawner *Spawner) *ChaosDirector {
	return &ChaosDirector{world: world, spawner: spawner}
}

// Trigger picks a chaos event uniformly and applies it
func (d *ChaosDirector) Trigger() (constants.ChaosEvent, bool) {
	ev := constants.ChaosEvents[d.world.Rand.IntN(len(constants.ChaosEvents))]
	return ev, d.TriggerEvent(ev)
}

// TriggerEvent applies a specific event, returns false when there is nobody to affect
func (d *ChaosDirector) TriggerEvent(ev constants.ChaosEvent) bool {
	w := d.world
	affected := w.Characters()
	if len(affected) == 0 {
		return false
	}

	w.ActiveChaos = ev.Name
	w.ShowAlert(ev)
	w.Logger.Info("chaos triggered", "round", w.RoundID, "event", ev.Name, "characters", len(affected))

	epoch := w.Epoch
	lifetime := time.Duration(w.Settings.ChaosInterval * float64(time.Second))

	switch ev.Name {
	case constants.ChaosTinyTitans:
		d.setScale(affected, constants.TinyScale)
		w.After(lifetime, func() {
			d.setScale(affected, 1)
			d.clearSlot(epoch)
		})

	case constants.ChaosGiantBrawl:
		d.setScale(affected, constants.GiantScale)
		w.After(lifetime, func() {
			d.setScale(affected, 1)
			d.clearSlot(epoch)
		})

	case constants.ChaosSpeedDemon:
		for _, c := range affected {
			c.SpeedMultiplier *= constants.SpeedDemonFactor
		}
		w.After(lifetime, func() {
			for _, c := range affected {
				c.SpeedMultiplier /= constants.SpeedDemonFactor
			}
			d.clearSlot(epoch)
		})

	case constants.ChaosSlipperyFloor:
		// Friction is read from the active slot each tick
		w.After(lifetime, func() { d.clearSlot(epoch) })

	case constants.ChaosBombRain:
		for i := 0; i < constants.BombRainCount; i++ {
			w.After(time.Duration(i)*constants.BombRainSpacing, func() {
				if w.Epoch != epoch {
					return
				}
				d.spawner.SpawnBomb()
			})
		}
		w.After(constants.BombRainDuration, func() { d.clearSlot(epoch) })
	}
	return true
}

func (d *ChaosDirector) setScale(chars []*entity.Character, scale float64) {
	for _, c := range chars {
		c.Scale = scale
		if !c.Destroyed() {
			d.world.Sync(c)
		}
	}
}

// clearSlot empties the active chaos slot unless the round has since been torn down
func (d *ChaosDirector) clearSlot(epoch uint64) {
	if d.world.Epoch == epoch {
		d.world.ActiveChaos = ""
	}
}
