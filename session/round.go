package session

import (
	"math"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/level"
	"github.com/lixenwraith/munchies/vmath"
)

// EditorLayout seeds the level editor
const EditorLayout = "arena"

func (m *Manager) registerGraph() {
	m.machine.RegisterGuard("EditorClosed", func(m *Manager) bool { return !m.Editing() })
	m.machine.RegisterGuard("InMenu", func(m *Manager) bool { return m.State() == StateMenu })
	m.machine.RegisterGuard("RoundOver", func(m *Manager) bool { return m.world.TimeLeft <= 0 })

	m.machine.RegisterAction("ShowMenu", func(m *Manager, _ map[string]any) { m.showMenu() })
	m.machine.RegisterAction("StartRound", func(m *Manager, _ map[string]any) { m.startRound() })
	m.machine.RegisterAction("TickRound", func(m *Manager, _ map[string]any) { m.tickRound() })
	m.machine.RegisterAction("EndRound", func(m *Manager, _ map[string]any) { m.endRound() })
	m.machine.RegisterAction("HideSummary", func(m *Manager, _ map[string]any) { m.world.HUD.HideGameOver() })
	m.machine.RegisterAction("EnterEditor", func(m *Manager, _ map[string]any) { m.enterEditor() })
	m.machine.RegisterAction("LeaveEditor", func(m *Manager, _ map[string]any) { m.leaveEditor() })
}

// startRound resets the clocks, lays out the arena and populates it
func (m *Manager) startRound() {
	w := m.world
	m.clock.Resume()
	m.notice = ""
	m.resetInput()

	w.ResetRound()
	w.HUD.HideAlert()
	m.buildLevel()

	player := entity.NewCharacter(w.NextID(), w.Profile.SelectedCharacter, true, vmath.Vec3F{}, w.Tuning)
	player.Hat = w.Profile.EquippedHat
	w.AddCharacter(player)
	w.Sync(player)

	n := w.Settings.BotCount
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		pos := vmath.Vec3F{
			X: math.Cos(angle) * constants.BotRingRadius,
			Z: math.Sin(angle) * constants.BotRingRadius,
		}
		variant := constants.Roster[w.Rand.IntN(len(constants.Roster))]
		bot := entity.NewCharacter(w.NextID(), variant, false, pos, w.Tuning)
		w.AddCharacter(bot)
		w.Sync(bot)
	}

	for i := 0; i < w.Settings.FruitCount; i++ {
		m.spawner.SpawnCollectible()
	}
	for i := 0; i < w.Settings.PowerupCount; i++ {
		m.spawner.SpawnPowerup()
	}
	for i := 0; i < w.Settings.BombCount; i++ {
		m.spawner.SpawnBomb()
	}

	m.updateHUD()
	w.PublishStatus()
	w.Logger.Info("round started", "round", w.RoundID, "character", player.Variant, "bots", n)
}

// buildLevel asks the generator for a random layout; failure leaves an empty arena
func (m *Manager) buildLevel() {
	w := m.world
	w.Presenter.ClearLevel()
	if m.levels == nil {
		return
	}
	layouts := m.levels.Layouts()
	if len(layouts) == 0 {
		return
	}
	name := layouts[w.Rand.IntN(len(layouts))]
	obstacles, err := m.levels.Generate(name)
	if err != nil {
		w.Logger.Warn("level generation failed", "layout", name, "err", err)
		return
	}
	for _, o := range obstacles {
		w.Presenter.AddObstacle(o)
	}
	w.Logger.Debug("level built", "layout", name, "obstacles", len(obstacles))
}

// tickRound runs one simulated step; the round clock expiring stops the tick
func (m *Manager) tickRound() {
	w := m.world
	dt := m.lastDelta

	w.TimeLeft -= dt
	if w.TimeLeft <= 0 {
		return
	}

	w.ChaosCountdown -= dt
	if w.ChaosCountdown <= 0 {
		if ev, ok := m.chaos.Trigger(); !ok {
			w.Logger.Debug("chaos skipped, nobody to affect", "event", ev.Name)
		}
		w.ChaosCountdown = w.Settings.ChaosInterval
	}

	for _, sys := range m.systems {
		sys.Update(w, dt)
	}

	m.updateHUD()
	w.PublishStatus()
}

func (m *Manager) updateHUD() {
	w := m.world
	w.HUD.SetTimer(int(math.Ceil(max(w.TimeLeft, 0))))
	w.HUD.SetCoins(w.Profile.Coins)
	if p := w.Player; p != nil {
		w.HUD.SetScore(p.Score)
		w.HUD.SetStamina(p.Stamina, p.MaxStamina())
	}
}

// endRound credits coins, tears down the arena and persists the profile
func (m *Manager) endRound() {
	w := m.world
	m.clock.Resume()

	score := 0
	if w.Player != nil {
		score = w.Player.Score
	}
	earned := w.Profile.RecordRound(score)

	m.summary = engine.RoundSummary{
		FinalScore:      score,
		FruitsCollected: w.FruitsCollected,
		CoinsEarned:     earned,
		TotalCoins:      w.Profile.Coins,
	}

	w.Clear()
	w.ActiveChaos = ""
	m.saveProfile()

	w.HUD.SetTimer(0)
	w.HUD.SetCoins(w.Profile.Coins)
	w.HUD.ShowGameOver(m.summary)
	w.Logger.Info("round over", "round", w.RoundID, "score", score, "earned", earned, "coins", w.Profile.Coins)
}

// showMenu clears any live arena without touching the profile
func (m *Manager) showMenu() {
	w := m.world
	m.clock.Resume()
	m.resetInput()
	if w.Player != nil || len(w.Bots) > 0 || len(w.Collectibles) > 0 || len(w.Powerups) > 0 || len(w.Bombs) > 0 {
		w.Clear()
		w.ActiveChaos = ""
		w.Logger.Debug("arena cleared for menu", "round", w.RoundID)
	}
	w.Presenter.ClearLevel()
	w.HUD.HideAlert()
}

func (m *Manager) enterEditor() {
	w := m.world
	var base []entity.Obstacle
	if m.levels != nil {
		obstacles, err := m.levels.Generate(EditorLayout)
		if err != nil {
			w.Logger.Warn("editor base layout failed", "err", err)
		}
		base = obstacles
	}
	m.editor = level.NewEditor(w.Presenter, base)
	w.Logger.Debug("editor opened", "obstacles", len(base))
}

func (m *Manager) leaveEditor() {
	m.editor = nil
	m.world.Presenter.ClearLevel()
}
