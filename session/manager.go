package session

import (
	_ "embed"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/engine/fsm"
	"github.com/lixenwraith/munchies/level"
	"github.com/lixenwraith/munchies/profile"
	"github.com/lixenwraith/munchies/systems"
)

//go:embed round.toml
var roundGraph string

// Region and state names of the round graph
const (
	RegionRound  = "round"
	RegionEditor = "editor"

	StateMenu     = "Menu"
	StatePlaying  = "Playing"
	StateGameOver = "GameOver"
	StateOpen     = "Open"
)

// Options are the collaborators a Manager drives
type Options struct {
	World  *engine.World
	Store  engine.ProfileStore
	Levels engine.LevelGenerator
	Input  engine.InputSource
	// Clock is the real time source the pausable game clock wraps; nil uses the monotonic clock
	Clock engine.TimeProvider
}

// Manager owns the round lifecycle and the per-frame update order
// Every method except Post must be called from the loop goroutine
type Manager struct {
	world   *engine.World
	machine *fsm.Machine[*Manager]
	store   engine.ProfileStore
	levels  engine.LevelGenerator
	input   engine.InputSource
	clock   *engine.PausableClock

	spawner *systems.Spawner
	chaos   *systems.ChaosDirector
	systems []engine.System

	// lastDelta is the dt of the tick in progress, read by graph actions
	lastDelta float64

	editor  *level.Editor
	summary engine.RoundSummary
	notice  string
	muted   bool
	quit    bool

	inboxMu sync.Mutex
	inbox   []Command
}

// NewManager wires systems and the round graph, loads the profile and enters the menu
func NewManager(opts Options) (*Manager, error) {
	if opts.World == nil {
		return nil, errors.New("session requires a world")
	}
	source := opts.Clock
	if source == nil {
		source = engine.NewMonotonicTimeProvider()
	}

	w := opts.World
	m := &Manager{
		world:   w,
		machine: fsm.NewMachine[*Manager](),
		store:   opts.Store,
		levels:  opts.Levels,
		input:   opts.Input,
		clock:   engine.NewPausableClock(source),
	}

	m.spawner = systems.NewSpawner(w)
	m.chaos = systems.NewChaosDirector(w, m.spawner)
	m.systems = []engine.System{
		systems.NewCollisionSystem(m.spawner),
		systems.NewAnimationSystem(),
		systems.NewAISystem(),
		systems.NewPlayerSystem(opts.Input),
	}
	slices.SortStableFunc(m.systems, func(a, b engine.System) int {
		return a.Priority() - b.Priority()
	})

	m.loadProfile()
	m.registerGraph()
	if err := m.machine.LoadConfig(roundGraph); err != nil {
		return nil, errors.Wrap(err, "load round graph")
	}
	if err := m.machine.Init(m); err != nil {
		return nil, errors.Wrap(err, "init round graph")
	}
	return m, nil
}

// loadProfile falls back to defaults when the store is absent or unreadable
func (m *Manager) loadProfile() {
	if m.store == nil {
		return
	}
	p, err := m.store.Load()
	if err != nil {
		m.world.Logger.Warn("profile load failed, using defaults", "err", err)
		p = profile.Default()
	}
	m.world.Profile = &p
}

// saveProfile persists the profile; failure is logged only
func (m *Manager) saveProfile() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(*m.world.Profile); err != nil {
		m.world.Logger.Error("profile save failed", "err", err)
	}
}

// World exposes the session context
func (m *Manager) World() *engine.World {
	return m.world
}

// Clock returns the pausable game clock the loop measures frame time on
func (m *Manager) Clock() *engine.PausableClock {
	return m.clock
}

// State returns the round state name
func (m *Manager) State() string {
	return m.machine.Current(RegionRound)
}

// Editing reports whether the level editor is open
func (m *Manager) Editing() bool {
	return m.machine.In(RegionEditor, StateOpen)
}

// Paused reports whether simulated time is frozen
func (m *Manager) Paused() bool {
	return m.clock.IsPaused()
}

// Quitting reports whether a quit was requested
func (m *Manager) Quitting() bool {
	return m.quit
}

// Start begins a round from the menu
func (m *Manager) Start() bool {
	return m.machine.HandleEvent(m, "Start")
}

// Tick advances the round graph by dt seconds of simulated time
func (m *Manager) Tick(dt float64) {
	m.lastDelta = dt
	m.machine.Update(m)
}

// End forces the current round into gameover
func (m *Manager) End() bool {
	return m.machine.HandleEvent(m, "End")
}

// Restart begins a new round from gameover
func (m *Manager) Restart() bool {
	return m.machine.HandleEvent(m, "Restart")
}

// ReturnToMenu clears the arena and shows the menu
func (m *Manager) ReturnToMenu() bool {
	return m.machine.HandleEvent(m, "Menu")
}

// OpenEditor enters the level editor from the menu
func (m *Manager) OpenEditor() bool {
	return m.machine.HandleEvent(m, "OpenEditor")
}

func (m *Manager) CloseEditor() bool {
	return m.machine.HandleEvent(m, "CloseEditor")
}

// TogglePause freezes or resumes simulated time; wall-clock callbacks keep firing
func (m *Manager) TogglePause() bool {
	if m.State() != StatePlaying {
		return false
	}
	paused := m.clock.Toggle()
	m.world.Logger.Debug("pause toggled", "paused", paused)
	return true
}

// ToggleMute silences or restores audio; false when the sink cannot be muted
func (m *Manager) ToggleMute() bool {
	muter, ok := m.world.Audio.(engine.Muter)
	if !ok {
		return false
	}
	m.muted = !m.muted
	muter.SetMuted(m.muted)
	return true
}

// resetInput drops keys and dash presses latched outside of play
func (m *Manager) resetInput() {
	if r, ok := m.input.(engine.Resetter); ok {
		r.Reset()
	}
}

// Post queues a command for the next frame; safe from any goroutine
func (m *Manager) Post(cmd Command) {
	m.inboxMu.Lock()
	m.inbox = append(m.inbox, cmd)
	m.inboxMu.Unlock()
}

// Frame runs one loop iteration: commands, wall-clock callbacks, then simulation
// elapsed is clamped so a stalled frame never integrates a large step
func (m *Manager) Frame(elapsed float64) {
	m.drain()

	m.world.Scheduler.Poll()
	m.world.Status.Floats.Get("clock.paused_seconds").Store(m.clock.TotalPauseDuration().Seconds())

	if m.Paused() {
		return
	}
	dt := min(max(elapsed, 0), constants.MaxFrameDelta)
	m.Tick(dt)
}

func (m *Manager) drain() {
	m.inboxMu.Lock()
	pending := m.inbox
	m.inbox = nil
	m.inboxMu.Unlock()

	for _, cmd := range pending {
		m.apply(cmd)
	}
}

// apply executes one command; rejected commands leave a notice for the UI
func (m *Manager) apply(cmd Command) {
	w := m.world
	var err error

	switch cmd.Kind {
	case CmdStart:
		m.Start()
	case CmdRestart:
		m.Restart()
	case CmdEnd:
		m.End()
	case CmdMenu:
		m.ReturnToMenu()
	case CmdTogglePause:
		m.TogglePause()
	case CmdOpenEditor:
		m.OpenEditor()
	case CmdCloseEditor:
		m.CloseEditor()
	case CmdToggleMute:
		m.ToggleMute()
	case CmdQuit:
		m.quit = true

	case CmdSelectTool:
		if m.editor != nil {
			err = m.editor.SelectTool(level.Tool(cmd.Arg))
		}
	case CmdCycleTool:
		if m.editor != nil {
			m.editor.Cycle(cmd.Step)
		}
	case CmdEditorClick:
		if m.editor != nil {
			m.editor.Click(cmd.Point)
		}
	case CmdSaveLevel:
		if m.editor != nil {
			m.editor.Save(w.Profile)
			m.saveProfile()
			m.notice = constants.MsgLevelSaved
		}
	case CmdLoadLevel:
		if m.editor != nil {
			if err = m.editor.Load(w.Profile); err == nil {
				m.notice = constants.MsgLevelLoaded
			}
		}

	case CmdBuyHat:
		if err = profile.BuyHat(w.Profile, cmd.Arg); err == nil {
			m.saveProfile()
			w.HUD.SetCoins(w.Profile.Coins)
		}
	case CmdEquipHat:
		if err = profile.EquipHat(w.Profile, cmd.Arg); err == nil {
			m.saveProfile()
		}
	case CmdSelectCharacter:
		if err = profile.SelectCharacter(w.Profile, cmd.Arg); err == nil {
			m.saveProfile()
		}
	case CmdCycleCharacter:
		if m.State() == StateMenu {
			i := slices.Index(constants.Roster, w.Profile.SelectedCharacter)
			n := len(constants.Roster)
			w.Profile.SelectedCharacter = constants.Roster[((i+cmd.Step)%n+n)%n]
			m.saveProfile()
		}
	}

	if err != nil {
		m.notice = noticeFor(err)
		w.Logger.Info("command rejected", "cmd", cmd.Kind, "err", err)
	}
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, profile.ErrInsufficientCoins):
		return constants.MsgNotEnoughCoins
	case errors.Is(err, level.ErrNoSavedLevels):
		return constants.MsgNoSavedLevels
	default:
		return err.Error()
	}
}

// View is a read-only snapshot for the UI
type View struct {
	State   string
	Editing bool
	Paused  bool
	Muted   bool
	Tool    level.Tool
	Notice  string
	Summary engine.RoundSummary
	Profile profile.Profile
	// Obstacles is the editor's working layout size
	Obstacles int
}

// View returns what the UI needs beyond the HUD port
func (m *Manager) View() View {
	v := View{
		State:   m.State(),
		Editing: m.Editing(),
		Paused:  m.Paused(),
		Muted:   m.muted,
		Notice:  m.notice,
		Summary: m.summary,
		Profile: *m.world.Profile,
	}
	if m.editor != nil {
		v.Tool = m.editor.Tool()
		v.Obstacles = len(m.editor.Obstacles())
	}
	return v
}

// ClearNotice drops the current UI notice
func (m *Manager) ClearNotice() {
	m.notice = ""
}
