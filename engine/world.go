package engine

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/profile"
	"github.com/lixenwraith/munchies/status"
	"github.com/lixenwraith/munchies/vmath"
)

// World is the explicit session context: live collections, round state and collaborators
// All fields are owned by the loop goroutine
type World struct {
	Settings  Settings
	Tuning    *entity.Tuning
	Rand      *rand.Rand
	Scheduler *Scheduler
	Logger    *log.Logger
	Status    *status.Registry

	Presenter Presenter
	HUD       HUD
	Audio     AudioSink
	Profile   *profile.Profile

	Player       *entity.Character
	Bots         []*entity.Character
	Collectibles []*entity.Collectible
	Powerups     []*entity.Powerup
	Bombs        []*entity.Bomb

	TimeLeft       float64
	ChaosCountdown float64
	ActiveChaos    string

	// RoundID names the current round in logs and the spectator feed
	RoundID uuid.UUID
	// Epoch increments whenever the arena is cleared; deferred callbacks compare it to detect stale rounds
	Epoch uint64

	FruitsCollected int

	nextID     entity.ID
	alertToken uint64
}

// Deps are the collaborators injected into a World; nil fields get silent defaults
type Deps struct {
	Settings  *Settings
	Tuning    *entity.Tuning
	Clock     TimeProvider
	Rand      *rand.Rand
	Logger    *log.Logger
	Status    *status.Registry
	Presenter Presenter
	HUD       HUD
	Audio     AudioSink
	Profile   *profile.Profile
}

// NewWorld creates an empty world
func NewWorld(deps Deps) *World {
	w := &World{
		Settings:  DefaultSettings(),
		Tuning:    deps.Tuning,
		Rand:      deps.Rand,
		Logger:    deps.Logger,
		Status:    deps.Status,
		Presenter: deps.Presenter,
		HUD:       deps.HUD,
		Audio:     deps.Audio,
		Profile:   deps.Profile,
	}
	if deps.Settings != nil {
		w.Settings = *deps.Settings
	}
	if w.Tuning == nil {
		w.Tuning = entity.DefaultTuning()
	}
	clock := deps.Clock
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	w.Scheduler = NewScheduler(clock)
	if w.Rand == nil {
		w.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if w.Logger == nil {
		w.Logger = log.New(io.Discard)
	}
	if w.Status == nil {
		w.Status = status.NewRegistry()
	}
	if w.Presenter == nil {
		w.Presenter = NopPresenter{}
	}
	if w.HUD == nil {
		w.HUD = NopHUD{}
	}
	if w.Audio == nil {
		w.Audio = NopAudio{}
	}
	if w.Profile == nil {
		p := profile.Default()
		w.Profile = &p
	}
	return w
}

// NextID allocates an entity id
func (w *World) NextID() entity.ID {
	w.nextID++
	return w.nextID
}

// Friction returns the per-frame velocity retention under the active chaos
func (w *World) Friction() float64 {
	if w.ActiveChaos == constants.ChaosSlipperyFloor {
		return constants.SlipperyFriction
	}
	return constants.GroundFriction
}

// Bound is the planar half-extent characters are clamped to
func (w *World) Bound() float64 {
	return w.Settings.MapSize/2 - constants.BoundaryMargin
}

// SpawnExtent is the planar half-extent items spawn within
func (w *World) SpawnExtent() float64 {
	return w.Settings.MapSize/2 - constants.SpawnMargin
}

// Characters returns the player followed by bots
func (w *World) Characters() []*entity.Character {
	out := make([]*entity.Character, 0, len(w.Bots)+1)
	if w.Player != nil {
		out = append(out, w.Player)
	}
	return append(out, w.Bots...)
}

// AddCharacter registers the player or a bot
func (w *World) AddCharacter(c *entity.Character) {
	if c.IsPlayer {
		w.Player = c
	} else {
		w.Bots = append(w.Bots, c)
	}
	w.Presenter.Add(c)
}

func (w *World) AddCollectible(c *entity.Collectible) {
	w.Collectibles = append(w.Collectibles, c)
	w.Presenter.Add(c)
}

func (w *World) AddPowerup(p *entity.Powerup) {
	w.Powerups = append(w.Powerups, p)
	w.Presenter.Add(p)
}

func (w *World) AddBomb(b *entity.Bomb) {
	w.Bombs = append(w.Bombs, b)
	w.Presenter.Add(b)
}

// Sync pushes an entity's transform to the presenter
func (w *World) Sync(ref entity.Ref) {
	w.Presenter.SyncTransform(ref.EntityID(), ref.Transform())
}

// PlayCue forwards a cue to the audio sink
func (w *World) PlayCue(cue Cue) {
	w.Audio.Play(cue)
}

// After schedules fn on the wall clock
func (w *World) After(d time.Duration, fn func()) {
	w.Scheduler.After(d, fn)
}

// StunCharacter stuns c and schedules an unconditional unstun after d of wall time
// Re-stunning does not extend an earlier expiry
func (w *World) StunCharacter(c *entity.Character, d time.Duration) {
	c.Stun()
	w.After(d, c.Unstun)
}

// Explode plays the blast cue and runs a wall-clock fade of the explosion effect
func (w *World) Explode(pos vmath.Vec3F) {
	w.PlayCue(CueExplode)

	e := entity.NewExplosion(w.NextID(), pos)
	w.Presenter.Explosion(e.ID, e.Position, e.Opacity)

	var step func()
	step = func() {
		if e.Fade() {
			w.Presenter.Remove(e.ID)
			return
		}
		w.Presenter.Explosion(e.ID, e.Position, e.Opacity)
		w.After(constants.ExplosionFadeInterval, step)
	}
	w.After(constants.ExplosionFadeInterval, step)
}

// ShowAlert announces a chaos event and hides it after the alert duration
// A newer alert is not hidden by an older timer
func (w *World) ShowAlert(ev constants.ChaosEvent) {
	w.alertToken++
	token := w.alertToken
	w.HUD.ShowAlert(ev.Name, ev.Description)
	w.After(constants.ChaosAlertDuration, func() {
		if w.alertToken == token {
			w.HUD.HideAlert()
		}
	})
}

// ResetRound starts a fresh round clock under a new round id
func (w *World) ResetRound() {
	w.TimeLeft = w.Settings.RoundTime
	w.ChaosCountdown = w.Settings.ChaosInterval
	w.ActiveChaos = ""
	w.FruitsCollected = 0
	w.RoundID = uuid.New()
	w.Epoch++
}

// Clear destroys every live entity and empties all collections
func (w *World) Clear() {
	for _, c := range w.Characters() {
		c.Destroy()
		w.Presenter.Remove(c.ID)
	}
	for _, c := range w.Collectibles {
		w.Presenter.Remove(c.ID)
	}
	for _, p := range w.Powerups {
		w.Presenter.Remove(p.ID)
	}
	for _, b := range w.Bombs {
		w.Presenter.Remove(b.ID)
	}

	w.Player = nil
	w.Bots = nil
	w.Collectibles = nil
	w.Powerups = nil
	w.Bombs = nil
	w.Epoch++
}

// PublishStatus writes live counts into the status registry
func (w *World) PublishStatus() {
	w.Status.Ints.Get("world.collectibles").Store(int64(len(w.Collectibles)))
	w.Status.Ints.Get("world.powerups").Store(int64(len(w.Powerups)))
	w.Status.Ints.Get("world.bombs").Store(int64(len(w.Bombs)))
	w.Status.Ints.Get("world.bots").Store(int64(len(w.Bots)))
	w.Status.Ints.Get("scheduler.pending").Store(int64(w.Scheduler.Len()))
	w.Status.Floats.Get("round.time_left").Store(w.TimeLeft)
	w.Status.Strings.Get("round.chaos").Store(w.ActiveChaos)
	w.Status.Strings.Get("round.id").Store(w.RoundID.String())
	if w.Player != nil {
		w.Status.Ints.Get("player.score").Store(int64(w.Player.Score))
	}
}
