package engine

import (
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/profile"
	"github.com/lixenwraith/munchies/vmath"
)

// Cue is a fire-and-forget sound request
type Cue uint8

const (
	CueCollect Cue = iota + 1
	CueDash
	CueExplode
	CueHit
	CuePowerup
)

func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueDash:
		return "dash"
	case CueExplode:
		return "explode"
	case CueHit:
		return "hit"
	case CuePowerup:
		return "powerup"
	default:
		return "none"
	}
}

// Presenter owns the visual representation of entities and level geometry
type Presenter interface {
	Add(ref entity.Ref)
	Remove(id entity.ID)
	SyncTransform(id entity.ID, t entity.Transform)
	Explosion(id entity.ID, pos vmath.Vec3F, opacity float64)
	ClearLevel()
	AddObstacle(o entity.Obstacle)
}

// HUD displays round state and overlays
type HUD interface {
	SetTimer(secondsLeft int)
	SetScore(score int)
	SetCoins(coins int)
	SetStamina(stamina, max float64)
	ShowAlert(name, description string)
	HideAlert()
	ShowGameOver(summary RoundSummary)
	HideGameOver()
}

// RoundSummary is shown on the game-over panel
type RoundSummary struct {
	FinalScore      int
	FruitsCollected int
	CoinsEarned     int
	TotalCoins      int
}

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . AudioSink,ProfileStore,LevelGenerator

// AudioSink plays cues without feedback
type AudioSink interface {
	Play(cue Cue)
}

// InputSource yields the player's intent for one frame
type InputSource interface {
	Poll() (dir vmath.Vec3F, dash bool)
}

// Resetter is implemented by inputs that latch state between frames
type Resetter interface {
	Reset()
}

// Muter is implemented by audio sinks that can be silenced
type Muter interface {
	SetMuted(muted bool)
}

// ProfileStore persists the player profile
type ProfileStore interface {
	Load() (profile.Profile, error)
	Save(p profile.Profile) error
}

// LevelGenerator produces an arena layout; the core never inspects obstacle positions
type LevelGenerator interface {
	Layouts() []string
	Generate(layout string) ([]entity.Obstacle, error)
}

// NopPresenter discards all presentation calls
type NopPresenter struct{}

func (NopPresenter) Add(entity.Ref)                            {}
func (NopPresenter) Remove(entity.ID)                          {}
func (NopPresenter) SyncTransform(entity.ID, entity.Transform) {}
func (NopPresenter) Explosion(entity.ID, vmath.Vec3F, float64) {}
func (NopPresenter) ClearLevel()                               {}
func (NopPresenter) AddObstacle(entity.Obstacle)               {}

// NopHUD discards all HUD updates
type NopHUD struct{}

func (NopHUD) SetTimer(int)                {}
func (NopHUD) SetScore(int)                {}
func (NopHUD) SetCoins(int)                {}
func (NopHUD) SetStamina(float64, float64) {}
func (NopHUD) ShowAlert(string, string)    {}
func (NopHUD) HideAlert()                  {}
func (NopHUD) ShowGameOver(RoundSummary)   {}
func (NopHUD) HideGameOver()               {}

// NopAudio discards cues
type NopAudio struct{}

func (NopAudio) Play(Cue) {}
