package constants

import (
	"time"
)

// @focus: #constants { gameplay }

// Round Defaults
const (
	// RoundTime is the length of a round in seconds of simulated time
	RoundTime = 60.0

	// ChaosInterval is seconds between chaos triggers, also the wall-clock lifetime of a reversible chaos event
	ChaosInterval = 20.0

	// MapSize is the side length of the square arena
	MapSize = 50.0

	// BoundaryMargin keeps characters this far inside the arena edge
	BoundaryMargin = 2.0

	// SpawnMargin keeps spawned items this far inside the arena edge
	SpawnMargin = 5.0

	BotCount      = 3
	FruitCount    = 15
	BombCount     = 5
	PowerupCount  = 3
	BotRingRadius = 10.0

	// CoinsPerPoint converts final round score into profile coins
	CoinsPerPoint = 10
)

// Frame Loop
const (
	// FrameInterval is the target render/update cadence
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the simulated delta in seconds after stalls
	MaxFrameDelta = 0.1
)

// Character Movement
const (
	PlayerSpeed  = 0.15
	DashSpeed    = 0.5
	DashCost     = 20.0
	MaxStamina   = 100.0
	StaminaRegen = 1.0 // per second

	GroundFriction   = 0.85
	SlipperyFriction = 0.95

	NeutralMultiplier = 1.0
	BoostMultiplier   = 2.0

	// PowerupDuration is seconds of simulated time a timed power-up lasts
	PowerupDuration = 5.0

	// GoldenBonus is the score granted by a golden power-up
	GoldenBonus = 5
)

// Interaction
const (
	PickupRadius      = 1.0
	HitRadius         = 1.5
	HitSpeedThreshold = 0.3

	// StealFraction of the bot's score is taken on a hit, before the strength multiplier
	StealFraction = 0.5

	// BombPenalty is the fraction of score lost to a bomb
	BombPenalty = 0.3

	StunDuration   = 2 * time.Second
	KnockbackForce = 2.0

	// BotDashChance is the per-frame probability that a pursuing bot dashes
	BotDashChance = 0.01
)

// Explosion Effect
const (
	ExplosionOpacity      = 0.8
	ExplosionFadeStep     = 0.1
	ExplosionFadeInterval = 50 * time.Millisecond
)

// Item Animation
const (
	CollectibleBobBase   = 0.5
	CollectibleBobAmp    = 0.2
	CollectibleBobSpeed  = 2.0
	CollectibleSpinSpeed = 1.0

	PowerupBobBase   = 0.8
	PowerupBobAmp    = 0.3
	PowerupBobSpeed  = 3.0
	PowerupSpinSpeed = 2.0
)
