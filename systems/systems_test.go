package systems

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/engine/mocks"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/vmath"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestWorld(audio engine.AudioSink) (*engine.World, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(testEpoch)
	w := engine.NewWorld(engine.Deps{
		Clock: clock,
		Rand:  rand.New(rand.NewPCG(7, 11)),
		Audio: audio,
	})
	w.ResetRound()
	return w, clock
}

func addPlayer(w *engine.World, pos vmath.Vec3F) *entity.Character {
	p := entity.NewCharacter(w.NextID(), "panda", true, pos, w.Tuning)
	w.AddCharacter(p)
	return p
}

func addBot(w *engine.World, pos vmath.Vec3F) *entity.Character {
	b := entity.NewCharacter(w.NextID(), "fox", false, pos, w.Tuning)
	w.AddCharacter(b)
	return b
}

// TestSpawnerWithinExtent verifies spawn positions stay inside the margin
func TestSpawnerWithinExtent(t *testing.T) {
	w, _ := newTestWorld(nil)
	s := NewSpawner(w)
	extent := constants.MapSize/2 - constants.SpawnMargin

	for i := 0; i < 1000; i++ {
		pos := s.RandomPosition()
		require.LessOrEqual(t, pos.X, extent)
		require.GreaterOrEqual(t, pos.X, -extent)
		require.LessOrEqual(t, pos.Z, extent)
		require.GreaterOrEqual(t, pos.Z, -extent)
	}

	c := s.SpawnCollectible()
	assert.Contains(t, entity.FruitTypes, c.Type)
	p := s.SpawnPowerup()
	assert.Contains(t, entity.PowerupTypes, p.Type)
	s.SpawnBomb()

	assert.Len(t, w.Collectibles, 1)
	assert.Len(t, w.Powerups, 1)
	assert.Len(t, w.Bombs, 1)
}

// TestAITargetsFirstCollectible verifies bots chase element zero even when another is closer
func TestAITargetsFirstCollectible(t *testing.T) {
	w, _ := newTestWorld(nil)
	bot := addBot(w, vmath.Vec3F{})
	w.AddCollectible(entity.NewCollectible(w.NextID(), entity.FruitApple, vmath.Vec3F{X: 10}, 0))
	w.AddCollectible(entity.NewCollectible(w.NextID(), entity.FruitCorn, vmath.Vec3F{Z: 1}, 0))

	NewAISystem().Update(w, 0.016)

	assert.Greater(t, bot.Velocity.X, 0.0)
	assert.InDelta(t, 0.0, bot.Velocity.Z, 1e-12)
	assert.InDelta(t, 0.0, bot.Velocity.Y, 1e-12, "bob height must not steer bots")
	assert.Greater(t, bot.Position.X, 0.0)
}

// TestAIStunnedBotDoesNotSteer verifies stunned bots neither move nor dash
func TestAIStunnedBotDoesNotSteer(t *testing.T) {
	w, _ := newTestWorld(nil)
	bot := addBot(w, vmath.Vec3F{X: 3})
	bot.Stun()
	w.AddCollectible(entity.NewCollectible(w.NextID(), entity.FruitApple, vmath.Vec3F{X: 10}, 0))

	for i := 0; i < 500; i++ {
		NewAISystem().Update(w, 0.016)
	}

	assert.Equal(t, vmath.Vec3F{X: 3}, bot.Position)
	assert.Equal(t, constants.MaxStamina, bot.Stamina)
}

// TestCollectiblePickup verifies score, coins, cue and constant collectible count
func TestCollectiblePickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	audio.EXPECT().Play(engine.CueCollect).Times(1)

	w, _ := newTestWorld(audio)
	p := addPlayer(w, vmath.Vec3F{})
	w.Profile.Coins = 4

	near := entity.NewCollectible(w.NextID(), entity.FruitBanana, vmath.Vec3F{X: 0.5}, 0)
	w.AddCollectible(near)
	for i := 0; i < 4; i++ {
		w.AddCollectible(entity.NewCollectible(w.NextID(), entity.FruitApple, vmath.Vec3F{X: 10 + float64(i)}, 0))
	}

	NewCollisionSystem(NewSpawner(w)).Update(w, 0.016)

	assert.Equal(t, 1, p.Score)
	assert.Equal(t, 5, w.Profile.Coins)
	assert.Equal(t, 1, w.FruitsCollected)
	require.Len(t, w.Collectibles, 5)
	assert.False(t, slices.Contains(w.Collectibles, near))
	assert.NotEqual(t, near.ID, w.Collectibles[4].ID, "respawn is appended last")
}

// TestPowerupPickupNoRespawn verifies effect application and removal
func TestPowerupPickupNoRespawn(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	audio.EXPECT().Play(engine.CuePowerup).Times(1)

	w, _ := newTestWorld(audio)
	p := addPlayer(w, vmath.Vec3F{})
	w.AddPowerup(entity.NewPowerup(w.NextID(), entity.PowerupStrength, vmath.Vec3F{Z: -0.9}, 0))

	NewCollisionSystem(NewSpawner(w)).Update(w, 0.016)

	assert.Empty(t, w.Powerups)
	assert.Equal(t, 2.0, p.StrengthMultiplier)
}

// TestBombDetonation verifies the penalty, stun, knockback and constant bomb count
func TestBombDetonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	audio.EXPECT().Play(engine.CueExplode).Times(1)

	w, clock := newTestWorld(audio)
	p := addPlayer(w, vmath.Vec3F{})
	p.Score = 10
	w.AddBomb(entity.NewBomb(w.NextID(), vmath.Vec3F{X: 0.5}))
	w.AddBomb(entity.NewBomb(w.NextID(), vmath.Vec3F{X: -15}))

	NewCollisionSystem(NewSpawner(w)).Update(w, 0.016)

	assert.Equal(t, 7, p.Score)
	assert.True(t, p.Stunned)
	assert.InDelta(t, -constants.KnockbackForce, p.Velocity.X, 1e-12)
	assert.Len(t, w.Bombs, 2)

	clock.Advance(constants.StunDuration)
	w.Scheduler.Poll()
	assert.False(t, p.Stunned)
}

// TestBotHitSteal verifies fast contact stuns the bot and transfers score
func TestBotHitSteal(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	audio.EXPECT().Play(engine.CueHit).Times(1)

	w, _ := newTestWorld(audio)
	p := addPlayer(w, vmath.Vec3F{})
	p.StrengthMultiplier = 2
	p.Velocity = vmath.Vec3F{X: 0.5}

	bot := addBot(w, vmath.Vec3F{X: 1})
	bot.Score = 9
	slow := addBot(w, vmath.Vec3F{X: 20})
	slow.Score = 9

	NewCollisionSystem(NewSpawner(w)).Update(w, 0.016)

	assert.True(t, bot.Stunned)
	assert.Equal(t, 0, bot.Score)
	assert.Equal(t, 9, p.Score)
	assert.False(t, slow.Stunned)
}

// TestAIDashChance verifies pursuing bots dash on roughly one frame in a hundred
func TestAIDashChance(t *testing.T) {
	const ticks = 100000

	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	dashes := 0
	audio.EXPECT().Play(engine.CueDash).Do(func(engine.Cue) { dashes++ }).AnyTimes()

	w, _ := newTestWorld(audio)
	bot := addBot(w, vmath.Vec3F{})
	bot.InfiniteStamina = true
	w.AddCollectible(entity.NewCollectible(w.NextID(), entity.FruitApple, vmath.Vec3F{X: 30, Z: 30}, 0))

	ai := NewAISystem()
	for i := 0; i < ticks; i++ {
		ai.Update(w, 0.016)
	}

	expected := constants.BotDashChance * ticks
	assert.InDelta(t, expected, float64(dashes), expected*0.15)
}

// TestBotHitStealsFromNegativeScore verifies the floored steal moves a negative score toward zero
func TestBotHitStealsFromNegativeScore(t *testing.T) {
	w, _ := newTestWorld(nil)
	p := addPlayer(w, vmath.Vec3F{})
	p.Velocity = vmath.Vec3F{X: 0.5}

	bot := addBot(w, vmath.Vec3F{X: 1})
	bot.Score = -3

	NewCollisionSystem(NewSpawner(w)).Update(w, 0.016)

	// floor(-3 * 0.5) = -2
	assert.True(t, bot.Stunned)
	assert.Equal(t, -1, bot.Score)
	assert.Equal(t, -2, p.Score)
}

// TestBotContactTooSlow verifies no hit below the speed threshold
func TestBotContactTooSlow(t *testing.T) {
	w, _ := newTestWorld(nil)
	p := addPlayer(w, vmath.Vec3F{})
	p.Velocity = vmath.Vec3F{X: 0.3}
	bot := addBot(w, vmath.Vec3F{X: 1})
	bot.Score = 4

	NewCollisionSystem(NewSpawner(w)).Update(w, 0.016)

	assert.False(t, bot.Stunned)
	assert.Equal(t, 4, bot.Score)
}

// TestSpeedDemonCompounds verifies two triggers quadruple and reversals divide back
func TestSpeedDemonCompounds(t *testing.T) {
	w, clock := newTestWorld(nil)
	p := addPlayer(w, vmath.Vec3F{})
	bot := addBot(w, vmath.Vec3F{X: 5})
	d := NewChaosDirector(w, NewSpawner(w))
	demon := constants.ChaosEvents[2]

	require.True(t, d.TriggerEvent(demon))
	require.True(t, d.TriggerEvent(demon))
	assert.Equal(t, 4.0, p.SpeedMultiplier)
	assert.Equal(t, 4.0, bot.SpeedMultiplier)
	assert.Equal(t, constants.ChaosSpeedDemon, w.ActiveChaos)

	clock.Advance(20 * time.Second)
	w.Scheduler.Poll()
	assert.Equal(t, 1.0, p.SpeedMultiplier)
	assert.Equal(t, "", w.ActiveChaos)
}

// TestScaleChaosReverts verifies Tiny Titans on the captured set and wall-clock reversal
func TestScaleChaosReverts(t *testing.T) {
	w, clock := newTestWorld(nil)
	p := addPlayer(w, vmath.Vec3F{})
	d := NewChaosDirector(w, NewSpawner(w))

	require.True(t, d.TriggerEvent(constants.ChaosEvents[0]))
	late := addBot(w, vmath.Vec3F{X: 3})

	assert.Equal(t, constants.TinyScale, p.Scale)
	assert.Equal(t, 1.0, late.Scale, "characters created after trigger are unaffected")

	clock.Advance(19 * time.Second)
	w.Scheduler.Poll()
	assert.Equal(t, constants.TinyScale, p.Scale)

	clock.Advance(time.Second)
	w.Scheduler.Poll()
	assert.Equal(t, 1.0, p.Scale)
}

// TestSlipperyFloorFriction verifies the slot drives friction until reversal
func TestSlipperyFloorFriction(t *testing.T) {
	w, clock := newTestWorld(nil)
	addPlayer(w, vmath.Vec3F{})
	d := NewChaosDirector(w, NewSpawner(w))

	d.TriggerEvent(constants.ChaosEvents[3])
	assert.Equal(t, constants.SlipperyFriction, w.Friction())

	clock.Advance(20 * time.Second)
	w.Scheduler.Poll()
	assert.Equal(t, constants.GroundFriction, w.Friction())
}

// TestBombRainStaggered verifies fifteen bombs at 200ms spacing and slot clear at 5s
func TestBombRainStaggered(t *testing.T) {
	w, clock := newTestWorld(nil)
	addPlayer(w, vmath.Vec3F{})
	d := NewChaosDirector(w, NewSpawner(w))

	d.TriggerEvent(constants.ChaosEvents[4])
	w.Scheduler.Poll()
	assert.Len(t, w.Bombs, 1)

	clock.Advance(1 * time.Second)
	w.Scheduler.Poll()
	assert.Len(t, w.Bombs, 6)

	clock.Advance(2 * time.Second)
	w.Scheduler.Poll()
	assert.Len(t, w.Bombs, constants.BombRainCount)
	assert.Equal(t, constants.ChaosBombRain, w.ActiveChaos)

	clock.Advance(2 * time.Second)
	w.Scheduler.Poll()
	assert.Equal(t, "", w.ActiveChaos)
}

// TestBombRainSkippedAfterRoundEnd verifies late drops do not land in a cleared arena
func TestBombRainSkippedAfterRoundEnd(t *testing.T) {
	w, clock := newTestWorld(nil)
	addPlayer(w, vmath.Vec3F{})
	d := NewChaosDirector(w, NewSpawner(w))

	d.TriggerEvent(constants.ChaosEvents[4])
	w.Clear()

	clock.Advance(10 * time.Second)
	w.Scheduler.Poll()
	assert.Empty(t, w.Bombs)
}

// TestChaosWithoutCharactersNoop verifies an empty arena ignores triggers
func TestChaosWithoutCharactersNoop(t *testing.T) {
	w, _ := newTestWorld(nil)
	d := NewChaosDirector(w, NewSpawner(w))

	_, ok := d.Trigger()
	assert.False(t, ok)
	assert.Equal(t, "", w.ActiveChaos)
	assert.Equal(t, 0, w.Scheduler.Len())
}
