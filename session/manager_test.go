package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/engine/mocks"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/level"
	"github.com/lixenwraith/munchies/profile"
	"github.com/lixenwraith/munchies/vmath"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingHUD struct {
	engine.NopHUD
	gameOvers int
	summary   engine.RoundSummary
	alerts    []string
	timer     int
}

func (h *recordingHUD) ShowGameOver(s engine.RoundSummary) {
	h.gameOvers++
	h.summary = s
}

func (h *recordingHUD) ShowAlert(name, _ string) { h.alerts = append(h.alerts, name) }
func (h *recordingHUD) SetTimer(s int)           { h.timer = s }

type countingPresenter struct {
	engine.NopPresenter
	obstacles int
}

func (p *countingPresenter) ClearLevel()                 { p.obstacles = 0 }
func (p *countingPresenter) AddObstacle(entity.Obstacle) { p.obstacles++ }

type fixture struct {
	m         *Manager
	w         *engine.World
	clock     *engine.MockTimeProvider
	hud       *recordingHUD
	presenter *countingPresenter
	store     *mocks.MockProfileStore
}

var testObstacles = []entity.Obstacle{
	{Kind: entity.ObstacleCrate, Position: vmath.Vec3F{X: 15}, Radius: 1},
	{Kind: entity.ObstacleTree, Position: vmath.Vec3F{Z: -15}, Radius: 1},
}

func newFixture(t *testing.T, start profile.Profile) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := mocks.NewMockProfileStore(ctrl)
	store.EXPECT().Load().Return(start, nil)

	levels := mocks.NewMockLevelGenerator(ctrl)
	levels.EXPECT().Layouts().Return([]string{"arena"}).AnyTimes()
	levels.EXPECT().Generate(gomock.Any()).Return(testObstacles, nil).AnyTimes()

	clock := engine.NewMockTimeProvider(testEpoch)
	hud := &recordingHUD{}
	presenter := &countingPresenter{}
	w := engine.NewWorld(engine.Deps{
		Clock:     clock,
		Rand:      rand.New(rand.NewPCG(1, 2)),
		HUD:       hud,
		Presenter: presenter,
	})

	m, err := NewManager(Options{World: w, Store: store, Levels: levels, Clock: clock})
	require.NoError(t, err)

	return &fixture{m: m, w: w, clock: clock, hud: hud, presenter: presenter, store: store}
}

func TestManagerStartsInMenu(t *testing.T) {
	f := newFixture(t, profile.Default())

	assert.Equal(t, StateMenu, f.m.State())
	assert.False(t, f.m.Editing())
	assert.Nil(t, f.w.Player)
}

func TestLoadFailureUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProfileStore(ctrl)
	store.EXPECT().Load().Return(profile.Profile{}, errors.New("corrupt"))

	w := engine.NewWorld(engine.Deps{})
	_, err := NewManager(Options{World: w, Store: store})
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultCharacter, w.Profile.SelectedCharacter)
}

func TestStartPopulatesArena(t *testing.T) {
	start := profile.Default()
	start.SelectedCharacter = "fox"
	start.UnlockedHats = []string{"crown"}
	start.EquippedHat = "crown"
	f := newFixture(t, start)

	require.True(t, f.m.Start())
	assert.Equal(t, StatePlaying, f.m.State())

	w := f.w
	require.NotNil(t, w.Player)
	assert.Equal(t, vmath.Vec3F{}, w.Player.Position)
	assert.Equal(t, "fox", w.Player.Variant)
	assert.Equal(t, "crown", w.Player.Hat)

	require.Len(t, w.Bots, constants.BotCount)
	for _, b := range w.Bots {
		assert.InDelta(t, constants.BotRingRadius, vmath.V3FMag(b.Position), 1e-9)
	}
	assert.Len(t, w.Collectibles, constants.FruitCount)
	assert.Len(t, w.Powerups, constants.PowerupCount)
	assert.Len(t, w.Bombs, constants.BombCount)

	assert.Equal(t, float64(constants.RoundTime), w.TimeLeft)
	assert.Equal(t, float64(constants.ChaosInterval), w.ChaosCountdown)
	assert.Equal(t, len(testObstacles), f.presenter.obstacles)
}

// TestRoundEndsExactlyOnce drives a full round at a fixed step
func TestRoundEndsExactlyOnce(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.store.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	require.True(t, f.m.Start())

	for i := 0; i < 599; i++ {
		f.m.Tick(0.1)
	}
	require.Equal(t, StatePlaying, f.m.State(), "round must still run before the 600th tick")

	f.m.Tick(0.1)
	f.m.Tick(0.1)
	require.Equal(t, StateGameOver, f.m.State())

	for i := 0; i < 50; i++ {
		f.m.Tick(0.1)
	}
	assert.Equal(t, 1, f.hud.gameOvers)
	assert.Equal(t, StateGameOver, f.m.State())
}

func TestGameOverCreditsCoins(t *testing.T) {
	start := profile.Default()
	start.Coins = 5
	f := newFixture(t, start)

	var saved profile.Profile
	f.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(p profile.Profile) error {
		saved = p
		return nil
	})

	require.True(t, f.m.Start())
	f.w.Player.Score = 3
	f.w.FruitsCollected = 3
	require.True(t, f.m.End())

	assert.Equal(t, 35, f.w.Profile.Coins)
	assert.Equal(t, 35, saved.Coins)
	assert.Equal(t, engine.RoundSummary{FinalScore: 3, FruitsCollected: 3, CoinsEarned: 30, TotalCoins: 35}, f.hud.summary)

	assert.Nil(t, f.w.Player)
	assert.Empty(t, f.w.Bots)
	assert.Empty(t, f.w.Collectibles)
	assert.Empty(t, f.w.Powerups)
	assert.Empty(t, f.w.Bombs)
}

func TestNegativeScoreDebitsCoins(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.store.EXPECT().Save(gomock.Any()).Return(nil)

	f.m.Start()
	f.w.Player.Score = -2
	f.m.End()

	assert.Equal(t, -20, f.w.Profile.Coins)
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.store.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))

	f.m.Start()
	require.True(t, f.m.End())
	assert.Equal(t, StateGameOver, f.m.State())
	assert.Equal(t, 1, f.hud.gameOvers)
}

func TestRestartAndReturnToMenu(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.store.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	f.m.Start()
	first := f.w.RoundID
	f.m.End()

	require.True(t, f.m.Restart())
	assert.Equal(t, StatePlaying, f.m.State())
	assert.NotEqual(t, first, f.w.RoundID)
	assert.NotNil(t, f.w.Player)

	// Leaving mid-round clears the arena without saving
	require.True(t, f.m.ReturnToMenu())
	assert.Equal(t, StateMenu, f.m.State())
	assert.Nil(t, f.w.Player)
	assert.Empty(t, f.w.Collectibles)
	assert.Zero(t, f.presenter.obstacles)
}

func TestFrameClampsDelta(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.m.Start()

	f.m.Frame(5.0)
	assert.InDelta(t, constants.RoundTime-constants.MaxFrameDelta, f.w.TimeLeft, 1e-9)

	f.m.Frame(0.016)
	assert.InDelta(t, constants.RoundTime-constants.MaxFrameDelta-0.016, f.w.TimeLeft, 1e-9)
}

// TestPauseKeepsWallClockCallbacks verifies pause freezes the round but not deferred callbacks
func TestPauseKeepsWallClockCallbacks(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.m.Start()

	fired := false
	f.w.After(10*time.Millisecond, func() { fired = true })

	f.m.Post(Command{Kind: CmdTogglePause})
	f.clock.Advance(20 * time.Millisecond)
	f.m.Frame(0.1)

	assert.True(t, f.m.Paused())
	assert.True(t, fired)
	assert.Equal(t, float64(constants.RoundTime), f.w.TimeLeft)

	f.m.Post(Command{Kind: CmdTogglePause})
	f.m.Frame(0.1)
	assert.False(t, f.m.Paused())
	assert.InDelta(t, constants.RoundTime-0.1, f.w.TimeLeft, 1e-9)
}

func TestPauseIgnoredOutsideRound(t *testing.T) {
	f := newFixture(t, profile.Default())
	assert.False(t, f.m.TogglePause())
	assert.False(t, f.m.Paused())
}

func TestChaosTriggersOnCountdown(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.m.Start()

	for i := 0; i < 201; i++ {
		f.m.Tick(0.1)
	}

	assert.NotEmpty(t, f.w.ActiveChaos)
	assert.Len(t, f.hud.alerts, 1)
	assert.Greater(t, f.w.ChaosCountdown, float64(constants.ChaosInterval)-1)
}

func TestEditorBlocksStart(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.store.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	require.True(t, f.m.OpenEditor())
	assert.True(t, f.m.Editing())
	assert.Equal(t, len(testObstacles), f.presenter.obstacles)

	assert.False(t, f.m.Start())
	assert.Equal(t, StateMenu, f.m.State())

	f.m.Post(SelectTool(level.ToolTree))
	f.m.Post(Command{Kind: CmdEditorClick, Point: vmath.Vec3F{X: -8, Z: 8}})
	f.m.Post(Command{Kind: CmdSaveLevel})
	f.m.Frame(0)

	v := f.m.View()
	assert.Equal(t, level.ToolTree, v.Tool)
	assert.Equal(t, len(testObstacles)+1, v.Obstacles)
	assert.Equal(t, constants.MsgLevelSaved, v.Notice)
	require.Len(t, f.w.Profile.CustomLevels, 1)

	require.True(t, f.m.CloseEditor())
	assert.Zero(t, f.presenter.obstacles)
	assert.True(t, f.m.Start())
}

func TestEditorOnlyFromMenu(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.m.Start()

	assert.False(t, f.m.OpenEditor())
	assert.False(t, f.m.Editing())
}

func TestShopCommands(t *testing.T) {
	start := profile.Default()
	start.Coins = 120
	f := newFixture(t, start)
	f.store.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	f.m.Post(Command{Kind: CmdBuyHat, Arg: "tophat"})
	f.m.Post(Command{Kind: CmdEquipHat, Arg: "tophat"})
	f.m.Frame(0)

	assert.Equal(t, 20, f.w.Profile.Coins)
	assert.Equal(t, "tophat", f.w.Profile.EquippedHat)

	f.m.Post(Command{Kind: CmdBuyHat, Arg: "crown"})
	f.m.Frame(0)
	assert.Equal(t, constants.MsgNotEnoughCoins, f.m.View().Notice)
	assert.False(t, f.w.Profile.HasHat("crown"))
}

func TestQuitCommand(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.m.Post(Command{Kind: CmdQuit})
	f.m.Frame(0)
	assert.True(t, f.m.Quitting())
}

func TestCommandKindNames(t *testing.T) {
	for k := CmdStart; k <= CmdQuit; k++ {
		parsed, ok := ParseCommandKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseCommandKind("dance")
	assert.False(t, ok)
}

func TestCycleCharacterWraps(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.store.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	f.m.Post(Command{Kind: CmdCycleCharacter, Step: -1})
	f.m.Frame(0)
	assert.Equal(t, constants.Roster[len(constants.Roster)-1], f.w.Profile.SelectedCharacter)

	f.m.Post(Command{Kind: CmdCycleCharacter, Step: 1})
	f.m.Frame(0)
	assert.Equal(t, constants.Roster[0], f.w.Profile.SelectedCharacter)
}

type latchingInput struct {
	resets int
}

func (*latchingInput) Poll() (vmath.Vec3F, bool) { return vmath.Vec3F{}, false }
func (in *latchingInput) Reset()                 { in.resets++ }

type mutingAudio struct {
	engine.NopAudio
	muted []bool
}

func (a *mutingAudio) SetMuted(muted bool) { a.muted = append(a.muted, muted) }

func TestRoundStartAndMenuResetInput(t *testing.T) {
	in := &latchingInput{}
	w := engine.NewWorld(engine.Deps{Clock: engine.NewMockTimeProvider(testEpoch), Rand: rand.New(rand.NewPCG(1, 2))})
	m, err := NewManager(Options{World: w, Input: in, Clock: engine.NewMockTimeProvider(testEpoch)})
	require.NoError(t, err)
	before := in.resets

	require.True(t, m.Start())
	assert.Equal(t, before+1, in.resets, "dash latched in the menu must not carry into the round")

	require.True(t, m.ReturnToMenu())
	assert.Equal(t, before+2, in.resets)
}

func TestMuteCommandToggles(t *testing.T) {
	audio := &mutingAudio{}
	w := engine.NewWorld(engine.Deps{Audio: audio})
	m, err := NewManager(Options{World: w})
	require.NoError(t, err)

	m.Post(Command{Kind: CmdToggleMute})
	m.Frame(0)
	assert.True(t, m.View().Muted)

	m.Post(Command{Kind: CmdToggleMute})
	m.Frame(0)
	assert.False(t, m.View().Muted)
	assert.Equal(t, []bool{true, false}, audio.muted)
}

func TestMuteWithoutMuterIgnored(t *testing.T) {
	f := newFixture(t, profile.Default())
	assert.False(t, f.m.ToggleMute())
	assert.False(t, f.m.View().Muted)
}

func TestPausedSecondsPublished(t *testing.T) {
	f := newFixture(t, profile.Default())
	f.m.Start()

	require.True(t, f.m.TogglePause())
	f.clock.Advance(2 * time.Second)
	f.m.Frame(0.1)

	assert.InDelta(t, 2.0, f.w.Status.Floats.Get("clock.paused_seconds").Load(), 1e-9)
}
