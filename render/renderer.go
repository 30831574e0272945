package render

import (
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/vmath"
)

// sprite is the terminal representation of one entity
type sprite struct {
	glyph     rune
	style     tcell.Style
	kind      entity.Kind
	hat       bool
	transform entity.Transform
}

type explosion struct {
	pos     vmath.Vec3F
	opacity float64
}

// hudState mirrors the values the core pushes through the HUD port
type hudState struct {
	timer      int
	score      int
	coins      int
	stamina    float64
	maxStamina float64

	alertOn   bool
	alertName string
	alertDesc string

	gameOver bool
	summary  engine.RoundSummary
}

// Renderer draws the arena and HUD on a tcell screen
// It implements the presenter and HUD ports; all calls come from the loop goroutine
type Renderer struct {
	screen     tcell.Screen
	sprites    map[entity.ID]*sprite
	obstacles  []entity.Obstacle
	explosions map[entity.ID]explosion
	hud        hudState
	mapSize    float64
}

var (
	_ engine.Presenter = (*Renderer)(nil)
	_ engine.HUD       = (*Renderer)(nil)
)

// NewRenderer creates a renderer for an arena of the given side length
func NewRenderer(screen tcell.Screen, mapSize float64) *Renderer {
	return &Renderer{
		screen:     screen,
		sprites:    make(map[entity.ID]*sprite),
		explosions: make(map[entity.ID]explosion),
		mapSize:    mapSize,
	}
}

// Screen returns the underlying terminal screen
func (r *Renderer) Screen() tcell.Screen {
	return r.screen
}

// Add registers an entity's visual
func (r *Renderer) Add(ref entity.Ref) {
	s := &sprite{kind: ref.Kind(), transform: ref.Transform()}
	base := tcell.StyleDefault.Background(RgbGround)

	switch e := ref.(type) {
	case *entity.Character:
		s.glyph = characterGlyph(e)
		s.style = base.Foreground(VariantColor(e.Variant)).Bold(e.IsPlayer)
		s.hat = e.Hat != ""
	case *entity.Collectible:
		s.glyph = '●'
		s.style = base.Foreground(fruitColors[e.Type])
	case *entity.Powerup:
		s.glyph = '◆'
		s.style = base.Foreground(powerupColors[e.Type]).Bold(true)
	case *entity.Bomb:
		s.glyph = '✱'
		s.style = base.Foreground(RgbBomb).Bold(true)
	default:
		s.glyph = '?'
		s.style = base
	}
	r.sprites[ref.EntityID()] = s
}

func characterGlyph(c *entity.Character) rune {
	if c.IsPlayer {
		return '@'
	}
	if c.Variant == "" {
		return 'b'
	}
	return []rune(c.Variant)[0]
}

func (r *Renderer) Remove(id entity.ID) {
	delete(r.sprites, id)
	delete(r.explosions, id)
}

// SyncTransform updates where an entity is drawn
func (r *Renderer) SyncTransform(id entity.ID, t entity.Transform) {
	if s, ok := r.sprites[id]; ok {
		s.transform = t
	}
}

// Explosion creates or updates a fading blast
func (r *Renderer) Explosion(id entity.ID, pos vmath.Vec3F, opacity float64) {
	r.explosions[id] = explosion{pos: pos, opacity: opacity}
}

func (r *Renderer) ClearLevel() {
	r.obstacles = r.obstacles[:0]
}

func (r *Renderer) AddObstacle(o entity.Obstacle) {
	r.obstacles = append(r.obstacles, o)
}

// SpriteCount returns the number of live entity visuals
func (r *Renderer) SpriteCount() int {
	return len(r.sprites)
}

// sortedSprites orders sprites so characters draw over items
func (r *Renderer) sortedSprites() []*sprite {
	ids := slices.Sorted(maps.Keys(r.sprites))
	out := make([]*sprite, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.sprites[id])
	}
	slices.SortStableFunc(out, func(a, b *sprite) int {
		return drawOrder(a.kind) - drawOrder(b.kind)
	})
	return out
}

func drawOrder(k entity.Kind) int {
	if k == entity.KindCharacter {
		return 1
	}
	return 0
}

// HUD port

func (r *Renderer) SetTimer(secondsLeft int) { r.hud.timer = secondsLeft }
func (r *Renderer) SetScore(score int)       { r.hud.score = score }
func (r *Renderer) SetCoins(coins int)       { r.hud.coins = coins }

func (r *Renderer) SetStamina(stamina, max float64) {
	r.hud.stamina = stamina
	r.hud.maxStamina = max
}

func (r *Renderer) ShowAlert(name, description string) {
	r.hud.alertOn = true
	r.hud.alertName = name
	r.hud.alertDesc = description
}

func (r *Renderer) HideAlert() {
	r.hud.alertOn = false
}

func (r *Renderer) ShowGameOver(summary engine.RoundSummary) {
	r.hud.gameOver = true
	r.hud.summary = summary
}

func (r *Renderer) HideGameOver() {
	r.hud.gameOver = false
}
