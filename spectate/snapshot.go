package spectate

import (
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/entity"
)

// Snapshot is the world state streamed to spectators
type Snapshot struct {
	Round     string      `json:"round" msgpack:"round"`
	State     string      `json:"state" msgpack:"state"`
	Paused    bool        `json:"paused" msgpack:"paused"`
	TimeLeft  float64     `json:"timeLeft" msgpack:"timeLeft"`
	Chaos     string      `json:"chaos,omitempty" msgpack:"chaos,omitempty"`
	MapSize   float64     `json:"mapSize" msgpack:"mapSize"`
	Coins     int         `json:"coins" msgpack:"coins"`
	Player    *Character  `json:"player,omitempty" msgpack:"player,omitempty"`
	Bots      []Character `json:"bots" msgpack:"bots"`
	Fruits    []Item      `json:"fruits" msgpack:"fruits"`
	Powerups  []Item      `json:"powerups" msgpack:"powerups"`
	Bombs     []Item      `json:"bombs" msgpack:"bombs"`
	Collected int         `json:"collected" msgpack:"collected"`
}

// Character is the streamed view of a brawler
type Character struct {
	ID      uint64  `json:"id" msgpack:"id"`
	Variant string  `json:"variant" msgpack:"variant"`
	Hat     string  `json:"hat,omitempty" msgpack:"hat,omitempty"`
	X       float64 `json:"x" msgpack:"x"`
	Z       float64 `json:"z" msgpack:"z"`
	Rot     float64 `json:"rot" msgpack:"rot"`
	Scale   float64 `json:"scale" msgpack:"scale"`
	Stamina float64 `json:"stamina" msgpack:"stamina"`
	Score   int     `json:"score" msgpack:"score"`
	Stunned bool    `json:"stunned,omitempty" msgpack:"stunned,omitempty"`
}

// Item is a fruit, power-up or bomb
type Item struct {
	ID   uint64  `json:"id" msgpack:"id"`
	Type string  `json:"type,omitempty" msgpack:"type,omitempty"`
	X    float64 `json:"x" msgpack:"x"`
	Z    float64 `json:"z" msgpack:"z"`
}

// Capture copies the world into a snapshot; call it on the loop goroutine
func Capture(w *engine.World, state string, paused bool) Snapshot {
	s := Snapshot{
		State:     state,
		Paused:    paused,
		TimeLeft:  math.Round(max(w.TimeLeft, 0)*10) / 10,
		Chaos:     w.ActiveChaos,
		MapSize:   w.Settings.MapSize,
		Coins:     w.Profile.Coins,
		Collected: w.FruitsCollected,
		Bots:      make([]Character, 0, len(w.Bots)),
		Fruits:    make([]Item, 0, len(w.Collectibles)),
		Powerups:  make([]Item, 0, len(w.Powerups)),
		Bombs:     make([]Item, 0, len(w.Bombs)),
	}
	if w.RoundID != uuid.Nil {
		s.Round = w.RoundID.String()
	}

	if w.Player != nil {
		p := captureCharacter(w.Player)
		s.Player = &p
	}
	for _, b := range w.Bots {
		s.Bots = append(s.Bots, captureCharacter(b))
	}
	for _, c := range w.Collectibles {
		s.Fruits = append(s.Fruits, Item{ID: uint64(c.ID), Type: string(c.Type), X: c.Position.X, Z: c.Position.Z})
	}
	for _, p := range w.Powerups {
		s.Powerups = append(s.Powerups, Item{ID: uint64(p.ID), Type: string(p.Type), X: p.Position.X, Z: p.Position.Z})
	}
	for _, b := range w.Bombs {
		s.Bombs = append(s.Bombs, Item{ID: uint64(b.ID), X: b.Position.X, Z: b.Position.Z})
	}
	return s
}

func captureCharacter(c *entity.Character) Character {
	return Character{
		ID:      uint64(c.ID),
		Variant: c.Variant,
		Hat:     c.Hat,
		X:       c.Position.X,
		Z:       c.Position.Z,
		Rot:     c.Rotation,
		Scale:   c.Scale,
		Stamina: c.Stamina,
		Score:   c.Score,
		Stunned: c.Stunned,
	}
}
