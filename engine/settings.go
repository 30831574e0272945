package engine

import (
	"github.com/lixenwraith/munchies/constants"
)

// Settings are the round-level tunables, loaded from config
type Settings struct {
	RoundTime     float64 // seconds
	ChaosInterval float64 // seconds
	MapSize       float64
	BotCount      int
	FruitCount    int
	BombCount     int
	PowerupCount  int
}

// DefaultSettings returns the stock round parameters
func DefaultSettings() Settings {
	return Settings{
		RoundTime:     constants.RoundTime,
		ChaosInterval: constants.ChaosInterval,
		MapSize:       constants.MapSize,
		BotCount:      constants.BotCount,
		FruitCount:    constants.FruitCount,
		BombCount:     constants.BombCount,
		PowerupCount:  constants.PowerupCount,
	}
}
