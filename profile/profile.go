package profile

import (
	"slices"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/entity"
)

// Profile is the persistent player record
// JSON keys match the browser save format so saves can be moved between clients
type Profile struct {
	SelectedCharacter string        `json:"selectedCharacter"`
	Coins             int           `json:"coins"`
	Score             int           `json:"score"`
	UnlockedHats      []string      `json:"unlockedHats"`
	EquippedHat       string        `json:"equippedHat,omitempty"`
	CustomLevels      []CustomLevel `json:"customLevels"`
}

// CustomLevel is an editor-authored obstacle layout
type CustomLevel struct {
	Objects []entity.Obstacle `json:"objects"`
}

// Default returns a fresh profile
func Default() Profile {
	return Profile{
		SelectedCharacter: constants.DefaultCharacter,
		UnlockedHats:      []string{},
		CustomLevels:      []CustomLevel{},
	}
}

// HasHat reports whether the hat is unlocked
func (p *Profile) HasHat(id string) bool {
	return slices.Contains(p.UnlockedHats, id)
}

// RecordRound credits coins for a finished round and keeps the best score
// Coins may go negative when the round score was negative
func (p *Profile) RecordRound(score int) int {
	earned := score * constants.CoinsPerPoint
	p.Coins += earned
	if score > p.Score {
		p.Score = score
	}
	return earned
}
