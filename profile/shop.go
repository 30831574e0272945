package profile

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/lixenwraith/munchies/constants"
)

// FindHat looks up a hat in the catalog
func FindHat(id string) (constants.Hat, bool) {
	for _, h := range constants.Hats {
		if h.ID == id {
			return h, true
		}
	}
	return constants.Hat{}, false
}

// BuyHat unlocks a hat for its price; buying an owned hat is a no-op
func BuyHat(p *Profile, id string) error {
	hat, ok := FindHat(id)
	if !ok {
		return errors.Wrap(ErrUnknownHat, id)
	}
	if p.HasHat(id) {
		return nil
	}
	if p.Coins < hat.Price {
		return errors.Wrapf(ErrInsufficientCoins, "%s costs %d, have %d", id, hat.Price, p.Coins)
	}
	p.Coins -= hat.Price
	p.UnlockedHats = append(p.UnlockedHats, id)
	return nil
}

// EquipHat sets the worn hat; it must be unlocked
func EquipHat(p *Profile, id string) error {
	if _, ok := FindHat(id); !ok {
		return errors.Wrap(ErrUnknownHat, id)
	}
	if !p.HasHat(id) {
		return errors.Wrap(ErrHatLocked, id)
	}
	p.EquippedHat = id
	return nil
}

// SelectCharacter sets the player's roster variant
func SelectCharacter(p *Profile, variant string) error {
	if !slices.Contains(constants.Roster, variant) {
		return errors.Wrap(ErrUnknownCharacter, variant)
	}
	p.SelectedCharacter = variant
	return nil
}
