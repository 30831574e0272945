package profile

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/munchies/constants"
)

var (
	ErrInsufficientCoins = errors.New(constants.MsgNotEnoughCoins)
	ErrUnknownHat        = errors.New("unknown hat")
	ErrHatLocked         = errors.New("hat not unlocked")
	ErrUnknownCharacter  = errors.New("unknown character")
)
