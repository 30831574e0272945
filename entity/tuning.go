package entity

import (
	"github.com/lixenwraith/munchies/constants"
)

// Tuning holds per-world character parameters, shared by pointer across characters
type Tuning struct {
	PlayerSpeed     float64
	DashSpeed       float64
	DashCost        float64
	MaxStamina      float64
	StaminaRegen    float64
	PowerupDuration float64
	GoldenBonus     int
}

// DefaultTuning returns the stock character parameters
func DefaultTuning() *Tuning {
	return &Tuning{
		PlayerSpeed:     constants.PlayerSpeed,
		DashSpeed:       constants.DashSpeed,
		DashCost:        constants.DashCost,
		MaxStamina:      constants.MaxStamina,
		StaminaRegen:    constants.StaminaRegen,
		PowerupDuration: constants.PowerupDuration,
		GoldenBonus:     constants.GoldenBonus,
	}
}
