package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/entity"
)

// RGB color definitions for the arena and HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)   // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(34, 60, 34)   // Dark grass
	RgbBorder     = tcell.NewRGBColor(120, 90, 60)  // Fence brown
	RgbCrate      = tcell.NewRGBColor(160, 110, 60) // Wood
	RgbTree       = tcell.NewRGBColor(40, 160, 60)  // Leaf green
	RgbHole       = tcell.NewRGBColor(10, 10, 10)   // Pit
	RgbBomb       = tcell.NewRGBColor(220, 40, 40)  // Warning red
	RgbExplosion  = tcell.NewRGBColor(255, 140, 0)  // Blast orange

	RgbStatusText = tcell.NewRGBColor(255, 255, 255)
	RgbTimer      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbCoins      = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbStamina    = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStaminaBg  = tcell.NewRGBColor(60, 60, 60)
	RgbAlertBg    = tcell.NewRGBColor(128, 0, 128) // Dark purple
	RgbPanelBg    = tcell.NewRGBColor(20, 20, 30)
	RgbNotice     = tcell.NewRGBColor(255, 80, 80)
)

var fruitColors = map[entity.FruitType]tcell.Color{
	entity.FruitApple:  tcell.NewRGBColor(230, 50, 50),
	entity.FruitBanana: tcell.NewRGBColor(250, 220, 60),
	entity.FruitMelon:  tcell.NewRGBColor(90, 200, 90),
	entity.FruitCarrot: tcell.NewRGBColor(250, 140, 30),
	entity.FruitCorn:   tcell.NewRGBColor(245, 205, 90),
}

var powerupColors = map[entity.PowerupType]tcell.Color{
	entity.PowerupSpeed:    tcell.NewRGBColor(0, 200, 255),
	entity.PowerupStrength: tcell.NewRGBColor(255, 60, 120),
	entity.PowerupStamina:  tcell.NewRGBColor(120, 255, 120),
	entity.PowerupGolden:   tcell.NewRGBColor(255, 215, 0),
}

// toTcell converts a colorful color into a terminal color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// VariantColor spreads roster variants evenly around the hue wheel
// Unknown variants get a neutral grey
func VariantColor(variant string) tcell.Color {
	i := slices.Index(constants.Roster, variant)
	if i < 0 {
		return toTcell(colorful.Hsv(0, 0, 0.7))
	}
	hue := float64(i) / float64(len(constants.Roster)) * 360
	return toTcell(colorful.Hsv(hue, 0.65, 0.95))
}

// explosionColor fades the blast toward the ground colour as opacity drops
func explosionColor(opacity float64) tcell.Color {
	t := min(max(opacity/constants.ExplosionOpacity, 0), 1)
	return toTcell(fromTcell(RgbGround).BlendLab(fromTcell(RgbExplosion), t))
}

func fromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
