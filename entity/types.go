package entity

import (
	"github.com/lixenwraith/munchies/vmath"
)

// ID identifies a live entity within a world, never reused inside one process
type ID uint64

// Kind tags the closed set of entity variants
type Kind uint8

const (
	KindCharacter Kind = iota + 1
	KindCollectible
	KindPowerup
	KindBomb
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindCollectible:
		return "collectible"
	case KindPowerup:
		return "powerup"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Ref is the capability shared by every entity variant
type Ref interface {
	EntityID() ID
	Kind() Kind
	Pos() vmath.Vec3F
	Transform() Transform
}

// Transform is the presentation state pushed to the renderer after an update
type Transform struct {
	Position vmath.Vec3F
	Rotation float64
	Scale    float64
}

// FruitType is the collectible variety, cosmetic only
type FruitType string

const (
	FruitApple  FruitType = "apple"
	FruitBanana FruitType = "banana"
	FruitMelon  FruitType = "melon"
	FruitCarrot FruitType = "carrot"
	FruitCorn   FruitType = "corn"
)

// FruitTypes is the closed set spawned uniformly
var FruitTypes = []FruitType{FruitApple, FruitBanana, FruitMelon, FruitCarrot, FruitCorn}

// PowerupType selects the effect applied on pickup
type PowerupType string

const (
	PowerupSpeed    PowerupType = "speed"
	PowerupStrength PowerupType = "strength"
	PowerupStamina  PowerupType = "stamina"
	PowerupGolden   PowerupType = "golden"
)

// PowerupTypes is the closed set spawned uniformly
var PowerupTypes = []PowerupType{PowerupSpeed, PowerupStrength, PowerupStamina, PowerupGolden}
