package constants

import (
	"time"
)

// Chaos event names
const (
	ChaosTinyTitans    = "Tiny Titans"
	ChaosGiantBrawl    = "Giant Brawl"
	ChaosSpeedDemon    = "Speed Demon"
	ChaosSlipperyFloor = "Slippery Floor"
	ChaosBombRain      = "Bomb Rain"
)

// ChaosEvent is a named global rule change announced on the HUD
type ChaosEvent struct {
	Name        string
	Description string
}

// ChaosEvents is the closed set the chaos director draws from, uniformly
var ChaosEvents = []ChaosEvent{
	{Name: ChaosTinyTitans, Description: "Everyone shrinks!"},
	{Name: ChaosGiantBrawl, Description: "Everyone grows huge!"},
	{Name: ChaosSpeedDemon, Description: "Gotta go fast!"},
	{Name: ChaosSlipperyFloor, Description: "Ice skating time!"},
	{Name: ChaosBombRain, Description: "INCOMING!"},
}

// Chaos tuning
const (
	TinyScale        = 0.5
	GiantScale       = 2.0
	SpeedDemonFactor = 2.0

	BombRainCount    = 15
	BombRainSpacing  = 200 * time.Millisecond
	BombRainDuration = 5 * time.Second

	ChaosAlertDuration = 2 * time.Second
)
