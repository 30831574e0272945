package constants

import "time"

// Arena View
const (
	// CellsPerUnitX and CellsPerUnitZ scale arena units onto terminal cells
	// Terminal cells are roughly twice as tall as wide
	CellsPerUnitX = 1.0
	CellsPerUnitZ = 0.5

	// HUDRows is the number of rows reserved above the arena
	HUDRows = 2

	// StaminaBarWidth is the cell width of the HUD stamina gauge
	StaminaBarWidth = 20
)

// Virtual Joystick
const (
	// JoystickMaxDistance is the stick travel in pixels; input is divided by it
	JoystickMaxDistance = 45.0
)

// Input
const (
	// KeyHoldTimeout releases a held key when the terminal stops repeating it
	KeyHoldTimeout = 150 * time.Millisecond
)

// Level Editor
const (
	EraseRadius = 3.0
	HoleRadius  = 2.0
)

// Messages
const (
	MsgNotEnoughCoins = "Not enough coins!"
	MsgNoSavedLevels  = "No saved levels!"
	MsgLevelSaved     = "Level saved!"
	MsgLevelLoaded    = "Level loaded!"
)
