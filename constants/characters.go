package constants

// Roster lists the selectable character variants in menu order
var Roster = []string{
	"panda", "bear", "bunny", "cat", "chicken",
	"cow", "crocodile", "dog", "elephant", "fox",
	"frog", "mole", "monkey", "mouse", "parrot",
	"penguin", "piglet", "turtle", "unicorn", "axolotl",
}

// DefaultCharacter is selected for a fresh profile
const DefaultCharacter = "panda"

// Hat is a cosmetic sold in the shop
type Hat struct {
	ID    string
	Name  string
	Price int
}

// Hats is the shop catalog
var Hats = []Hat{
	{ID: "tophat", Name: "Top Hat", Price: 100},
	{ID: "cap", Name: "Baseball Cap", Price: 150},
	{ID: "crown", Name: "Crown", Price: 300},
	{ID: "headphones", Name: "Headphones", Price: 200},
	{ID: "halo", Name: "Halo", Price: 500},
}
