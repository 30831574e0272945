package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/session"
	"github.com/lixenwraith/munchies/vmath"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMotion
	BehaviorDash
	BehaviorCommand
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Dir      vmath.Vec3F
	Command  session.Command
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (arrows, enter, escape, ctrl)
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

var (
	dirForward = vmath.Vec3F{Z: -1}
	dirBack    = vmath.Vec3F{Z: 1}
	dirLeft    = vmath.Vec3F{X: -1}
	dirRight   = vmath.Vec3F{X: 1}
)

func motion(dir vmath.Vec3F) KeyEntry {
	return KeyEntry{Behavior: BehaviorMotion, Dir: dir}
}

func command(kind session.CommandKind) KeyEntry {
	return KeyEntry{Behavior: BehaviorCommand, Command: session.Command{Kind: kind}}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:      motion(dirForward),
			tcell.KeyDown:    motion(dirBack),
			tcell.KeyLeft:    motion(dirLeft),
			tcell.KeyRight:   motion(dirRight),
			tcell.KeyEnter:   command(session.CmdStart),
			tcell.KeyEscape:  command(session.CmdCloseEditor),
			tcell.KeyCtrlC:   command(session.CmdQuit),
			tcell.KeyCtrlS:   command(session.CmdSaveLevel),
			tcell.KeyCtrlL:   command(session.CmdLoadLevel),
			tcell.KeyTab:     {Behavior: BehaviorCommand, Command: session.Command{Kind: session.CmdCycleTool, Step: 1}},
			tcell.KeyBacktab: {Behavior: BehaviorCommand, Command: session.Command{Kind: session.CmdCycleTool, Step: -1}},
		},
		Runes: map[rune]KeyEntry{
			'w': motion(dirForward),
			's': motion(dirBack),
			'a': motion(dirLeft),
			'd': motion(dirRight),
			' ': {Behavior: BehaviorDash},
			'p': command(session.CmdTogglePause),
			'r': command(session.CmdRestart),
			'm': command(session.CmdMenu),
			'x': command(session.CmdEnd),
			'e': command(session.CmdOpenEditor),
			'v': command(session.CmdToggleMute),
			'q': command(session.CmdQuit),
			',': {Behavior: BehaviorCommand, Command: session.Command{Kind: session.CmdCycleCharacter, Step: -1}},
			'.': {Behavior: BehaviorCommand, Command: session.Command{Kind: session.CmdCycleCharacter, Step: 1}},
		},
	}

	// Digits buy hats in catalog order, their shifted symbols equip
	buy := []rune{'1', '2', '3', '4', '5'}
	equip := []rune{'!', '@', '#', '$', '%'}
	for i, hat := range constants.Hats {
		if i >= len(buy) {
			break
		}
		kt.Runes[buy[i]] = KeyEntry{Behavior: BehaviorCommand, Command: session.Command{Kind: session.CmdBuyHat, Arg: hat.ID}}
		kt.Runes[equip[i]] = KeyEntry{Behavior: BehaviorCommand, Command: session.Command{Kind: session.CmdEquipHat, Arg: hat.ID}}
	}
	return kt
}

// Lookup resolves a key event, runes case-insensitive for letters
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
