package session

import (
	"github.com/lixenwraith/munchies/level"
	"github.com/lixenwraith/munchies/vmath"
)

// CommandKind enumerates requests posted to the session from outside the loop
type CommandKind uint8

const (
	CmdStart CommandKind = iota
	CmdRestart
	CmdEnd
	CmdMenu
	CmdTogglePause
	CmdOpenEditor
	CmdCloseEditor
	CmdSelectTool
	CmdCycleTool
	CmdEditorClick
	CmdSaveLevel
	CmdLoadLevel
	CmdBuyHat
	CmdEquipHat
	CmdSelectCharacter
	CmdCycleCharacter
	CmdToggleMute
	CmdQuit
)

var commandNames = [...]string{
	CmdStart:           "start",
	CmdRestart:         "restart",
	CmdEnd:             "end",
	CmdMenu:            "menu",
	CmdTogglePause:     "pause",
	CmdOpenEditor:      "open_editor",
	CmdCloseEditor:     "close_editor",
	CmdSelectTool:      "select_tool",
	CmdCycleTool:       "cycle_tool",
	CmdEditorClick:     "editor_click",
	CmdSaveLevel:       "save_level",
	CmdLoadLevel:       "load_level",
	CmdBuyHat:          "buy_hat",
	CmdEquipHat:        "equip_hat",
	CmdSelectCharacter: "select_character",
	CmdCycleCharacter:  "cycle_character",
	CmdToggleMute:      "mute",
	CmdQuit:            "quit",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "unknown"
}

// ParseCommandKind resolves a wire name back to its kind
func ParseCommandKind(name string) (CommandKind, bool) {
	for i, n := range commandNames {
		if n == name {
			return CommandKind(i), true
		}
	}
	return 0, false
}

// Command is one queued request
// Arg carries a hat id, character variant or tool name; Step the cycle direction
type Command struct {
	Kind  CommandKind
	Arg   string
	Step  int
	Point vmath.Vec3F
}

// SelectTool builds a tool selection command
func SelectTool(t level.Tool) Command {
	return Command{Kind: CmdSelectTool, Arg: string(t)}
}
