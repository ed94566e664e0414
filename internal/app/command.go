package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/nightreef/internal/engine/actor"
)

// Command is a discrete action bound to a key press.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleCamera
	CommandFollowHammerhead
	CommandFollowWhiteTip
	CommandFollowReefShark
	CommandFollowBoat
	CommandTrimDown
	CommandTrimUp
	CommandScreenshot
)

var commandNames = [...]string{
	CommandNone:             "none",
	CommandQuit:             "quit",
	CommandToggleCamera:     "toggle_camera",
	CommandFollowHammerhead: "follow_hammerhead",
	CommandFollowWhiteTip:   "follow_white_tip",
	CommandFollowReefShark:  "follow_reef_shark",
	CommandFollowBoat:       "follow_boat",
	CommandTrimDown:         "trim_down",
	CommandTrimUp:           "trim_up",
	CommandScreenshot:       "screenshot",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// CommandForKey maps a pressed key to its command. Movement keys are read
// from the held state instead and map to CommandNone.
func CommandForKey(key sdl.Scancode) Command {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		return CommandQuit
	case sdl.SCANCODE_F:
		return CommandToggleCamera
	case sdl.SCANCODE_A:
		return CommandFollowHammerhead
	case sdl.SCANCODE_S:
		return CommandFollowWhiteTip
	case sdl.SCANCODE_D:
		return CommandFollowReefShark
	case sdl.SCANCODE_W:
		return CommandFollowBoat
	case sdl.SCANCODE_LEFTBRACKET:
		return CommandTrimDown
	case sdl.SCANCODE_RIGHTBRACKET:
		return CommandTrimUp
	case sdl.SCANCODE_F12:
		return CommandScreenshot
	}
	return CommandNone
}

// followTarget returns the actor a follow command selects.
func (c Command) followTarget() (actor.Kind, bool) {
	switch c {
	case CommandFollowHammerhead:
		return actor.Hammerhead, true
	case CommandFollowWhiteTip:
		return actor.WhiteTip, true
	case CommandFollowReefShark:
		return actor.ReefShark, true
	case CommandFollowBoat:
		return actor.Boat, true
	}
	return 0, false
}
