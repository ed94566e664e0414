package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/nightreef/internal/engine/actor"
)

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  sdl.Scancode
		want Command
	}{
		{sdl.SCANCODE_ESCAPE, CommandQuit},
		{sdl.SCANCODE_F, CommandToggleCamera},
		{sdl.SCANCODE_A, CommandFollowHammerhead},
		{sdl.SCANCODE_S, CommandFollowWhiteTip},
		{sdl.SCANCODE_D, CommandFollowReefShark},
		{sdl.SCANCODE_W, CommandFollowBoat},
		{sdl.SCANCODE_LEFTBRACKET, CommandTrimDown},
		{sdl.SCANCODE_RIGHTBRACKET, CommandTrimUp},
		{sdl.SCANCODE_F12, CommandScreenshot},
		{sdl.SCANCODE_LEFT, CommandNone},
		{sdl.SCANCODE_Z, CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CommandForKey(tt.key))
		})
	}
}

func TestCommandFollowTarget(t *testing.T) {
	k, ok := CommandFollowReefShark.followTarget()
	assert.True(t, ok)
	assert.Equal(t, actor.ReefShark, k)

	_, ok = CommandTrimUp.followTarget()
	assert.False(t, ok)

	assert.Equal(t, "unknown", Command(99).String())
}
