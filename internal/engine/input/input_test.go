package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHeldKeys(t *testing.T) {
	in := New()
	in.Handle(Event{Type: EventKeyDown, Key: sdl.SCANCODE_LEFT})
	in.Handle(Event{Type: EventKeyDown, Key: sdl.SCANCODE_Z})

	cam := in.Camera()
	assert.True(t, cam.Left)
	assert.True(t, cam.Forward)
	assert.False(t, cam.Right)
	assert.False(t, cam.Back)

	in.Reset()
	assert.True(t, in.IsKeyHeld(sdl.SCANCODE_LEFT), "held state survives Reset")
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_LEFT))

	in.Handle(Event{Type: EventKeyUp, Key: sdl.SCANCODE_LEFT})
	assert.False(t, in.Camera().Left)
	assert.True(t, in.Camera().Forward)
}

func TestIsKeyPressedIgnoresRepeat(t *testing.T) {
	in := New()
	in.Handle(Event{Type: EventKeyDown, Key: sdl.SCANCODE_F, Repeat: true})
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_F))
	assert.True(t, in.IsKeyHeld(sdl.SCANCODE_F))

	in.Handle(Event{Type: EventKeyDown, Key: sdl.SCANCODE_F})
	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_F))
}

func TestResize(t *testing.T) {
	in := New()
	_, _, ok := in.Resize()
	assert.False(t, ok)

	in.Handle(Event{Type: EventWindowResize, Width: 800, Height: 600})
	in.Handle(Event{Type: EventWindowResize, Width: 1024, Height: 768})
	w, h, ok := in.Resize()
	assert.True(t, ok)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}
