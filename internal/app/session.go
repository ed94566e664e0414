package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/camera"
	"github.com/Faultbox/nightreef/internal/engine/debug"
	"github.com/Faultbox/nightreef/internal/engine/scene"
	"github.com/Faultbox/nightreef/internal/logger"
)

// Session advances and draws the scene one tick at a time. It knows
// nothing about the window, so it runs against any gfx.Device.
type Session struct {
	State *scene.RenderState
	Scene *scene.Scene

	images  scene.ImageSource
	changes <-chan string
	shots   *debug.Screenshots
	log     *zap.Logger

	wantShot bool
}

// NewSession ties a render state to a scene. shots may be nil to disable
// screenshots.
func NewSession(st *scene.RenderState, sc *scene.Scene, images scene.ImageSource, shots *debug.Screenshots) *Session {
	return &Session{
		State:  st,
		Scene:  sc,
		images: images,
		shots:  shots,
		log:    logger.Named("app"),
	}
}

// Watch makes the tick reload textures named on changes.
func (s *Session) Watch(changes <-chan string) {
	s.changes = changes
}

// Apply runs a key command. It returns true when the app should quit.
func (s *Session) Apply(cmd Command) bool {
	cam := s.State.Camera
	switch cmd {
	case CommandQuit:
		return true
	case CommandToggleCamera:
		mode := cam.Toggle()
		s.log.Debug("camera mode", zap.Stringer("mode", mode), zap.Stringer("target", cam.Target))
	case CommandFollowHammerhead, CommandFollowWhiteTip, CommandFollowReefShark, CommandFollowBoat:
		k, _ := cmd.followTarget()
		if cam.Select(k) {
			s.log.Debug("orbit target", zap.Stringer("target", k))
		}
	case CommandTrimDown:
		s.nudgeTrim(-1)
	case CommandTrimUp:
		s.nudgeTrim(1)
	case CommandScreenshot:
		s.wantShot = s.shots != nil
	}
	return false
}

func (s *Session) nudgeTrim(dir float32) {
	if s.State.Trim == nil {
		return
	}
	s.State.Trim.Nudge(dir)
	s.log.Debug("hammerhead trim", zap.Float32("target", s.State.Trim.Target))
}

// Tick runs one frame: viewport, camera, motion, texture uploads, asset
// reloads and the passes. A panic inside the frame is logged and returned
// as an error so the loop can keep going.
func (s *Session) Tick(dt float32, in camera.Input, width, height int32) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame panicked: %v", r)
			s.log.Error("frame failed", zap.Error(err), zap.Stack("stack"))
		}
	}()

	if width > 0 && height > 0 && (width != s.State.Width || height != s.State.Height) {
		s.State.Resize(width, height)
		s.Scene.Resize(width, height)
		s.log.Debug("viewport resized", zap.Int32("width", width), zap.Int32("height", height))
	}

	s.State.Camera.Update(in, dt*1000)
	s.State.Advance(dt)
	s.State.Frame(dt)

	s.Scene.PollTextures()
	s.drainChanges()

	s.Scene.Render(s.State)

	if s.wantShot {
		s.wantShot = false
		s.screenshot()
	}
	return nil
}

func (s *Session) drainChanges() {
	if s.changes == nil {
		return
	}
	for {
		select {
		case name := <-s.changes:
			if s.Scene.Reload(s.images, name) {
				s.log.Info("reloading texture", zap.String("name", name))
			}
		default:
			return
		}
	}
}

func (s *Session) screenshot() {
	pixels, w, h := s.Scene.CaptureImage()
	name, err := s.shots.Save(pixels, int(w), int(h))
	if err != nil {
		s.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	s.log.Info("screenshot saved", zap.String("file", name))
}
