// Package app wires the window, the GL device and the scene into the main
// loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/assets"
	"github.com/Faultbox/nightreef/internal/config"
	"github.com/Faultbox/nightreef/internal/engine/debug"
	"github.com/Faultbox/nightreef/internal/engine/input"
	"github.com/Faultbox/nightreef/internal/engine/renderer"
	"github.com/Faultbox/nightreef/internal/engine/scene"
	"github.com/Faultbox/nightreef/internal/engine/window"
	"github.com/Faultbox/nightreef/internal/logger"
)

const title = "Night Reef"

// App is the running program.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	watcher  *assets.Watcher
	session  *Session
}

// NewRenderState builds the frame state from the camera and motion
// settings.
func NewRenderState(cfg *config.Config, width, height int32) *scene.RenderState {
	st := scene.NewRenderState(width, height)
	st.Camera = cfg.Camera.Controller()
	st.Projection = cfg.Camera.Projection()
	st.Path = cfg.Motion.Path()
	st.Jump = cfg.Motion.Jump()
	st.Swim = cfg.Motion.Swim()
	st.Rock = cfg.Motion.Rock()
	st.Trim = cfg.Motion.Trim()
	return st
}

// New opens the window, creates the scene and loads every asset.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("assets", cfg.Assets.Dir),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist
	a.renderer, err = renderer.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.assets = assets.NewManager(cfg.Assets.Dir)

	width, height := a.window.DrawableSize()
	sc, err := scene.New(a.renderer, scene.Config{Width: width, Height: height})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	var shots *debug.Screenshots
	if cfg.Debug.ScreenshotDir != "" {
		shots = debug.NewScreenshots(cfg.Debug.ScreenshotDir, "nightreef")
	}
	a.session = NewSession(NewRenderState(cfg, width, height), sc, a.assets, shots)

	textures, err := loadAssets(a.assets, sc, cfg.Assets, a.log)
	if err != nil {
		a.log.Error("some assets failed to load", zap.Error(err))
	}

	if cfg.Assets.Watch {
		if a.watcher, err = a.assets.Watch(); err != nil {
			a.log.Warn("asset watching disabled", zap.Error(err))
		} else {
			watchTextures(a.watcher, textures, a.log)
			a.session.Watch(a.watcher.Changes())
		}
	}

	a.log.Info("initialized")
	return a, nil
}

// Run starts the main loop and returns when the window closes or Esc is
// pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			if event.Type != input.EventKeyDown || event.Repeat {
				continue
			}
			if a.session.Apply(CommandForKey(event.Key)) {
				a.running = false
			}
		}
		if !a.running {
			break
		}

		width, height := a.window.DrawableSize()
		if err := a.session.Tick(float32(dt), a.input.Camera(), width, height); err != nil {
			a.log.Debug("frame skipped", zap.Error(err))
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.cfg.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s (%d fps)", title, frameCount))
			}
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", time.Duration(dt*float64(time.Second))))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases everything New created.
func (a *App) Close() {
	a.log.Info("closing")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing watcher", zap.Error(err))
		}
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.renderer != nil {
		a.renderer.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
