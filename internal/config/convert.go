package config

import (
	"path/filepath"

	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/internal/engine/camera"
	"github.com/Faultbox/nightreef/internal/engine/motion"
	"github.com/Faultbox/nightreef/internal/logger"
)

// Projection returns the perspective settings.
func (c CameraConfig) Projection() camera.Projection {
	return camera.Projection{FovDeg: c.FOV, Near: c.Near, Far: c.Far}
}

// Controller returns a camera controller tuned by the config.
func (c CameraConfig) Controller() *camera.Controller {
	ctl := camera.NewController()
	ctl.Fly.RotSpeed = c.FlyRotSpeed
	ctl.Fly.MoveSpeed = c.FlyMoveSpeed
	ctl.Fly.PitchLimit = c.FlyPitchLimit

	ctl.Orbit.RotSpeed = c.OrbitRotSpeed
	ctl.Orbit.Radius = c.OrbitRadius
	ctl.Orbit.Height = c.OrbitHeight
	ctl.Orbit.SmoothingRate = c.OrbitSmoothing
	ctl.Orbit.MinPitch = c.OrbitMinPitch
	ctl.Orbit.MaxPitch = c.OrbitMaxPitch
	return ctl
}

func (m MotionConfig) Path() motion.Path {
	return motion.Path{Speed: m.PathSpeed, Length: m.PathLength}
}

func (m MotionConfig) Jump() motion.Jump {
	j := motion.DefaultJump()
	j.Amplitude = m.JumpAmplitude
	j.Frequency = m.JumpFrequency
	j.TiltDeg = m.JumpTiltDeg
	return j
}

func (m MotionConfig) Swim() motion.Swim {
	return motion.Swim{
		Amplitude:  m.SwimAmplitude,
		WaveNumber: m.SwimWaveNumber,
		Speed:      m.SwimSpeed,
		Twist:      m.SwimTwist,
	}
}

func (m MotionConfig) Rock() motion.Rock {
	return motion.Rock{
		RollDeg:    m.RockRollDeg,
		RollHz:     m.RockRollHz,
		PitchDeg:   m.RockPitchDeg,
		PitchHz:    m.RockPitchHz,
		PitchPhase: m.RockPitchPhase,
	}
}

// Trim returns the hammerhead trim, symmetric about zero.
func (m MotionConfig) Trim() *motion.Trim {
	return motion.NewTrim(m.TrimStep, -m.TrimLimit, m.TrimLimit, m.TrimSeconds)
}

// Mesh returns the configured mesh file for an actor kind.
func (a AssetsConfig) Mesh(k actor.Kind) string {
	switch k {
	case actor.ReefShark:
		return a.ReefShark
	case actor.Hammerhead:
		return a.Hammerhead
	case actor.WhiteTip:
		return a.WhiteTip
	case actor.Boat:
		return a.Boat
	}
	return ""
}

// SkyboxFaces returns the six cube faces in +X, -X, +Y, -Y, +Z, -Z order.
// The second result is false when no skybox is configured.
func (a AssetsConfig) SkyboxFaces() ([6]string, bool) {
	var faces [6]string
	if len(a.Skybox) != len(faces) {
		return faces, false
	}
	copy(faces[:], a.Skybox)
	return faces, true
}

// LoggerOptions returns the logger setup. A relative log file lands in the
// config directory.
func (l LoggingConfig) LoggerOptions() logger.Options {
	opts := logger.Options{Level: l.Level, Console: true}
	if l.LogFile == "" {
		return opts
	}
	path := l.LogFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(ConfigDir(), path)
	}
	opts.File = logger.FileConfig{
		Path:       path,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
	return opts
}
