// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Motion   MotionConfig   `yaml:"motion" toml:"motion"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Debug    DebugConfig    `yaml:"debug" toml:"debug"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
}

// CameraConfig holds projection and camera control settings. Speeds are
// per millisecond of frame time.
type CameraConfig struct {
	FOV  float32 `yaml:"fov" toml:"fov"`
	Near float32 `yaml:"near" toml:"near"`
	Far  float32 `yaml:"far" toml:"far"`

	FlyRotSpeed   float32 `yaml:"fly_rot_speed" toml:"fly_rot_speed"`
	FlyMoveSpeed  float32 `yaml:"fly_move_speed" toml:"fly_move_speed"`
	FlyPitchLimit float32 `yaml:"fly_pitch_limit" toml:"fly_pitch_limit"` // 0 disables

	OrbitRotSpeed  float32 `yaml:"orbit_rot_speed" toml:"orbit_rot_speed"`
	OrbitRadius    float32 `yaml:"orbit_radius" toml:"orbit_radius"`
	OrbitHeight    float32 `yaml:"orbit_height" toml:"orbit_height"`
	OrbitSmoothing float32 `yaml:"orbit_smoothing" toml:"orbit_smoothing"`
	OrbitMinPitch  float32 `yaml:"orbit_min_pitch" toml:"orbit_min_pitch"`
	OrbitMaxPitch  float32 `yaml:"orbit_max_pitch" toml:"orbit_max_pitch"`
}

// MotionConfig holds the procedural animation parameters.
type MotionConfig struct {
	PathSpeed  float32 `yaml:"path_speed" toml:"path_speed"`
	PathLength float32 `yaml:"path_length" toml:"path_length"`

	JumpAmplitude float32 `yaml:"jump_amplitude" toml:"jump_amplitude"`
	JumpFrequency float32 `yaml:"jump_frequency" toml:"jump_frequency"`
	JumpTiltDeg   float32 `yaml:"jump_tilt_deg" toml:"jump_tilt_deg"`

	SwimAmplitude  float32 `yaml:"swim_amplitude" toml:"swim_amplitude"`
	SwimWaveNumber float32 `yaml:"swim_wave_number" toml:"swim_wave_number"`
	SwimSpeed      float32 `yaml:"swim_speed" toml:"swim_speed"`
	SwimTwist      float32 `yaml:"swim_twist" toml:"swim_twist"`

	RockRollDeg    float32 `yaml:"rock_roll_deg" toml:"rock_roll_deg"`
	RockRollHz     float32 `yaml:"rock_roll_hz" toml:"rock_roll_hz"`
	RockPitchDeg   float32 `yaml:"rock_pitch_deg" toml:"rock_pitch_deg"`
	RockPitchHz    float32 `yaml:"rock_pitch_hz" toml:"rock_pitch_hz"`
	RockPitchPhase float32 `yaml:"rock_pitch_phase" toml:"rock_pitch_phase"`

	TrimStep    float32 `yaml:"trim_step" toml:"trim_step"`
	TrimLimit   float32 `yaml:"trim_limit" toml:"trim_limit"`
	TrimSeconds float32 `yaml:"trim_seconds" toml:"trim_seconds"`
}

// AssetsConfig holds resource paths, relative to Dir.
type AssetsConfig struct {
	Dir           string   `yaml:"dir" toml:"dir"`
	ReefShark     string   `yaml:"reef_shark" toml:"reef_shark"`
	Hammerhead    string   `yaml:"hammerhead" toml:"hammerhead"`
	WhiteTip      string   `yaml:"white_tip" toml:"white_tip"`
	Boat          string   `yaml:"boat" toml:"boat"`
	BoatMaterials string   `yaml:"boat_materials" toml:"boat_materials"`
	WaterNormal   string   `yaml:"water_normal" toml:"water_normal"`
	Skybox        []string `yaml:"skybox" toml:"skybox"` // +X, -X, +Y, -Y, +Z, -Z
	Watch         bool     `yaml:"watch" toml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	LogFile    string `yaml:"log_file" toml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps" toml:"show_fps"`
}

// Default returns a Config with the stock scene settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:            45,
			Near:           0.01,
			Far:            5000,
			FlyRotSpeed:    0.1,
			FlyMoveSpeed:   0.01,
			FlyPitchLimit:  89,
			OrbitRotSpeed:  0.02,
			OrbitRadius:    4.5,
			OrbitHeight:    1.3,
			OrbitSmoothing: 2.0,
			OrbitMinPitch:  -60,
			OrbitMaxPitch:  60,
		},
		Motion: MotionConfig{
			PathSpeed:      2.0,
			PathLength:     60,
			JumpAmplitude:  0.25,
			JumpFrequency:  0.4,
			JumpTiltDeg:    15,
			SwimAmplitude:  0.6,
			SwimWaveNumber: 0.2,
			SwimSpeed:      4.0,
			SwimTwist:      0.45,
			RockRollDeg:    3,
			RockRollHz:     0.45,
			RockPitchDeg:   4,
			RockPitchHz:    0.5,
			RockPitchPhase: 1.2,
			TrimStep:       0.05,
			TrimLimit:      1,
			TrimSeconds:    0.25,
		},
		Assets: AssetsConfig{
			Dir:           "resources",
			ReefShark:     "shark.obj",
			Hammerhead:    "hammerhead.obj",
			WhiteTip:      "Whitetipped.obj",
			Boat:          "12219_boat_v2_L2.obj",
			BoatMaterials: "12219_boat_v2_L2.mtl",
			WaterNormal:   "waternormal.jpg",
			Skybox: []string{
				"Left+X.png", "Right-X.png",
				"Up+Y.png", "Down-Y.png",
				"Front+Z.png", "Back-Z.png",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// Validate rejects settings the renderer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov %v out of range (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: near %v / far %v invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.OrbitMinPitch > c.Camera.OrbitMaxPitch {
		errs = append(errs, fmt.Errorf("camera: orbit pitch range [%v, %v] is empty", c.Camera.OrbitMinPitch, c.Camera.OrbitMaxPitch))
	}
	if c.Motion.PathSpeed < 0 || c.Motion.PathLength <= 0 {
		errs = append(errs, fmt.Errorf("motion: path speed %v / length %v invalid", c.Motion.PathSpeed, c.Motion.PathLength))
	}
	if c.Motion.TrimLimit < 0 || c.Motion.TrimStep <= 0 {
		errs = append(errs, fmt.Errorf("motion: trim step %v / limit %v invalid", c.Motion.TrimStep, c.Motion.TrimLimit))
	}
	if n := len(c.Assets.Skybox); n != 0 && n != 6 {
		errs = append(errs, fmt.Errorf("assets: skybox needs 6 faces, got %d", n))
	}
	return errors.Join(errs...)
}
