package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/nightreef/internal/engine/actor"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Test camera defaults
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.OrbitRadius != 4.5 {
		t.Errorf("expected orbit radius 4.5, got %f", cfg.Camera.OrbitRadius)
	}

	// Test motion defaults
	if cfg.Motion.PathLength != 60 {
		t.Errorf("expected path length 60, got %f", cfg.Motion.PathLength)
	}

	// Test asset defaults
	if cfg.Assets.Dir != "resources" {
		t.Errorf("expected assets dir 'resources', got %s", cfg.Assets.Dir)
	}
	if len(cfg.Assets.Skybox) != 6 {
		t.Errorf("expected 6 skybox faces, got %d", len(cfg.Assets.Skybox))
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  fov: 60
  orbit_radius: 8

motion:
  path_speed: 3.5

assets:
  dir: "/opt/reef"
  watch: true

logging:
  level: "debug"
  log_file: "reef.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.OrbitRadius != 8 {
		t.Errorf("expected orbit radius 8, got %f", cfg.Camera.OrbitRadius)
	}
	// Untouched keys keep their defaults
	if cfg.Camera.Near != 0.01 {
		t.Errorf("expected near 0.01, got %f", cfg.Camera.Near)
	}

	if cfg.Motion.PathSpeed != 3.5 {
		t.Errorf("expected path speed 3.5, got %f", cfg.Motion.PathSpeed)
	}

	if cfg.Assets.Dir != "/opt/reef" {
		t.Errorf("expected assets dir /opt/reef, got %s", cfg.Assets.Dir)
	}
	if !cfg.Assets.Watch {
		t.Error("expected watch to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "reef.log" {
		t.Errorf("expected log file 'reef.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[graphics]
width = 800
height = 600

[motion]
trim_step = 0.1
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Motion.TrimStep != 0.1 {
		t.Errorf("expected trim step 0.1, got %f", cfg.Motion.TrimStep)
	}
	if cfg.Assets.WaterNormal != "waternormal.jpg" {
		t.Errorf("expected default water normal, got %s", cfg.Assets.WaterNormal)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "graphics"},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 180 }, "fov"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.001 }, "far"},
		{"empty pitch range", func(c *Config) { c.Camera.OrbitMinPitch = 70 }, "pitch"},
		{"zero path", func(c *Config) { c.Motion.PathLength = 0 }, "path"},
		{"five faces", func(c *Config) { c.Assets.Skybox = c.Assets.Skybox[:5] }, "skybox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	cfg := Default()
	cfg.Assets.Skybox = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("no skybox should be valid, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Isolate from any real user config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// A TOML file is found as well
	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	path = findConfigFile()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected config.toml, got %q", path)
	}

	// YAML wins when both exist
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	path = findConfigFile()
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("expected config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "assets flag",
			setup: func() {
				*flagAssets = "/srv/reef"
			},
			verify: func(cfg *Config) {
				if cfg.Assets.Dir != "/srv/reef" {
					t.Errorf("expected assets dir /srv/reef, got %s", cfg.Assets.Dir)
				}
			},
			teardown: func() {
				*flagAssets = ""
			},
		},
		{
			name: "watch flag",
			setup: func() {
				*flagWatch = true
			},
			verify: func(cfg *Config) {
				if !cfg.Assets.Watch {
					t.Error("expected watch to be enabled")
				}
			},
			teardown: func() {
				*flagWatch = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject fov 0")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Graphics.Width = 1024
			cfg.Motion.SwimTwist = 0.5
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}

			got := Default()
			if err := loadFromFile(got, path); err != nil {
				t.Fatalf("reload: %v", err)
			}
			if got.Graphics.Width != 1024 {
				t.Errorf("expected width 1024, got %d", got.Graphics.Width)
			}
			if got.Motion.SwimTwist != 0.5 {
				t.Errorf("expected swim twist 0.5, got %f", got.Motion.SwimTwist)
			}
		})
	}
}

func TestConverters(t *testing.T) {
	cfg := Default()
	cfg.Camera.OrbitRadius = 9
	cfg.Camera.FlyPitchLimit = 0

	ctl := cfg.Camera.Controller()
	if ctl.Orbit.Radius != 9 {
		t.Errorf("expected orbit radius 9, got %f", ctl.Orbit.Radius)
	}
	if ctl.Fly.PitchLimit != 0 {
		t.Errorf("expected pitch limit 0, got %f", ctl.Fly.PitchLimit)
	}

	proj := cfg.Camera.Projection()
	if proj.FovDeg != 45 || proj.Far != 5000 {
		t.Errorf("unexpected projection %+v", proj)
	}

	trim := cfg.Motion.Trim()
	if trim.Min != -1 || trim.Max != 1 {
		t.Errorf("expected trim range [-1, 1], got [%f, %f]", trim.Min, trim.Max)
	}

	if got := cfg.Assets.Mesh(actor.Hammerhead); got != "hammerhead.obj" {
		t.Errorf("expected hammerhead.obj, got %s", got)
	}
	if _, ok := cfg.Assets.SkyboxFaces(); !ok {
		t.Error("expected default skybox to be complete")
	}

	opts := cfg.Logging.LoggerOptions()
	if opts.File.Path != "" {
		t.Errorf("expected no log file, got %s", opts.File.Path)
	}
	cfg.Logging.LogFile = "/var/log/reef.log"
	opts = cfg.Logging.LoggerOptions()
	if opts.File.Path != "/var/log/reef.log" || opts.File.MaxBackups != 3 {
		t.Errorf("unexpected file config %+v", opts.File)
	}
}
