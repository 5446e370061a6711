// Package config loads the sandbox settings file.
package config

import (
	"log/slog"
	"os"

	"github.com/hubastard/grovegui/engine/colors"
	"github.com/hubastard/grovegui/engine/core"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFilename = "sandbox.yml"

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color,flow"`
}

type GUI struct {
	// Scissor clips each mesh to its clip rectangle.
	Scissor *bool `yaml:"scissor"` // pointer to distinguish unset vs false
	// Image, when set, is loaded and registered as a user texture.
	Image string `yaml:"image"`
}

type Config struct {
	Window Window `yaml:"window"`
	GUI    GUI    `yaml:"gui"`
}

func Default() Config {
	scissor := true
	return Config{
		Window: Window{
			Title:      "grovegui sandbox",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: colors.DarkGray,
		},
		GUI: GUI{Scissor: &scissor},
	}
}

// ScissorEnabled reports the gui.scissor setting, true when unset.
func (c Config) ScissorEnabled() bool {
	return c.GUI.Scissor == nil || *c.GUI.Scissor
}

// Engine converts the window section into the engine's run config.
func (c Config) Engine() core.Config {
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		ClearColor: c.Window.ClearColor,
	}
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Wrapf(ErrInvalid, "window size %dx%d", c.Window.Width, c.Window.Height)
	}
	for i, v := range c.Window.ClearColor {
		if v < 0 || v > 1 {
			return errors.Wrapf(ErrInvalid, "clear_color[%d] = %v out of [0,1]", i, v)
		}
	}
	return nil
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "read config %q", path)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	slog.Info("loaded config", "path", path)
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
