// Package config loads the YAML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"blockcraft/internal/camera"
	"blockcraft/internal/logging"
	"blockcraft/internal/world"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "blockcraft.yaml"

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"targetFPS"`
}

type Camera struct {
	Position  [3]float32 `yaml:"position"`
	Fovy      float32    `yaml:"fovy"`
	PanSpeed  float32    `yaml:"panSpeed"`
	ZoomSpeed float32    `yaml:"zoomSpeed"`
}

type World struct {
	GroundRadius int    `yaml:"groundRadius"`
	GroundBlock  string `yaml:"groundBlock"`
}

type PaletteEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Window  Window         `yaml:"window"`
	Camera  Camera         `yaml:"camera"`
	World   World          `yaml:"world"`
	Palette []PaletteEntry `yaml:"palette"`
	Log     Log            `yaml:"log"`
}

// Default mirrors the built-in scene: 11x11 grass ground, camera at (5, 5, 5).
func Default() Config {
	palette := make([]PaletteEntry, 0, len(world.DefaultPaletteHex))
	for _, e := range world.DefaultPaletteHex {
		palette = append(palette, PaletteEntry{Name: e.Name, Color: e.Hex})
	}
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Minecraft Craft", TargetFPS: 60},
		Camera: Camera{
			Position:  [3]float32{5, 5, 5},
			Fovy:      75,
			PanSpeed:  camera.DefaultPanSpeed,
			ZoomSpeed: camera.DefaultZoomSpeed,
		},
		World:   World{GroundRadius: world.DefaultGroundRadius, GroundBlock: "Grass"},
		Palette: palette,
		Log:     Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("targetFPS must not be negative, got %d", c.Window.TargetFPS)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("camera fovy must be in (0, 180), got %v", c.Camera.Fovy)
	}
	if c.Camera.PanSpeed <= 0 || c.Camera.ZoomSpeed <= 0 {
		return fmt.Errorf("camera panSpeed and zoomSpeed must be positive, got %v and %v", c.Camera.PanSpeed, c.Camera.ZoomSpeed)
	}
	if c.World.GroundRadius < 0 {
		return fmt.Errorf("groundRadius must not be negative, got %d", c.World.GroundRadius)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := c.BuildPalette(); err != nil {
		return err
	}
	return nil
}

// BuildPalette turns the configured entries into a palette.
func (c Config) BuildPalette() (*world.Palette, error) {
	entries := make([]world.Entry, 0, len(c.Palette))
	for _, e := range c.Palette {
		entries = append(entries, world.Entry{Name: e.Name, Hex: e.Color})
	}
	return world.NewPalette(entries)
}
