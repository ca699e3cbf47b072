package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Interaction tunes pointer behavior on the timeline. The drag-discard
// threshold and hit slops are deliberate defaults rather than constants; a
// config file can override any of them.
type Interaction struct {
	MinRangeMs          int64   `toml:"min_range_ms"`
	HandleSlopPx        float64 `toml:"handle_slop_px"`
	PlayheadSlopPx      float64 `toml:"playhead_slop_px"`
	SnapTolerancePx     float64 `toml:"snap_tolerance_px"`
	WideSnapTolerancePx float64 `toml:"wide_snap_tolerance_px"`
	FineDragScale       float64 `toml:"fine_drag_scale"`
	WheelZoomFactor     float64 `toml:"wheel_zoom_factor"`
}

// UI tunes the render loop.
type UI struct {
	FPS int `toml:"fps"`
}

// Config is the full cutline configuration.
type Config struct {
	Interaction Interaction `toml:"interaction"`
	UI          UI          `toml:"ui"`
}

const defaultConfigPath = "~/.config/cutline/config.toml"

// Default returns the stock configuration. Slops and tolerances are in
// terminal cells; one cell is one pixel unit to the timeline core.
func Default() Config {
	return Config{
		Interaction: Interaction{
			MinRangeMs:          200,
			HandleSlopPx:        1,
			PlayheadSlopPx:      1,
			SnapTolerancePx:     1,
			WideSnapTolerancePx: 2,
			FineDragScale:       0.1,
			WheelZoomFactor:     1.1,
		},
		UI: UI{FPS: 30},
	}
}

// Load locates and parses the config, falling back to defaults when the file
// is missing. Non-positive values in the file fall back per field.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	def := Default()
	if cfg.Interaction.MinRangeMs <= 0 {
		cfg.Interaction.MinRangeMs = def.Interaction.MinRangeMs
	}
	if cfg.Interaction.HandleSlopPx <= 0 {
		cfg.Interaction.HandleSlopPx = def.Interaction.HandleSlopPx
	}
	if cfg.Interaction.PlayheadSlopPx <= 0 {
		cfg.Interaction.PlayheadSlopPx = def.Interaction.PlayheadSlopPx
	}
	if cfg.Interaction.SnapTolerancePx <= 0 {
		cfg.Interaction.SnapTolerancePx = def.Interaction.SnapTolerancePx
	}
	if cfg.Interaction.WideSnapTolerancePx <= 0 {
		cfg.Interaction.WideSnapTolerancePx = def.Interaction.WideSnapTolerancePx
	}
	if cfg.Interaction.FineDragScale <= 0 {
		cfg.Interaction.FineDragScale = def.Interaction.FineDragScale
	}
	if cfg.Interaction.WheelZoomFactor <= 1 {
		cfg.Interaction.WheelZoomFactor = def.Interaction.WheelZoomFactor
	}
	if cfg.UI.FPS <= 0 || cfg.UI.FPS > 120 {
		cfg.UI.FPS = def.UI.FPS
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
