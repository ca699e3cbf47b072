package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[interaction]
min_range_ms = 500
handle_slop_px = 3.0
wheel_zoom_factor = 1.25

[ui]
fps = 60
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Interaction.MinRangeMs != 500 {
		t.Fatalf("MinRangeMs = %d, want 500", cfg.Interaction.MinRangeMs)
	}
	if cfg.Interaction.HandleSlopPx != 3.0 {
		t.Fatalf("HandleSlopPx = %v, want 3.0", cfg.Interaction.HandleSlopPx)
	}
	if cfg.Interaction.WheelZoomFactor != 1.25 {
		t.Fatalf("WheelZoomFactor = %v, want 1.25", cfg.Interaction.WheelZoomFactor)
	}
	if cfg.UI.FPS != 60 {
		t.Fatalf("FPS = %d, want 60", cfg.UI.FPS)
	}
	// Untouched fields keep their defaults.
	if cfg.Interaction.SnapTolerancePx != Default().Interaction.SnapTolerancePx {
		t.Fatalf("SnapTolerancePx = %v, want default", cfg.Interaction.SnapTolerancePx)
	}
}

func TestLoad_NonPositiveValuesFallBackPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[interaction]
min_range_ms = -10
fine_drag_scale = 0.0
wheel_zoom_factor = 0.9

[ui]
fps = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.Interaction.MinRangeMs != def.Interaction.MinRangeMs {
		t.Fatalf("MinRangeMs = %d, want default %d", cfg.Interaction.MinRangeMs, def.Interaction.MinRangeMs)
	}
	if cfg.Interaction.FineDragScale != def.Interaction.FineDragScale {
		t.Fatalf("FineDragScale = %v, want default", cfg.Interaction.FineDragScale)
	}
	if cfg.Interaction.WheelZoomFactor != def.Interaction.WheelZoomFactor {
		t.Fatalf("WheelZoomFactor = %v, want default", cfg.Interaction.WheelZoomFactor)
	}
	if cfg.UI.FPS != def.UI.FPS {
		t.Fatalf("FPS = %d, want default %d", cfg.UI.FPS, def.UI.FPS)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`min_range_ms = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
