// Package config handles loading and parsing cutline configuration files.
//
// # Overview
//
// This package reads cutline's TOML configuration to tune timeline
// interaction: hit-test slops, snap tolerances, the create-drag discard
// threshold, and the render rate. Every value has a working default; the
// file only exists to override them.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cutline/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or non-positive, the
//     affected fields fall back individually
//
// # Default Values
//
//   - Config file: ~/.config/cutline/config.toml
//   - min_range_ms: 200
//   - handle_slop_px / playhead_slop_px: 1 cell
//   - snap_tolerance_px: 1 cell, wide_snap_tolerance_px: 2 cells
//   - fine_drag_scale: 0.1
//   - wheel_zoom_factor: 1.1
//   - fps: 30
//
// Slop and tolerance values are measured in terminal cells; the timeline
// core treats one cell as one pixel unit.
//
// # TOML Format
//
// Example config.toml:
//
//	[interaction]
//	min_range_ms = 150
//	wide_snap_tolerance_px = 3
//
//	[ui]
//	fps = 60
//
// All fields are optional. Tilde expansion is performed on the config path.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows cutline to work out-of-the-box without configuration.
package config
