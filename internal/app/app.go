// Package app wires configuration, preferences, the playback clock, and the
// UI into a running editor.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/cutline/cutline/internal/config"
	"github.com/cutline/cutline/internal/player"
	"github.com/cutline/cutline/internal/prefs"
	"github.com/cutline/cutline/internal/ui"
)

// Options configure the cutline application.
type Options struct {
	MediaPath  string // media file to probe; empty uses DurationMs alone
	DurationMs int64  // fallback duration when probing is unavailable
	ConfigPath string // empty uses default ~/.config/cutline/config.toml
	PrefsPath  string // empty uses default ~/.config/cutline/prefs.toml
	FPS        int    // render rate override; zero uses config
}

// Run boots the cutline TUI until the user quits.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.FPS > 0 {
		cfg.UI.FPS = opts.FPS
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	durationMs := opts.DurationMs
	mediaName := ""
	if opts.MediaPath != "" {
		mediaName = filepath.Base(opts.MediaPath)
		if probed, ok := player.ProbeDuration(opts.MediaPath); ok {
			durationMs = probed
		}
	}

	uiOpts := ui.Options{
		MediaName: mediaName,
		Player:    player.New(durationMs),
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
