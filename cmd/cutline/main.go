package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cutline/cutline/internal/app"
	"github.com/cutline/cutline/internal/timecode"
)

var (
	configPath string
	prefsPath  string
	duration   string
	fps        int
)

var rootCmd = &cobra.Command{
	Use:   "cutline [media-file]",
	Short: "Mark keep/delete time ranges on a media timeline in the terminal",
	Long: `cutline is a terminal timeline editor: scrub a media asset, mark
time ranges to keep or delete by direct manipulation of a zoomable
timeline, and fine-tune range bounds as timecode.

The asset duration is probed with ffprobe when a media file is given;
--duration supplies it directly when ffprobe is unavailable or no file
exists yet.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.Options{
			ConfigPath: configPath,
			PrefsPath:  prefsPath,
			FPS:        fps,
		}
		if len(args) == 1 {
			opts.MediaPath = args[0]
		}
		if duration != "" {
			ms, ok := timecode.Parse(duration)
			if !ok {
				return fmt.Errorf("invalid --duration %q (want seconds or [HH:]MM:SS[.mmm])", duration)
			}
			opts.DurationMs = ms
		}
		if opts.MediaPath == "" && opts.DurationMs <= 0 {
			return fmt.Errorf("nothing to edit: give a media file or --duration")
		}
		return app.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/cutline/config.toml)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file path (default ~/.config/cutline/prefs.toml)")
	rootCmd.Flags().StringVar(&duration, "duration", "", "asset duration as seconds or [HH:]MM:SS[.mmm] (used when probing fails)")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "render rate override (default from config, 30)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cutline: %v\n", err)
		os.Exit(1)
	}
}
