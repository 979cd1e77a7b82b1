package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-snake/internal/audio"
	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/logging"
	"github.com/vovakirdan/retro-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Arrows/WASD/hjkl  - Steer
  Ctrl+S            - Save a text screenshot
  ?                 - Toggle full help
  Q/Esc/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// runPlay runs one session. The log file and the speaker are released on
// every return path.
func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on shutdown
	defer logCloser.Close()

	logger.Info("starting", "config", source, "audio", cfg.Audio.Enabled, "seed", flagSeed)

	player, err := audio.Open(cfg.Audio)
	if err != nil {
		// Continue without sound - game still works
		logger.Warn("audio unavailable, playing muted", "error", err)
	}
	//nolint:errcheck // Best-effort release on shutdown
	defer player.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
		Theme:  cfg.Theme,
		Sound:  player,
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		return runErr
	}

	logger.Info("shutdown")
	return nil
}
