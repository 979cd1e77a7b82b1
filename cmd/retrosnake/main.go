// retrosnake is a snake game for the terminal.
//
// Usage:
//
//	retrosnake               - Play the game
//	retrosnake play          - Play the game
//	retrosnake config        - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.retrosnake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--fps <rate>        - Render frame rate (default: 60)
//	--mute              - Disable sound effects
//	--log-level <lvl>   - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "retrosnake",
	Short: "Retro Snake - the classic snake game in your terminal",
	Long: `Retro Snake is the classic snake game for the terminal.

Steer the snake with the arrow keys, WASD or hjkl. Eat food to grow
and score. Hitting a wall or yourself ends the round; press an arrow
key to play again.

Examples:
  retrosnake
  retrosnake --seed 42 --mute
  retrosnake config > ~/.retrosnake/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the command-line overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}
