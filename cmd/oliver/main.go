// oliver is a terminal platformer: guide the prince through the keep to the
// princess.
//
// Usage:
//
//	oliver                   - Start menu to pick a level
//	oliver list              - List available levels
//	oliver play [level]      - Play a level by ID or file path
//	oliver menu              - Start menu to pick a level
//	oliver serve             - Start SSH server for remote play
//	oliver runs [level]      - Show best runs for a level
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.oliver/runs.db)
//	--levels <dir>       - Directory of level files (default: ~/.oliver/levels)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/levels"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string

	// Game tuning flags, shared by play, menu and serve
	flagConfig     string
	flagDifficulty string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "oliver"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oliver",
	Short: "Prince of Oliver - a platformer in your terminal",
	Long: `Prince of Oliver is a terminal platformer. Climb, jump and fight your
way past the guards, find the key and reach the princess.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker menu
  serve    - Start SSH server for remote play
  runs     - View best runs

Examples:
  oliver list
  oliver play keep
  oliver play ./tower.tmx --watch
  oliver serve --ssh :2222
  oliver runs keep`,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.oliver/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "~/.oliver/levels", "Directory of level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup configures logging and registers the level files next to the
// built-in levels.
func setup(_ *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	n, err := levels.NewLoader(flagLevelsDir, logger).RegisterAll()
	if err != nil {
		logger.Warn("could not load level files", "dir", flagLevelsDir, "err", err)
		return nil
	}
	logger.Debug("level files registered", "dir", flagLevelsDir, "count", n)
	return nil
}

// gameConfig loads the game tuning and applies the difficulty preset.
func gameConfig() (config.OliverConfig, error) {
	cfg, err := config.LoadOliver(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyOliverPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// playerName is recorded with local runs.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
