package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prince-of-oliver/internal/platform/audio"
	"github.com/vovakirdan/prince-of-oliver/internal/platform/tui"
	"github.com/vovakirdan/prince-of-oliver/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
Leaving a level's title screen returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Play level
  Tab          - Best runs board
  Q            - Quit

Examples:
  oliver menu
  oliver menu --fps 30
  oliver menu --levels ./levels --difficulty easy`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := gameConfig()
	if err != nil {
		return err
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Player:  playerName(),
	}

	// Continue without storage - the menu just shows no best times
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if cfg.Audio.Enabled {
		synth := audio.Open(logger)
		defer synth.Close()
		opts.Audio = synth
	}

	if err := tui.RunSession(opts); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
