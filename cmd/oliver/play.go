package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prince-of-oliver/internal/level"
	"github.com/vovakirdan/prince-of-oliver/internal/level/formats"
	"github.com/vovakirdan/prince-of-oliver/internal/levels"
	"github.com/vovakirdan/prince-of-oliver/internal/platform/audio"
	"github.com/vovakirdan/prince-of-oliver/internal/platform/tui"
	"github.com/vovakirdan/prince-of-oliver/internal/platform/watch"
	"github.com/vovakirdan/prince-of-oliver/internal/registry"
	"github.com/vovakirdan/prince-of-oliver/internal/storage"
)

var (
	flagWatch  bool
	flagMute   bool
	flagLabels bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level. Without an argument the keep is
played. The level may be a registered ID or a path to a .yaml or .tmx file.

Controls:
  A/D, Left/Right  - Move
  W/S, Up/Down     - Climb ladders
  Space/K          - Jump
  E/J              - Attack
  R                - Mark respawn point at a checkpoint
  P                - Pause (Esc while paused returns to the title)
  N                - Restart (after winning)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Longer coyote time and jump buffer, slower guards
  normal  - The configured tuning
  hard    - Tight jump timing, faster guards

Examples:
  oliver play
  oliver play keep --difficulty hard
  oliver play ./levels/tower.tmx --watch
  oliver play keep --config ./my-oliver.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level file whenever it changes")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagLabels, "labels", false, "Draw entity names")
}

// resolveLevel finds a level by file path or registered ID.
func resolveLevel(loader *levels.Loader, arg string) (level.Level, error) {
	if formats.IsSupported(arg) {
		if _, err := os.Stat(arg); err == nil {
			return loader.LoadFile(arg)
		}
	}
	if !registry.Exists(arg) {
		return level.Level{}, fmt.Errorf("%w: %q (run 'oliver list' to see available levels)", levels.ErrNotFound, arg)
	}
	return registry.Create(arg)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	levelArg := levels.DefaultLevelID
	if len(args) == 1 {
		levelArg = args[0]
	}

	loader := levels.NewLoader(flagLevelsDir, logger)
	lvl, err := resolveLevel(loader, levelArg)
	if err != nil {
		return err
	}

	cfg, err := gameConfig()
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	opts := tui.Options{
		Config:    cfg,
		Runtime:   runtimeConfig(),
		Logger:    logger.With("level", lvl.ID),
		Player:    playerName(),
		Labels:    flagLabels,
		LoadLevel: loader.LoadFile,
	}

	// Continue without storage - the game still works
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

	if flagWatch {
		if lvl.FilePath == "" {
			return errors.New("--watch needs a level file, built-in levels cannot change")
		}
		w, err := watch.New(lvl.FilePath)
		if err != nil {
			return fmt.Errorf("watching %s: %w", lvl.FilePath, err)
		}
		defer w.Close()
		opts.Watch = w
	}

	if err := tui.Run(lvl, opts); err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}
