package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. The controls match the terminal;
Escape also quits.

Examples:
  flappy window
  flappy window --scale 1.5 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per world pixel")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(0, 0)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.HighScore = storedHighScore(store, flappy.ID, logger)

	game := flappy.New()
	game.Reset(cfg)
	if err := game.ConfigErr(); err != nil {
		logger.Warn("using default game config", "err", err)
	}

	player := openAudio(logger)
	defer player.Close()

	opts := window.Options{
		Player: flagPlayer,
		Audio:  player,
		Logger: logger,
		Scale:  flagScale,
	}
	if store != nil {
		opts.Store = store
	}

	if err := window.Run(game, opts); err != nil {
		fail("%v", err)
	}
}
