package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

// The alt screen owns the terminal, so play logs to a file by default.
const defaultPlayLog = "~/.flappy/flappy.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W, left click   - Flap (start, fly, press buttons)
  C, right click           - Next bird color
  N, middle click          - Day/night
  P                        - Pause
  R/Enter                  - Restart (after game over)
  L                        - Leaderboard (after game over)
  Ctrl+S                   - Screenshot
  Q/Ctrl+C                 - Quit

Difficulty options:
  easy   - Wider gaps, slower scrolling
  normal - The configured values
  hard   - Narrower gaps, faster scrolling

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml
  flappy play --mute --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(defaultPlayLog)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(width, height)
	cfg.HighScore = storedHighScore(store, flappy.ID, logger)

	player := openAudio(logger)
	defer player.Close()

	opts := tui.Options{
		Player: flagPlayer,
		Audio:  player,
		Logger: logger,
	}
	if store != nil {
		opts.Store = store
	}

	logger.Info("starting game", "width", width, "height", height, "difficulty", flagDifficulty)
	if err := tui.Run(flappy.New(), cfg, opts); err != nil {
		fail("running game: %v", err)
	}
}

// openAudio starts the speaker using the audio section of the game config.
func openAudio(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	cfg, err := config.Load(flagConfig, flagDifficulty)
	if err != nil {
		logger.Warn("using default audio settings", "err", err)
		cfg = config.DefaultFlappyConfig()
	}
	return audio.Open(cfg.Audio, logger)
}
