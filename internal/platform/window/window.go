// Package window runs the game in a desktop window with Ebitengine. The
// simulation is the same one the terminal drives; only input, drawing and
// audio differ.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// TPS is the fixed simulation rate of the window frontend.
const TPS = 60

// boardRows is the number of leaderboard entries shown in the window.
const boardRows = 10

// Game is the simulation the window drives.
type Game interface {
	ID() string
	Title() string
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Snapshot() flappy.Snapshot
}

// Scores is the score store as the window uses it.
type Scores interface {
	SaveScore(gameID, player string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Options configure a Runner. Zero values are safe.
type Options struct {
	Store  Scores
	Player string
	Audio  audio.Player
	Logger *log.Logger
	Scale  float64 // window pixels per world pixel
}

// board is the leaderboard overlay.
type board struct {
	entries []storage.ScoreEntry
	err     error
}

// Runner implements ebiten.Game around a flappy simulation.
type Runner struct {
	game       Game
	opts       Options
	frame      time.Duration
	state      core.GameState
	board      *board
	scoreSaved bool
	text       *textCache
}

// NewRunner creates a runner for game.
func NewRunner(game Game, opts Options) *Runner {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return &Runner{
		game:  game,
		opts:  opts,
		frame: time.Second / TPS,
		text:  newTextCache(),
	}
}

// Update polls input and advances the simulation by one fixed frame.
func (r *Runner) Update() error {
	return r.step(pollInput())
}

// step applies one frame of input. It returns ebiten.Termination on quit.
func (r *Runner) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if r.board != nil {
		if in.Has(core.ActionLeaderboard) || in.Has(core.ActionFlap) || in.Has(core.ActionRestart) {
			r.board = nil
		}
		return nil
	}

	result := r.game.Step(in, r.frame)
	r.state = result.State

	for _, e := range result.Events {
		r.opts.Audio.Play(e)
		switch e {
		case core.EventGameOver:
			r.saveScore()
		case core.EventRestart:
			r.scoreSaved = false
		case core.EventLeaderboard:
			r.openBoard()
		}
	}
	return nil
}

func (r *Runner) saveScore() {
	if r.scoreSaved {
		return
	}
	r.scoreSaved = true

	if r.opts.Store == nil || r.state.Score <= 0 {
		return
	}
	if _, err := r.opts.Store.SaveScore(r.game.ID(), r.opts.Player, r.state.Score); err != nil {
		r.opts.Logger.Warn("could not save score", "score", r.state.Score, "err", err)
	}
}

func (r *Runner) openBoard() {
	b := &board{}
	if r.opts.Store == nil {
		b.err = errors.New("scores are not being recorded")
	} else {
		b.entries, b.err = r.opts.Store.TopScores(r.game.ID(), boardRows)
	}
	r.board = b
}

// Draw renders the latest snapshot.
func (r *Runner) Draw(screen *ebiten.Image) {
	snap := r.game.Snapshot()
	p := painter{dst: screen, snap: snap, text: r.text}
	p.draw()
	if r.board != nil {
		p.drawBoard(r.game.Title(), r.board)
	}
}

// Layout keeps the world resolution; Ebitengine scales it to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := r.game.Snapshot()
	return int(snap.WorldW), int(snap.WorldH)
}

// Run opens the window and blocks until it is closed.
func Run(game Game, opts Options) error {
	r := NewRunner(game, opts)
	snap := game.Snapshot()

	ebiten.SetWindowSize(int(snap.WorldW*r.opts.Scale), int(snap.WorldH*r.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
