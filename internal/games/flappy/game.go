// Package flappy implements the Flappy Bird simulation: the phase state
// machine, bird kinematics, the pipe lifecycle, the scrolling layers and
// collision/score resolution, plus a renderer for the terminal cell screen.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// ID is the registry and storage identifier of the game.
const ID = "flappy"

// Game adapts a Session to the registry.Game interface.
type Game struct {
	cfg       config.FlappyConfig
	runtime   core.RuntimeConfig
	session   *Session
	configErr error

	scoreJustify core.Justify
	labelJustify core.Justify
}

// New creates a game with the default configuration. Call Reset before use.
func New() *Game {
	cfg := config.DefaultFlappyConfig()
	g := &Game{cfg: cfg}
	g.session = NewSession(cfg, 0, 0)
	g.applyHUD()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads the configuration named by cfg and starts a new session in
// SPLASH. An unusable configuration falls back to the defaults; the error is
// kept for the platform to report via ConfigErr.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	fc, err := config.Load(cfg.ConfigPath, cfg.Difficulty)
	g.configErr = err
	if err != nil {
		fc = config.DefaultFlappyConfig()
	}
	high := cfg.HighScore
	if g.session != nil {
		high = max(high, g.session.HighScore())
	}
	g.ResetWith(fc, cfg.Seed, high)
}

// ResetWith starts a new session from an already loaded configuration.
func (g *Game) ResetWith(cfg config.FlappyConfig, seed int64, highScore int) {
	g.cfg = cfg
	g.session = NewSession(cfg, seed, highScore)
	g.applyHUD()
}

func (g *Game) applyHUD() {
	// Validate already rejected bad names; ParseJustify falls back to center.
	g.scoreJustify, _ = core.ParseJustify(g.cfg.HUD.ScoreJustify)
	g.labelJustify, _ = core.ParseJustify(g.cfg.HUD.LabelJustify)
}

// ConfigErr returns the error from the last configuration load, if any.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Config returns the configuration in use.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Step advances the session by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	events := g.session.Update(in, float64(dt)/float64(time.Millisecond))
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Phase:     s.Phase().String(),
		GameOver:  s.Phase() == PhaseGameOver,
		Paused:    s.Paused(),
	}
}

// Snapshot returns a copy of the session state for rendering.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// CellToWorld maps the centre of a terminal cell to world coordinates.
func (g *Game) CellToWorld(col, row, cols, rows int) (float64, float64) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) * g.cfg.World.Width / float64(cols)
	y := (float64(row) + 0.5) * g.cfg.World.Height / float64(rows)
	return x, y
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
