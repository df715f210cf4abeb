package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Scores is the score store as the game model uses it.
type Scores interface {
	ScoreSource
	SaveScore(gameID, player string, score int) (int64, error)
}

// Options are the optional collaborators of a Model. Zero values are safe:
// no store means scores are not recorded, no audio means silence.
type Options struct {
	Store         Scores
	Player        string
	Audio         audio.Player
	Logger        *log.Logger
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	board      *ScoreboardModel
	quitting   bool
	scoreSaved bool // Whether the score of the current round has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ce, ok := m.game.(interface{ ConfigErr() error }); ok && ce.ConfigErr() != nil {
		m.opts.Logger.Warn("using default game config", "err", ce.ConfigErr())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m = m.handleResize(wsm)
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		pm, _ := m.game.(registry.PointerMapper)
		m.keys.MapMouseToFrame(msg, pm, m.screen.Width(), m.screen.Height(), &m.inputFrame)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize tracks the terminal size. The world is virtual, so the round
// keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m
}

// frameTime returns the wall-clock time since the previous tick.
func (m Model) frameTime(now time.Time) time.Duration {
	if m.lastTick.IsZero() {
		return time.Second / time.Duration(m.config.TickRate)
	}
	return max(now.Sub(m.lastTick), 0)
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameTime(now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.opts.Audio.Play(e)
		switch e {
		case core.EventGameOver:
			m.saveScore()
		case core.EventRestart:
			m.scoreSaved = false
		case core.EventLeaderboard:
			b := newEmbeddedScoreboard(m.opts.Store, m.game.ID(), m.game.Title(), m.screen.Width(), m.screen.Height())
			m.board = &b
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// updateBoard routes messages to the open leaderboard. The round stays
// frozen underneath until the board is closed.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Keep the tick loop alive without stepping.
		m.lastTick = time.Time{}
		return m, tickCmd(m.config.TickRate)
	}

	updated, cmd := m.board.Update(msg)
	b, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case b.IsQuitting():
		m.quitting = true
		m.board = nil
	case b.IsGoingBack():
		m.board = nil
	default:
		m.board = &b
	}
	return m, cmd
}

// saveScore records the round once. Zero scores are not recorded.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score); err != nil {
		m.opts.Logger.Warn("could not save score", "score", m.gameState.Score, "err", err)
		return
	}
	m.opts.Logger.Debug("score saved", "player", m.opts.Player, "score", m.gameState.Score)
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	} else {
		expanded, err := storage.ExpandPath(dir)
		if err != nil {
			return "", err
		}
		dir = expanded
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// BoardOpen reports whether the leaderboard is showing.
func (m Model) BoardOpen() bool {
	return m.board != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
