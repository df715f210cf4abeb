package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// fakeGame replays scripted events and records what the model feeds it.
type fakeGame struct {
	resets int
	steps  []time.Duration
	inputs []core.InputFrame
	script [][]core.Event
	state  core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return g.state }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorYellow)
}

func (g *fakeGame) queue(events ...core.Event) {
	g.script = append(g.script, events)
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps = append(g.steps, dt)
	g.inputs = append(g.inputs, in.Clone())
	var events []core.Event
	if len(g.script) > 0 {
		events, g.script = g.script[0], g.script[1:]
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) CellToWorld(col, row, cols, rows int) (float64, float64) {
	return float64(col * 10), float64(row * 10)
}

// fakeStore keeps scores in memory.
type fakeStore struct {
	saved []storage.ScoreEntry
}

func (s *fakeStore) SaveScore(gameID, player string, score int) (int64, error) {
	id := int64(len(s.saved) + 1)
	s.saved = append(s.saved, storage.ScoreEntry{
		ID: id, GameID: gameID, Player: player, Score: score,
		CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	})
	return id, nil
}

func (s *fakeStore) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	return s.saved, nil
}

func (s *fakeStore) GetGameStats(gameID string) (*storage.GameStats, error) {
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(s.saved)}
	for _, e := range s.saved {
		stats.HighScore = max(stats.HighScore, e.Score)
		stats.TotalScore += int64(e.Score)
	}
	return stats, nil
}

// recordingAudio remembers every event it was asked to play.
type recordingAudio struct {
	played []core.Event
}

func (a *recordingAudio) Play(e core.Event) { a.played = append(a.played, e) }
func (a *recordingAudio) Close()            {}

type harness struct {
	m     Model
	game  *fakeGame
	store *fakeStore
	audio *recordingAudio
	now   time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		game:  &fakeGame{},
		store: &fakeStore{},
		audio: &recordingAudio{},
		now:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	h.m = NewModel(h.game, cfg, Options{
		Store:  h.store,
		Player: "alice",
		Audio:  h.audio,
		Logger: log.New(io.Discard),
	})
	if h.m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.m.Update(msg)
	h.m = updated.(Model)
	return cmd
}

func (h *harness) tick(d time.Duration) tea.Cmd {
	h.now = h.now.Add(d)
	return h.send(TickMsg(h.now))
}

func TestModelInitResetsGame(t *testing.T) {
	h := newHarness(t)
	if h.game.resets != 1 {
		t.Errorf("expected 1 reset, got %d", h.game.resets)
	}
}

func TestModelMeasuresFrameTime(t *testing.T) {
	h := newHarness(t)

	if cmd := h.tick(0); cmd == nil {
		t.Fatal("a tick should schedule the next one")
	}
	h.tick(25 * time.Millisecond)
	h.tick(-time.Second)

	want := []time.Duration{time.Second / 60, 25 * time.Millisecond, 0}
	if len(h.game.steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(h.game.steps))
	}
	for i, dt := range want {
		if h.game.steps[i] != dt {
			t.Errorf("step %d dt = %v, expected %v", i, h.game.steps[i], dt)
		}
	}
}

func TestModelKeysReachNextStep(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeySpace})
	h.send(runeKey('c'))
	h.tick(16 * time.Millisecond)
	h.tick(16 * time.Millisecond)

	if in := h.game.inputs[0]; !in.Has(core.ActionFlap) || !in.Has(core.ActionCycleColor) {
		t.Error("first step should see both actions")
	}
	if in := h.game.inputs[1]; in.Has(core.ActionFlap) {
		t.Error("input should be cleared after a step")
	}
}

func TestModelMouseClick(t *testing.T) {
	h := newHarness(t)

	h.send(tea.MouseMsg{X: 4, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.tick(16 * time.Millisecond)

	in := h.game.inputs[0]
	if in.Click == nil || in.Click.X != 40 || in.Click.Y != 20 {
		t.Errorf("click = %v, expected (40, 20)", in.Click)
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if h.m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelForwardsEventsToAudio(t *testing.T) {
	h := newHarness(t)
	h.game.queue(core.EventFlap, core.EventPoint)
	h.game.queue(core.EventHit, core.EventFall)

	h.tick(16 * time.Millisecond)
	h.tick(16 * time.Millisecond)

	want := []core.Event{core.EventFlap, core.EventPoint, core.EventHit, core.EventFall}
	if len(h.audio.played) != len(want) {
		t.Fatalf("played %v, expected %v", h.audio.played, want)
	}
	for i, e := range want {
		if h.audio.played[i] != e {
			t.Errorf("event %d = %s, expected %s", i, h.audio.played[i], e)
		}
	}
}

func TestModelSavesScoreOncePerRound(t *testing.T) {
	h := newHarness(t)
	h.game.state = core.GameState{Score: 7, Phase: "GAMEOVER", GameOver: true}

	h.game.queue(core.EventGameOver)
	h.game.queue(core.EventGameOver)
	h.tick(16 * time.Millisecond)
	h.tick(16 * time.Millisecond)

	if len(h.store.saved) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(h.store.saved))
	}
	if got := h.store.saved[0]; got.Player != "alice" || got.Score != 7 || got.GameID != "fake" {
		t.Errorf("saved %+v", got)
	}

	h.game.queue(core.EventSwoosh, core.EventRestart)
	h.game.queue(core.EventGameOver)
	h.tick(16 * time.Millisecond)
	h.tick(16 * time.Millisecond)

	if len(h.store.saved) != 2 {
		t.Errorf("a restarted round should be saved again, got %d scores", len(h.store.saved))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	h := newHarness(t)
	h.game.state = core.GameState{Score: 0, GameOver: true}
	h.game.queue(core.EventGameOver)
	h.tick(16 * time.Millisecond)

	if len(h.store.saved) != 0 {
		t.Error("a zero score should not be recorded")
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &fakeGame{state: core.GameState{Score: 3, GameOver: true}}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 12}, Options{Logger: log.New(io.Discard)})
	m.Init()

	game.queue(core.EventGameOver, core.EventLeaderboard)
	updated, _ := m.Update(TickMsg(time.Now()))
	m = updated.(Model)

	if !m.BoardOpen() {
		t.Fatal("the board should open even without a store")
	}
	if !strings.Contains(m.View(), "not being recorded") {
		t.Error("the board should say scores are not recorded")
	}
}

func TestModelLeaderboard(t *testing.T) {
	h := newHarness(t)
	h.store.SaveScore("fake", "bob", 12)

	h.game.queue(core.EventLeaderboard)
	h.tick(16 * time.Millisecond)
	if !h.m.BoardOpen() {
		t.Fatal("the leaderboard event should open the board")
	}

	view := h.m.View()
	for _, want := range []string{"HIGH SCORES - Fake", "bob", "12"} {
		if !strings.Contains(view, want) {
			t.Errorf("board view missing %q", want)
		}
	}

	steps := len(h.game.steps)
	if cmd := h.tick(16 * time.Millisecond); cmd == nil {
		t.Error("ticks should keep flowing while the board is open")
	}
	if len(h.game.steps) != steps {
		t.Error("the game should not step while the board is open")
	}

	if cmd := h.send(runeKey('l')); cmd != nil {
		t.Error("closing an embedded board should not quit")
	}
	if h.m.BoardOpen() {
		t.Error("l should close the board")
	}
	if !strings.Contains(h.m.View(), "fake") {
		t.Error("the game should render again after the board closes")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	if h.game.resets != 1 {
		t.Error("resizing should not reset the round")
	}
	if h.m.screen.Width() != 100 || h.m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", h.m.screen.Width(), h.m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	h := newHarness(t)
	h.m.opts.ScreenshotDir = t.TempDir()

	path, err := h.m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot failed: %v", err)
	}
	if !strings.HasPrefix(path, h.m.opts.ScreenshotDir) || !strings.HasSuffix(path, ".txt") {
		t.Errorf("unexpected screenshot path %s", path)
	}
}
