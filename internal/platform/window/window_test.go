package window

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type scriptedGame struct {
	steps  []time.Duration
	script [][]core.Event
	state  core.GameState
}

func (g *scriptedGame) ID() string                { return "flappy" }
func (g *scriptedGame) Title() string             { return "Flappy Bird" }
func (g *scriptedGame) Snapshot() flappy.Snapshot { return flappy.Snapshot{WorldW: 480, WorldH: 720} }

func (g *scriptedGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps = append(g.steps, dt)
	var events []core.Event
	if len(g.script) > 0 {
		events, g.script = g.script[0], g.script[1:]
	}
	return core.StepResult{State: g.state, Events: events}
}

type memStore struct {
	saved []storage.ScoreEntry
}

func (s *memStore) SaveScore(gameID, player string, score int) (int64, error) {
	s.saved = append(s.saved, storage.ScoreEntry{GameID: gameID, Player: player, Score: score})
	return int64(len(s.saved)), nil
}

func (s *memStore) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	return s.saved, nil
}

func newTestRunner(g *scriptedGame, store Scores) *Runner {
	return NewRunner(g, Options{Store: store, Player: "pat", Logger: log.New(io.Discard)})
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestRunnerFixedFrame(t *testing.T) {
	g := &scriptedGame{}
	r := newTestRunner(g, nil)

	for i := 0; i < 3; i++ {
		if err := r.step(core.NewInputFrame()); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	for _, dt := range g.steps {
		if dt != time.Second/TPS {
			t.Errorf("dt = %v, expected %v", dt, time.Second/TPS)
		}
	}
}

func TestRunnerQuit(t *testing.T) {
	r := newTestRunner(&scriptedGame{}, nil)
	if err := r.step(press(core.ActionQuit)); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit should terminate, got %v", err)
	}
}

func TestRunnerSavesScoreOncePerRound(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Score: 11, GameOver: true}}
	store := &memStore{}
	r := newTestRunner(g, store)

	g.script = [][]core.Event{{core.EventGameOver}, {core.EventGameOver}, {core.EventRestart}, {core.EventGameOver}}
	for range 4 {
		r.step(core.NewInputFrame())
	}

	if len(store.saved) != 2 {
		t.Fatalf("expected 2 saved rounds, got %d", len(store.saved))
	}
	if store.saved[0].Player != "pat" || store.saved[0].Score != 11 {
		t.Errorf("saved %+v", store.saved[0])
	}
}

func TestRunnerLeaderboard(t *testing.T) {
	g := &scriptedGame{script: [][]core.Event{{core.EventLeaderboard}}}
	store := &memStore{}
	store.SaveScore("flappy", "kim", 30)
	r := newTestRunner(g, store)

	r.step(core.NewInputFrame())
	if r.board == nil || len(r.board.entries) != 1 {
		t.Fatal("the leaderboard event should open the board with the stored scores")
	}

	r.step(core.NewInputFrame())
	if len(g.steps) != 1 {
		t.Error("the game should not step while the board is open")
	}

	r.step(press(core.ActionFlap))
	if r.board != nil {
		t.Error("a click should close the board")
	}
}

func TestRunnerBoardWithoutStore(t *testing.T) {
	g := &scriptedGame{script: [][]core.Event{{core.EventLeaderboard}}}
	r := newTestRunner(g, nil)
	r.step(core.NewInputFrame())

	if r.board == nil || r.board.err == nil {
		t.Error("without a store the board should explain why it is empty")
	}
}

func TestLayoutKeepsWorldSize(t *testing.T) {
	r := newTestRunner(&scriptedGame{}, nil)
	if w, h := r.Layout(1920, 1080); w != 480 || h != 720 {
		t.Errorf("Layout = %dx%d, expected 480x720", w, h)
	}
}

func TestPipeLip(t *testing.T) {
	span := core.NewRectF(100, 400, 80, 200)

	bottom := pipeLip(flappy.Obstacle{Slot: flappy.SlotBottom}, span)
	if bottom.Y != 400 || bottom.X != 96 || bottom.W != 88 || bottom.H != lipHeight {
		t.Errorf("bottom lip = %+v", bottom)
	}

	top := pipeLip(flappy.Obstacle{Slot: flappy.SlotTop}, span)
	if top.Bottom() != span.Bottom() {
		t.Errorf("top lip should sit at the open end, got %+v", top)
	}
}

func TestPlaqueY(t *testing.T) {
	v := flappy.PlaqueView{Rect: core.NewRectF(110, 252, 260, 150)}
	tests := []struct {
		slide float64
		want  float64
	}{
		{0, 720},
		{0.5, 486},
		{1, 252},
		{2, 252},
	}
	for _, tc := range tests {
		v.Slide = tc.slide
		if got := plaqueY(v, 720); got != tc.want {
			t.Errorf("plaqueY(slide=%v) = %v, expected %v", tc.slide, got, tc.want)
		}
	}
}

func TestMedalColor(t *testing.T) {
	if _, ok := medalColor(flappy.MedalNone); ok {
		t.Error("no medal should draw nothing")
	}
	seen := map[core.Color]bool{}
	for _, m := range []flappy.Medal{flappy.MedalBronze, flappy.MedalSilver, flappy.MedalGold, flappy.MedalPlatinum} {
		c, ok := medalColor(m)
		if !ok {
			t.Errorf("%s should have a color", m)
		}
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Error("each medal should have its own color")
	}
}

func TestTextSize(t *testing.T) {
	tests := []struct {
		s    string
		w, h int
	}{
		{"", 0, glyphH},
		{"abc", 3 * glyphW, glyphH},
		{"ab\nlonger", 6 * glyphW, 2 * glyphH},
		{"é", glyphW, glyphH},
	}
	for _, tc := range tests {
		if w, h := textSize(tc.s); w != tc.w || h != tc.h {
			t.Errorf("textSize(%q) = %d,%d; expected %d,%d", tc.s, w, h, tc.w, tc.h)
		}
	}
}

func TestSkyColorWraps(t *testing.T) {
	if skyColor(0) != skyColor(len(skies)) || skyColor(-1) != skyColor(len(skies)-1) {
		t.Error("scene indexes should wrap")
	}
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(skies[0], 0)
	if c.A != 0 || c.R != 0 {
		t.Errorf("zero alpha should be transparent, got %v", c)
	}
	if withAlpha(skies[0], 255) != skies[0] {
		t.Error("full alpha should keep the color")
	}
}
