package flappy

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frameMs = 16

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.DefaultFlappyConfig(), 42, 0)
}

// toPlay skips the splash, starts a round and finishes the start delay.
func toPlay(s *Session) {
	s.enterReady()
	s.startPlay()
	s.warmup = s.cfg.Timing.StartDelayMs
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// placePair moves the most recent pair to x with the given gap centre.
func placePair(s *Session, x, center float64) {
	obs := s.field.obstacles
	for i := len(obs) - 2; i < len(obs); i++ {
		obs[i].X = x
		obs[i].GapCenter = center
	}
}

func TestSplashRunsOnceIntoReady(t *testing.T) {
	s := newTestSession(t)
	if s.Phase() != PhaseSplash {
		t.Fatalf("new session should start in SPLASH, got %s", s.Phase())
	}

	var events []core.Event
	elapsed := 0.0
	for s.Phase() == PhaseSplash && elapsed < 10000 {
		events = append(events, s.Update(idle(), 50)...)
		elapsed += 50
	}
	if s.Phase() != PhaseReady {
		t.Fatalf("splash should end in READY, still %s after %vms", s.Phase(), elapsed)
	}
	// 2000 before, 425 fade-in, 2000 hold, 425 fade-out, rounded up to 50ms frames
	if elapsed < 4800 || elapsed > 5000 {
		t.Errorf("splash took %vms, expected about 4950ms", elapsed)
	}
	if !slices.Contains(events, core.EventMusicStart) {
		t.Error("entering READY should start the music")
	}
	if s.field.Len() != 0 {
		t.Error("no obstacles may exist before PLAY")
	}
}

func TestReadyBobsWithoutObstacles(t *testing.T) {
	s := newTestSession(t)
	s.enterReady()

	ys := make(map[float64]bool)
	for i := 0; i < 100; i++ {
		s.Update(idle(), frameMs)
		ys[s.actor.Y] = true
		if s.actor.Y < 310-eps || s.actor.Y > 410+eps {
			t.Fatalf("bob left its band: y=%v", s.actor.Y)
		}
	}
	if len(ys) < 10 {
		t.Error("the bird should bob while waiting")
	}
	if s.field.Len() != 0 {
		t.Error("READY must not spawn obstacles")
	}
	if s.backdrop.Slots()[0] == 0 {
		t.Error("layers should scroll in READY")
	}
}

func TestGetReadyOverlayDelay(t *testing.T) {
	s := newTestSession(t)
	s.enterReady()

	for elapsed := 0.0; elapsed < 992; elapsed += frameMs {
		s.Update(idle(), frameMs)
	}
	if s.overlay.Visible() {
		t.Fatal("get-ready overlay should wait a second")
	}
	for i := 0; i < 20; i++ {
		s.Update(idle(), frameMs)
	}
	if !s.overlay.Visible() {
		t.Error("get-ready overlay should fade in after the delay")
	}
}

func TestFlapStartsPlay(t *testing.T) {
	s := newTestSession(t)
	s.enterReady()
	s.Update(idle(), frameMs)

	events := s.Update(press(core.ActionFlap), frameMs)
	if s.Phase() != PhasePlay {
		t.Fatalf("flap in READY should start PLAY, got %s", s.Phase())
	}
	if s.field.Len() != 2 {
		t.Errorf("PLAY should begin with one pair, got %d obstacles", s.field.Len())
	}
	if !slices.Contains(events, core.EventFlap) {
		t.Error("the starting press should also flap")
	}
	if s.actor.Velocity >= 0 {
		t.Errorf("bird should be moving up, velocity %v", s.actor.Velocity)
	}
}

func TestWarmupHoldsObstacles(t *testing.T) {
	s := newTestSession(t)
	s.enterReady()
	s.Update(press(core.ActionFlap), frameMs)
	x := s.field.Obstacles()[0].X

	s.Update(press(core.ActionFlap), 100)
	if s.field.Obstacles()[0].X != x {
		t.Error("obstacles must not move during the start delay")
	}
	if s.travel != 0 {
		t.Error("travel must not accumulate during the start delay")
	}
}

func TestSpawnAfterSpacing(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	before := s.field.Len()

	s.travel = 274
	s.Update(idle(), 1) // 274.21, below the spacing
	if s.field.Len() != before {
		t.Fatalf("no pair should spawn before the spacing is exceeded")
	}

	s.travel = 275
	s.Update(idle(), 5) // 276.05
	if got := s.field.Len(); got != before+2 {
		t.Errorf("exactly one pair should spawn, obstacles %d -> %d", before, got)
	}
	if s.travel != 0 {
		t.Errorf("travel should reset after a spawn, got %v", s.travel)
	}
}

func TestCollisionFreezesWorld(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	placePair(s, 120, 160) // bottom span starts at 250, the bird is at 360

	events := s.Update(idle(), frameMs)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("collision should end the round, got %s", s.Phase())
	}
	for _, want := range []core.Event{core.EventHit, core.EventFall, core.EventGameOver} {
		if !slices.Contains(events, want) {
			t.Errorf("missing event %s in %v", want, events)
		}
	}
	if s.LastHit() != CollisionObstacle {
		t.Errorf("LastHit() = %v, expected obstacle", s.LastHit())
	}
	if s.actor.Velocity != 0 {
		t.Errorf("bird velocity should be zeroed on impact, got %v", s.actor.Velocity)
	}

	obstacles := append([]Obstacle(nil), s.field.Obstacles()...)
	ground := append([]float64(nil), s.ground.Slots()...)
	backdrop := append([]float64(nil), s.backdrop.Slots()...)
	for i := 0; i < 60; i++ {
		s.Update(press(core.ActionFlap), frameMs)
	}
	if !slices.Equal(obstacles, s.field.Obstacles()) {
		t.Error("obstacles must stay frozen in GAMEOVER")
	}
	if !slices.Equal(ground, s.ground.Slots()) || !slices.Equal(backdrop, s.backdrop.Slots()) {
		t.Error("layers must stay frozen in GAMEOVER")
	}
	if s.actor.Y <= 360 {
		t.Error("the bird should keep falling after the hit")
	}
}

func TestGroundHitHasNoFallSound(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)

	var events []core.Event
	for i := 0; i < 200 && s.Phase() == PhasePlay; i++ {
		events = append(events, s.Update(idle(), frameMs)...)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatal("an idle bird should hit the ground")
	}
	if s.LastHit() != CollisionGround {
		t.Errorf("LastHit() = %v, expected ground", s.LastHit())
	}
	if !slices.Contains(events, core.EventHit) || slices.Contains(events, core.EventFall) {
		t.Errorf("ground impact should raise Hit without Fall, got %v", events)
	}
}

func TestCeilingHit(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	s.field.Reset()

	for i := 0; i < 200 && s.Phase() == PhasePlay; i++ {
		s.Update(press(core.ActionFlap), frameMs)
	}
	if s.LastHit() != CollisionCeiling {
		t.Errorf("flapping forever should hit the ceiling, got %v", s.LastHit())
	}
}

func TestScoreOncePerPair(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	placePair(s, 0, 360) // right edge at 78, left of the bird

	events := s.Update(idle(), frameMs)
	if s.Score() != 1 {
		t.Fatalf("passing a pair should score 1, got %d", s.Score())
	}
	if n := count(events, core.EventPoint); n != 1 {
		t.Errorf("expected one Point event, got %d", n)
	}

	events = s.Update(idle(), frameMs)
	if s.Score() != 1 || count(events, core.EventPoint) != 0 {
		t.Errorf("a pair must score once, score=%d", s.Score())
	}
}

func TestRetiredObstaclesLeaveScoredSet(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	placePair(s, -70, 360)
	s.Update(idle(), frameMs)
	if s.Score() != 1 {
		t.Fatalf("expected a point, got %d", s.Score())
	}

	for i := 0; i < 10; i++ {
		s.Update(press(core.ActionFlap), frameMs)
	}
	if s.field.Len() != 0 {
		t.Fatalf("pair should have retired, %d left", s.field.Len())
	}
	if len(s.scored) != 0 {
		t.Errorf("retired ids should be pruned from the scored set, got %v", s.scored)
	}
}

func TestRestartResetsRound(t *testing.T) {
	s := newTestSession(t)
	s.highScore = 3
	toPlay(s)
	s.score = 5
	s.travel = 100
	s.scored.Add(99)
	s.actor.CycleColor()
	placePair(s, 120, 160)
	s.Update(idle(), frameMs)
	if s.Phase() != PhaseGameOver {
		t.Fatal("setup should end the round")
	}
	if s.HighScore() != 5 || !s.newHigh {
		t.Errorf("high score should become max(3, 5), got %d", s.HighScore())
	}

	s.Update(press(core.ActionRestart), frameMs)
	if s.Phase() != PhaseGameOver {
		t.Fatal("restart must be ignored until the buttons are active")
	}

	for i := 0; i < 500 && !s.ButtonsActive(); i++ {
		s.Update(idle(), frameMs)
	}
	if !s.ButtonsActive() {
		t.Fatal("buttons never became active")
	}
	if s.plaque.Shown() != 5 || s.plaque.Medal() != MedalNone {
		t.Errorf("plaque should show the final score, got %d (%s)", s.plaque.Shown(), s.plaque.Medal())
	}

	events := s.Update(press(core.ActionRestart), frameMs)
	if s.Phase() != PhaseReady {
		t.Fatalf("restart should go to READY, got %s", s.Phase())
	}
	if !slices.Contains(events, core.EventRestart) || !slices.Contains(events, core.EventSwoosh) {
		t.Errorf("restart should raise Restart and Swoosh, got %v", events)
	}
	if s.Score() != 0 || s.travel != 0 || s.field.Len() != 0 || len(s.scored) != 0 {
		t.Errorf("round state not reset: score=%d travel=%v obstacles=%d scored=%d",
			s.Score(), s.travel, s.field.Len(), len(s.scored))
	}
	// the restart frame already bobs once
	if !near(s.actor.Y, 360, 2) || s.actor.Velocity != 0 {
		t.Errorf("bird should be back near y0 at rest, got y=%v v=%v", s.actor.Y, s.actor.Velocity)
	}
	if s.HighScore() != 5 {
		t.Errorf("high score should survive the reset, got %d", s.HighScore())
	}
	if s.actor.Color != 1 {
		t.Error("cosmetic choices should survive the reset")
	}
}

func TestRestartButtonClick(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	s.field.Reset()
	s.actor.Y = 700
	s.Update(idle(), frameMs)
	for i := 0; i < 500 && !s.ButtonsActive(); i++ {
		s.Update(idle(), frameMs)
	}

	miss := core.NewInputFrame()
	miss.SetClick(5, 5)
	s.Update(miss, frameMs)
	if s.Phase() != PhaseGameOver {
		t.Fatal("a click outside the buttons should do nothing")
	}

	board := core.NewInputFrame()
	bx, by := s.LeaderboardButton().Center()
	board.SetClick(bx, by)
	if events := s.Update(board, frameMs); !slices.Contains(events, core.EventLeaderboard) {
		t.Errorf("leaderboard click should raise Leaderboard, got %v", events)
	}

	hit := core.NewInputFrame()
	rx, ry := s.RestartButton().Center()
	hit.SetClick(rx, ry)
	s.Update(hit, frameMs)
	if s.Phase() != PhaseReady {
		t.Errorf("restart click should go to READY, got %s", s.Phase())
	}
}

func TestCosmeticInputOutsidePlay(t *testing.T) {
	s := newTestSession(t)
	s.enterReady()
	s.Update(idle(), frameMs)
	y, v := s.actor.Y, s.actor.Velocity

	in := core.NewInputFrame()
	in.Set(core.ActionCycleColor)
	in.Set(core.ActionCycleScene)
	events := s.Update(in, 0)
	if s.actor.Color != 1 || s.scene != 1 {
		t.Errorf("color=%d scene=%d, expected 1/1", s.actor.Color, s.scene)
	}
	if !slices.Contains(events, core.EventPop) || !slices.Contains(events, core.EventSwoosh) {
		t.Errorf("cosmetic changes should raise Pop and Swoosh, got %v", events)
	}
	if s.actor.Y != y || s.actor.Velocity != v || s.Phase() != PhaseReady {
		t.Error("cosmetic input must not touch the simulation")
	}

	s.Update(press(core.ActionFlap), frameMs)
	s.Update(press(core.ActionCycleColor), frameMs)
	if s.actor.Color != 1 {
		t.Error("cosmetic input is ignored during PLAY")
	}
}

func TestPause(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	s.Update(press(core.ActionPause), frameMs)
	if !s.Paused() {
		t.Fatal("P should pause PLAY")
	}
	y := s.actor.Y
	x := s.field.Obstacles()[0].X
	for i := 0; i < 10; i++ {
		s.Update(press(core.ActionFlap), frameMs)
	}
	if s.actor.Y != y || s.field.Obstacles()[0].X != x {
		t.Error("nothing may move while paused")
	}
	s.Update(press(core.ActionPause), frameMs)
	if s.Paused() {
		t.Error("P should resume")
	}
}

func TestRefusedPhaseChange(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	s.score = 4
	s.events = s.events[:0]

	if err := s.enterReady(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("PLAY -> READY should be refused, got %v", err)
	}
	if s.Phase() != PhasePlay || s.Score() != 4 {
		t.Errorf("a refused change must not reset the round, phase=%s score=%d", s.Phase(), s.Score())
	}
	if !errors.Is(s.Err(), ErrInvalidTransition) {
		t.Errorf("Err should keep the refused change, got %v", s.Err())
	}

	s.restart()
	if len(s.events) != 0 {
		t.Errorf("a refused restart should raise no events, got %v", s.events)
	}
	if err := s.startPlay(); err == nil || s.field.Len() != 2 {
		t.Errorf("PLAY -> PLAY should be refused without spawning, obstacles=%d", s.field.Len())
	}
}

func TestFrameClamp(t *testing.T) {
	s := newTestSession(t)
	toPlay(s)
	x := s.field.Obstacles()[0].X
	s.Update(idle(), 5000)
	moved := x - s.field.Obstacles()[0].X
	if !near(moved, s.cfg.Physics.WorldSpeed*s.cfg.World.MaxFrameMs, 1e-9) {
		t.Errorf("a long frame should be clamped, obstacles moved %v", moved)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(config.DefaultFlappyConfig(), 12345, 0)
		s.enterReady()
		for i := 0; i < 600; i++ {
			in := idle()
			if i%18 == 0 {
				in.Set(core.ActionFlap)
			}
			s.Update(in, frameMs)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Phase != b.Phase || a.Actor.Y != b.Actor.Y {
		t.Errorf("runs diverged: %+v vs %+v", a.Actor, b.Actor)
	}
	if !slices.Equal(a.Obstacles, b.Obstacles) {
		t.Error("obstacle layouts diverged")
	}
}

func count(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}
