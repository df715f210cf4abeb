package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Session owns all simulation state and runs one frame at a time. It is not
// safe for concurrent use; each frontend drives its own session.
type Session struct {
	cfg     config.FlappyConfig
	rng     *rand.Rand
	groundY float64

	phase    Phase
	paused   bool
	actor    *Actor
	field    *ObstacleField
	backdrop *ScrollLayer
	ground   *ScrollLayer
	scored   ScoredSet

	travel float64 // distance since the last spawn
	warmup float64 // time spent in the start delay
	idle   float64 // time spent in READY before the get-ready overlay

	score     int
	highScore int
	newHigh   bool
	lastHit   Collision
	scene     int

	splash  *Splash
	plaque  *Plaque
	dimmer  *Fader
	overlay *Fader // get-ready card
	banner  *Fader // game-over card
	buttons *Fader

	events []core.Event
	err    error // last refused phase change
}

// NewSession creates a session in SPLASH. highScore seeds the best score,
// typically from storage.
func NewSession(cfg config.FlappyConfig, seed int64, highScore int) *Session {
	t := cfg.Timing
	groundY := cfg.World.GroundY()
	return &Session{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		groundY:   groundY,
		phase:     PhaseSplash,
		actor:     NewActor(cfg),
		field:     NewObstacleField(cfg),
		backdrop:  NewScrollLayer(cfg.World.Width, cfg.Scroll.BackdropTileWidth, groundY-cfg.Scroll.BackdropHeight, cfg.Physics.BackdropSpeed),
		ground:    NewScrollLayer(cfg.World.Width, cfg.Scroll.GroundTileWidth, groundY, cfg.Physics.WorldSpeed),
		scored:    make(ScoredSet),
		highScore: max(highScore, 0),
		splash:    NewSplash(t),
		plaque:    NewPlaque(t),
		dimmer:    NewFader(255, 0, t.DimmerFadeRate),
		overlay:   NewFader(0, 255, t.OverlayFadeRate),
		banner:    NewFader(0, 255, t.BannerFadeRate),
		buttons:   NewFader(0, 255, t.BannerFadeRate),
	}
}

// Update runs one frame of dt milliseconds and returns the events it raised.
func (s *Session) Update(in core.InputFrame, dt float64) []core.Event {
	s.events = s.events[:0]
	dt = core.ClampF(dt, 0, s.cfg.World.MaxFrameMs)

	s.handleInput(in)
	if s.paused {
		return s.flush()
	}

	switch s.phase {
	case PhaseSplash:
		s.updateSplash(dt)
	case PhaseReady:
		s.updateReady(dt)
	case PhasePlay:
		s.updatePlay(dt)
	case PhaseGameOver:
		s.updateGameOver(dt)
	}
	return s.flush()
}

func (s *Session) flush() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	return append([]core.Event(nil), s.events...)
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// setPhase moves to another phase when the table allows it. A refused change
// leaves the phase untouched and is kept for Err.
func (s *Session) setPhase(to Phase) error {
	if err := transition(s.phase, to); err != nil {
		s.err = err
		return err
	}
	s.phase = to
	return nil
}

func (s *Session) handleInput(in core.InputFrame) {
	switch s.phase {
	case PhaseSplash, PhaseReady:
		if in.Has(core.ActionCycleColor) {
			s.actor.CycleColor()
			s.emit(core.EventPop)
		}
		if in.Has(core.ActionCycleScene) {
			s.scene = (s.scene + 1) % s.cfg.Scroll.Scenes
			s.emit(core.EventSwoosh)
		}
		if s.phase == PhaseReady && in.Has(core.ActionFlap) {
			if err := s.startPlay(); err != nil {
				return
			}
			s.actor.Impulse()
			s.emit(core.EventFlap)
		}
	case PhasePlay:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if !s.paused && in.Has(core.ActionFlap) {
			s.actor.Impulse()
			s.emit(core.EventFlap)
		}
	case PhaseGameOver:
		if !s.ButtonsActive() {
			return
		}
		switch {
		case in.Has(core.ActionRestart), in.ClickedIn(s.RestartButton()):
			s.restart()
		case in.Has(core.ActionLeaderboard), in.ClickedIn(s.LeaderboardButton()):
			s.emit(core.EventLeaderboard)
		}
	}
}

// enterReady leaves SPLASH or GAMEOVER with a freshly reset round.
func (s *Session) enterReady() error {
	if err := s.setPhase(PhaseReady); err != nil {
		return err
	}
	s.actor.Reset()
	s.field.Reset()
	s.scored.Clear()
	s.travel = 0
	s.warmup = 0
	s.idle = 0
	s.score = 0
	s.newHigh = false
	s.lastHit = CollisionNone
	s.plaque.Reset()
	s.overlay.Reset(0, 255)
	s.banner.Reset(0, 255)
	s.buttons.Reset(0, 255)
	s.dimmer.Reset(0, 0)
	s.emit(core.EventMusicStart)
	return nil
}

func (s *Session) startPlay() error {
	if err := s.setPhase(PhasePlay); err != nil {
		return err
	}
	s.warmup = 0
	s.travel = 0
	s.field.SpawnPair(s.rng)
	return nil
}

func (s *Session) enterGameOver() error {
	if err := s.setPhase(PhaseGameOver); err != nil {
		return err
	}
	s.paused = false
	if s.score > s.highScore {
		s.highScore = s.score
		s.newHigh = true
		s.emit(core.EventNewHighScore)
	}
	s.plaque.Prepare(s.score, s.highScore, s.newHigh, MedalFor(s.score, s.cfg.Medals))
	s.dimmer.Reset(0, s.cfg.Timing.DimmerMaxAlpha)
	s.emit(core.EventGameOver)
	return nil
}

func (s *Session) restart() {
	if err := s.enterReady(); err != nil {
		return
	}
	s.emit(core.EventSwoosh)
	s.emit(core.EventRestart)
}

func (s *Session) scroll(dt float64) {
	s.backdrop.Advance(dt)
	s.ground.Advance(dt)
}

func (s *Session) updateSplash(dt float64) {
	s.actor.Animate(dt)
	s.actor.Bob(dt)
	s.scroll(dt)
	s.dimmer.Step(dt)
	s.splash.Update(dt)
	if s.splash.Done() {
		s.enterReady()
	}
}

func (s *Session) updateReady(dt float64) {
	s.actor.Animate(dt)
	s.actor.Bob(dt)
	s.scroll(dt)
	if s.idle < s.cfg.Timing.GetReadyDelayMs {
		s.idle += dt
		return
	}
	s.overlay.Step(dt)
}

func (s *Session) updatePlay(dt float64) {
	s.actor.Animate(dt)
	s.actor.Fall(dt, s.groundY)
	s.scroll(dt)
	s.advanceObstacles(dt)

	if s.resolveCollision() {
		return
	}
	s.resolveScore()
}

// advanceObstacles moves pipes and spawns new pairs once the start delay is over.
func (s *Session) advanceObstacles(dt float64) {
	if s.warmup < s.cfg.Timing.StartDelayMs {
		s.warmup += dt
		return
	}
	speed := s.cfg.Physics.WorldSpeed
	s.scored.Forget(s.field.Advance(dt, speed))
	s.travel += speed * dt
	if s.travel > s.cfg.Obstacles.Spacing {
		s.field.SpawnPair(s.rng)
		s.travel = 0
	}
}

// updateGameOver lets the bird drop to the ground while the world stays frozen.
func (s *Session) updateGameOver(dt float64) {
	s.actor.Fall(dt, s.groundY)
	s.dimmer.Step(dt)
	s.plaque.Update(dt)
	if !s.dimmer.Done() || !s.plaque.Done() {
		return
	}
	s.banner.Step(dt)
	s.buttons.Step(dt)
}

// ButtonsActive reports whether the game-over buttons accept input.
func (s *Session) ButtonsActive() bool {
	return s.phase == PhaseGameOver && s.buttons.Alpha() >= 255
}

// PlaqueRect returns the world box of the score plaque once in place.
func (s *Session) PlaqueRect() core.RectF {
	w, h := 260.0, 150.0
	return core.NewRectF((s.cfg.World.Width-w)/2, s.cfg.World.Height*0.35, w, h)
}

// RestartButton returns the world box of the restart button.
func (s *Session) RestartButton() core.RectF {
	p := s.PlaqueRect()
	return core.NewRectF(s.cfg.World.Width/2-120, p.Bottom()+30, 110, 50)
}

// LeaderboardButton returns the world box of the leaderboard button.
func (s *Session) LeaderboardButton() core.RectF {
	p := s.PlaqueRect()
	return core.NewRectF(s.cfg.World.Width/2+10, p.Bottom()+30, 110, 50)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the points of the current round.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.highScore }

// Paused reports whether PLAY is paused.
func (s *Session) Paused() bool { return s.paused }

// Err returns the last phase change the transition table refused, or nil.
func (s *Session) Err() error { return s.err }

// LastHit returns what ended the last round.
func (s *Session) LastHit() Collision { return s.lastHit }
