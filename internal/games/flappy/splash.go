package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

type splashStage uint8

const (
	splashBefore splashStage = iota
	splashFadeIn
	splashHold
	splashFadeOut
	splashAfter
	splashDone
)

// Splash is the title card shown once per process: a delay, a fade-in, a hold,
// a fade-out and a final delay.
type Splash struct {
	stage   splashStage
	elapsed float64
	image   *Fader
	before  float64
	hold    float64
	after   float64
}

// NewSplash creates the sequence from the timing config.
func NewSplash(t config.FlappyTiming) *Splash {
	return &Splash{
		image:  NewFader(0, 255, t.SplashFadeRate),
		before: t.SplashBeforeMs,
		hold:   t.SplashHoldMs,
		after:  t.SplashAfterMs,
	}
}

// Update advances the sequence by dt milliseconds.
func (s *Splash) Update(dt float64) {
	switch s.stage {
	case splashBefore:
		s.wait(dt, s.before, splashFadeIn)
	case splashFadeIn:
		if s.image.Step(dt) {
			s.stage = splashHold
		}
	case splashHold:
		s.wait(dt, s.hold, splashFadeOut)
		if s.stage == splashFadeOut {
			s.image.Retarget(0)
		}
	case splashFadeOut:
		if s.image.Step(dt) {
			s.stage = splashAfter
		}
	case splashAfter:
		s.wait(dt, s.after, splashDone)
	}
}

func (s *Splash) wait(dt, limit float64, next splashStage) {
	s.elapsed += dt
	if s.elapsed >= limit {
		s.elapsed = 0
		s.stage = next
	}
}

// Alpha returns the opacity of the title card.
func (s *Splash) Alpha() float64 {
	return s.image.Alpha()
}

// Done reports whether the sequence has finished.
func (s *Splash) Done() bool {
	return s.stage == splashDone
}
