package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the bird. Its x is fixed; y and velocity are integrated in
// PLAY and GAMEOVER only. The position is the centre of the sprite.
type Actor struct {
	X, Y        float64
	Velocity    float64 // px/ms, positive is downwards
	Accel       float64 // px/ms^2
	MaxVelocity float64
	JumpSpeed   float64
	Angle       float64 // degrees, positive lifts the beak

	prevJumpY float64
	y0        float64
	idleTime  float64

	Frame     int
	frameTime float64
	Color     int

	mask *Mask
	cfg  config.FlappyActor
}

// NewActor creates the bird centred vertically in the viewport.
func NewActor(cfg config.FlappyConfig) *Actor {
	a := &Actor{
		X:           cfg.Actor.X,
		Accel:       cfg.Physics.Gravity,
		MaxVelocity: cfg.Physics.MaxVelocity,
		JumpSpeed:   cfg.Physics.JumpSpeed(),
		y0:          cfg.World.Height / 2,
		mask:        NewEllipseMask(cfg.Actor.Width, cfg.Actor.Height),
		cfg:         cfg.Actor,
	}
	a.Reset()
	return a
}

// Reset puts the bird back at its reference elevation, keeping its color.
func (a *Actor) Reset() {
	a.Y = a.y0
	a.Velocity = 0
	a.Angle = 0
	a.prevJumpY = a.y0
	a.idleTime = 0
	a.Frame = 0
	a.frameTime = 0
}

// Integrate advances velocity and elevation by dt milliseconds (explicit Euler)
// and updates the tilt.
func (a *Actor) Integrate(dt float64) {
	a.Velocity = core.ClampF(a.Velocity+a.Accel*dt, -a.MaxVelocity, a.MaxVelocity)
	a.Y += a.Velocity * dt
	a.Angle = core.Remap(a.Y, a.prevJumpY, a.prevJumpY+a.cfg.TiltWindow, a.cfg.TiltUp, a.cfg.TiltDown)
}

// Fall integrates only while the bird is above groundY and reports whether it did.
func (a *Actor) Fall(dt, groundY float64) bool {
	if a.Y >= groundY {
		return false
	}
	a.Integrate(dt)
	return true
}

// Impulse makes the bird flap.
func (a *Actor) Impulse() {
	a.Velocity = -a.JumpSpeed
	a.prevJumpY = a.Y
}

// Bob moves the bird along the idle sine wave used before play starts.
// Velocity is left untouched.
func (a *Actor) Bob(dt float64) {
	period := a.cfg.IdlePeriodMs
	a.idleTime = math.Mod(a.idleTime+dt, period)
	theta := 2 * math.Pi * a.idleTime / period
	a.Y = a.y0 + a.cfg.IdleAmplitude*math.Sin(theta)
	a.Angle = -a.cfg.IdleTilt * math.Cos(theta)
}

// Animate advances the wing-flap frame.
func (a *Actor) Animate(dt float64) {
	a.frameTime += dt
	for a.frameTime >= a.cfg.AnimationMs {
		a.frameTime -= a.cfg.AnimationMs
		a.Frame = (a.Frame + 1) % a.cfg.Frames
	}
}

// CycleColor switches to the next cosmetic variant.
func (a *Actor) CycleColor() {
	a.Color = (a.Color + 1) % a.cfg.Colors
}

// Freeze stops the bird where it is, snapped to its rendered pixel.
func (a *Actor) Freeze() {
	a.Velocity = 0
	a.X = math.Round(a.X)
	a.Y = math.Round(a.Y)
}

// Bounds returns the box around the rotated sprite.
func (a *Actor) Bounds() core.RectF {
	return a.mask.Bounds(a.X, a.Y, a.Angle)
}

// Overlaps reports pixel-level overlap with r.
func (a *Actor) Overlaps(r core.RectF) bool {
	return a.mask.Overlaps(a.X, a.Y, a.Angle, r)
}

// Covers reports whether the world point lies on the rotated sprite.
func (a *Actor) Covers(px, py float64) bool {
	return a.mask.ContainsPoint(a.X, a.Y, a.Angle, px, py)
}

// Left returns the left edge of the rotated sprite.
func (a *Actor) Left() float64 {
	return a.Bounds().X
}
