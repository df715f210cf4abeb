package flappy

// Fader moves an alpha value in [0, 255] toward a target at a fixed rate per ms.
type Fader struct {
	alpha  float64
	target float64
	rate   float64
}

// NewFader starts at from and heads for to.
func NewFader(from, to, rate float64) *Fader {
	return &Fader{alpha: from, target: to, rate: rate}
}

// Step advances the fade by dt milliseconds and reports whether the target is reached.
func (f *Fader) Step(dt float64) bool {
	d := f.rate * dt
	switch {
	case f.alpha < f.target:
		f.alpha = min(f.alpha+d, f.target)
	case f.alpha > f.target:
		f.alpha = max(f.alpha-d, f.target)
	}
	return f.Done()
}

// Retarget restarts the fade from the current alpha.
func (f *Fader) Retarget(to float64) {
	f.target = to
}

// Reset jumps to from and heads for to.
func (f *Fader) Reset(from, to float64) {
	f.alpha = from
	f.target = to
}

// Alpha returns the current value.
func (f *Fader) Alpha() float64 {
	return f.alpha
}

// Visible reports whether anything would be drawn.
func (f *Fader) Visible() bool {
	return f.alpha > 0
}

// Done reports whether the target has been reached.
func (f *Fader) Done() bool {
	return f.alpha == f.target
}
