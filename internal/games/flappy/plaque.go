package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Medal is awarded on the score plaque.
type Medal uint8

const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
	MedalPlatinum
)

func (m Medal) String() string {
	switch m {
	case MedalBronze:
		return "bronze"
	case MedalSilver:
		return "silver"
	case MedalGold:
		return "gold"
	case MedalPlatinum:
		return "platinum"
	default:
		return "none"
	}
}

// MedalFor returns the best medal the score qualifies for.
func MedalFor(score int, m config.FlappyMedals) Medal {
	switch {
	case score >= m.Platinum:
		return MedalPlatinum
	case score >= m.Gold:
		return MedalGold
	case score >= m.Silver:
		return MedalSilver
	case score >= m.Bronze:
		return MedalBronze
	default:
		return MedalNone
	}
}

// Plaque is the end-of-round summary: it slides in, then counts the score up.
type Plaque struct {
	score   int
	best    int
	shown   int
	newBest bool
	medal   Medal

	slide      float64 // 0 hidden, 1 in place
	countTimer float64
	slideMs    float64
	countMs    float64
}

// NewPlaque creates a hidden plaque.
func NewPlaque(t config.FlappyTiming) *Plaque {
	return &Plaque{slideMs: t.PlaqueSlideMs, countMs: t.PlaqueCountMs}
}

// Prepare fills in the round's results and restarts the animation.
func (p *Plaque) Prepare(score, best int, newBest bool, medal Medal) {
	p.Reset()
	p.score = score
	p.best = best
	p.newBest = newBest
	p.medal = medal
}

// Reset hides the plaque.
func (p *Plaque) Reset() {
	*p = Plaque{slideMs: p.slideMs, countMs: p.countMs}
}

// Update advances the slide-in and the count-up by dt milliseconds.
func (p *Plaque) Update(dt float64) {
	if p.slide < 1 {
		if p.slideMs <= 0 {
			p.slide = 1
		} else {
			p.slide = min(p.slide+dt/p.slideMs, 1)
		}
		return
	}
	if p.shown >= p.score {
		return
	}
	if p.countMs <= 0 {
		p.shown = p.score
		return
	}
	p.countTimer += dt
	for p.countTimer >= p.countMs && p.shown < p.score {
		p.countTimer -= p.countMs
		p.shown++
	}
}

// Done reports whether the plaque is in place with the full score shown.
func (p *Plaque) Done() bool {
	return p.slide >= 1 && p.shown >= p.score
}

// Slide returns the slide-in progress in [0, 1].
func (p *Plaque) Slide() float64 { return p.slide }

// Shown returns the score currently displayed by the count-up.
func (p *Plaque) Shown() int { return p.shown }

// Best returns the high score displayed on the plaque.
func (p *Plaque) Best() int { return p.best }

// NewBest reports whether the round beat the previous high score.
func (p *Plaque) NewBest() bool { return p.newBest }

// Medal returns the medal awarded for the round.
func (p *Plaque) Medal() Medal { return p.medal }
