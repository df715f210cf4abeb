package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sound identifies one synthesized effect.
type Sound int

const (
	SoundWing Sound = iota
	SoundPoint
	SoundHit
	SoundDie
	SoundSwoosh
	SoundPop
	SoundJingle
	SoundFanfare
)

func (s Sound) String() string {
	switch s {
	case SoundWing:
		return "wing"
	case SoundPoint:
		return "point"
	case SoundHit:
		return "hit"
	case SoundDie:
		return "die"
	case SoundSwoosh:
		return "swoosh"
	case SoundPop:
		return "pop"
	case SoundJingle:
		return "jingle"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}

// SoundFor returns the effect raised by a game event, if it has one.
func SoundFor(e core.Event) (Sound, bool) {
	switch e {
	case core.EventFlap:
		return SoundWing, true
	case core.EventPoint:
		return SoundPoint, true
	case core.EventHit:
		return SoundHit, true
	case core.EventFall:
		return SoundDie, true
	case core.EventSwoosh:
		return SoundSwoosh, true
	case core.EventPop:
		return SoundPop, true
	case core.EventGameOver:
		return SoundJingle, true
	case core.EventNewHighScore:
		return SoundFanfare, true
	default:
		return 0, false
	}
}

// Durations of the effects.
const (
	wingDuration   = 90 * time.Millisecond
	pointNote      = 70 * time.Millisecond
	hitDuration    = 140 * time.Millisecond
	hitCrack       = 30 * time.Millisecond
	dieDuration    = 450 * time.Millisecond
	swooshDuration = 260 * time.Millisecond
	popDuration    = 45 * time.Millisecond
	jingleNote     = 140 * time.Millisecond
	fanfareNote    = 90 * time.Millisecond
)

// NewSound builds a fresh streamer for s at full volume.
func NewSound(s Sound) beep.Streamer {
	switch s {
	case SoundWing:
		osc := NewSweep(380, 720, wingDuration, WaveTriangle, SampleRate)
		return NewEnvelope(osc, wingDuration, 10*time.Millisecond, 60*time.Millisecond, SampleRate)
	case SoundPoint:
		return beep.Seq(
			tone(987.77, pointNote, WaveSquare),
			tone(1318.51, 2*pointNote, WaveSquare),
		)
	case SoundHit:
		crack := NewEnvelope(NewOscillator(0, hitCrack, WaveNoise, SampleRate), hitCrack, 0, hitCrack/2, SampleRate)
		thud := NewEnvelope(NewSweep(160, 60, hitDuration-hitCrack, WaveSquare, SampleRate), hitDuration-hitCrack, 0, hitDuration/2, SampleRate)
		return beep.Seq(newVolume(crack, 0.6), newVolume(thud, 0.5))
	case SoundDie:
		osc := NewSweep(720, 140, dieDuration, WaveSaw, SampleRate)
		return NewEnvelope(osc, dieDuration, 5*time.Millisecond, 120*time.Millisecond, SampleRate)
	case SoundSwoosh:
		noise := NewOscillator(0, swooshDuration, WaveNoise, SampleRate)
		return NewEnvelope(noise, swooshDuration, 110*time.Millisecond, 150*time.Millisecond, SampleRate)
	case SoundPop:
		return tone(1250, popDuration, WaveSine)
	case SoundJingle:
		return melody([]float64{523.25, 440, 349.23, 261.63}, jingleNote, WaveSquare)
	case SoundFanfare:
		return melody([]float64{523.25, 659.25, 783.99, 1046.5}, fanfareNote, WaveSquare)
	default:
		return nil
	}
}

func melody(freqs []float64, note time.Duration, wave WaveType) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, note, wave)
	}
	return beep.Seq(notes...)
}

// musicGenerator plays an endless bass-and-lead loop of eight steps.
type musicGenerator struct {
	rate beep.SampleRate
	pos  int
	step int
}

var (
	musicBass = [8]float64{110, 110, 146.83, 146.83, 130.81, 130.81, 98, 98}
	musicLead = [8]float64{440, 523.25, 587.33, 523.25, 659.25, 587.33, 523.25, 493.88}
)

// NewMusic returns the endless background loop.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{rate: rate, step: rate.N(250 * time.Millisecond)}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := (g.pos / g.step) % len(musicBass)
		inBeat := float64(g.pos%g.step) / float64(g.step)
		t := float64(g.pos) / float64(g.rate)

		env := math.Exp(-inBeat * 4)
		bass := 0.25 * math.Sin(2*math.Pi*musicBass[beat]*t)
		lead := 0.12 * env * math.Sin(2*math.Pi*musicLead[beat]*t)

		samples[i][0] = bass + lead
		samples[i][1] = bass + lead
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
