package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player reacts to game events with sound.
type Player interface {
	Play(e core.Event)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(core.Event) {}
func (Nop) Close()          {}

// SoundManager plays synthesized effects through the system speaker. Until
// Initialize succeeds every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.FlappyAudio
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a silent manager; call Initialize to open the device.
func NewSoundManager(cfg config.FlappyAudio, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. It does nothing when audio is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio ready", "rate", int(SampleRate))
	return nil
}

// Play starts the sound for e, if any.
func (sm *SoundManager) Play(e core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	switch e {
	case core.EventMusicStart:
		sm.startMusic()
		return
	case core.EventGameOver:
		sm.pauseMusic()
	}

	s, ok := SoundFor(e)
	if !ok {
		return
	}
	st := sm.effect(s)
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// effect builds s scaled by the master and effect volumes.
func (sm *SoundManager) effect(s Sound) beep.Streamer {
	return newVolume(NewSound(s), sm.cfg.Master*sm.cfg.SFX)
}

func (sm *SoundManager) startMusic() {
	if sm.cfg.Music <= 0 {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: newVolume(NewMusic(SampleRate), sm.cfg.Master*sm.cfg.Music)}
	sm.mixer.Add(sm.music)
}

func (sm *SoundManager) pauseMusic() {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Open returns a started SoundManager, or Nop when audio is disabled or no
// output device is available.
func Open(cfg config.FlappyAudio, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	sm := NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		sm.logger.Warn("audio disabled", "err", err)
		return Nop{}
	}
	return sm
}
