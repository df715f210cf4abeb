package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalidConfig is matched by every error Validate and ApplyPreset return.
var ErrInvalidConfig = errors.New("invalid configuration")

// presetScaling holds the multipliers a preset applies to the loaded values.
type presetScaling struct {
	gap   float64
	speed float64
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {gap: 1.2, speed: 0.85},
	DifficultyNormal: {gap: 1.0, speed: 1.0},
	DifficultyHard:   {gap: 0.8, speed: 1.2},
}

// Presets returns the known preset names, easiest first.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ApplyPreset scales gap height and scroll speeds for a difficulty preset.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	s, ok := presets[preset]
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q: %w", preset, ErrInvalidConfig)
	}
	cfg.Obstacles.GapHeight *= s.gap
	cfg.Physics.WorldSpeed *= s.speed
	cfg.Physics.BackdropSpeed *= s.speed
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg FlappyConfig) error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", cfg.World.Width},
		{"world.height", cfg.World.Height},
		{"world.max_frame_ms", cfg.World.MaxFrameMs},
		{"physics.gravity", cfg.Physics.Gravity},
		{"physics.max_velocity", cfg.Physics.MaxVelocity},
		{"physics.jump_multiplier", cfg.Physics.JumpMultiplier},
		{"physics.world_speed", cfg.Physics.WorldSpeed},
		{"actor.tilt_window", cfg.Actor.TiltWindow},
		{"actor.idle_period_ms", cfg.Actor.IdlePeriodMs},
		{"actor.animation_ms", cfg.Actor.AnimationMs},
		{"obstacles.width", cfg.Obstacles.Width},
		{"obstacles.gap_height", cfg.Obstacles.GapHeight},
		{"obstacles.spacing", cfg.Obstacles.Spacing},
		{"scroll.backdrop_tile_width", cfg.Scroll.BackdropTileWidth},
		{"scroll.ground_tile_width", cfg.Scroll.GroundTileWidth},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.v, ErrInvalidConfig)
		}
	}

	if cfg.Physics.BackdropSpeed < 0 || cfg.Obstacles.MinSpan < 0 {
		return fmt.Errorf("config: backdrop speed and min span must not be negative: %w", ErrInvalidConfig)
	}
	if cfg.Actor.Width <= 0 || cfg.Actor.Height <= 0 || cfg.Actor.Frames <= 0 || cfg.Actor.Colors <= 0 {
		return fmt.Errorf("config: actor size, frames and colors must be positive: %w", ErrInvalidConfig)
	}
	if cfg.Scroll.Scenes <= 0 {
		return fmt.Errorf("config: scroll.scenes must be positive: %w", ErrInvalidConfig)
	}
	if cfg.World.GroundOffset < 0 || cfg.World.GroundOffset >= cfg.World.Height {
		return fmt.Errorf("config: ground_offset %v outside viewport height %v: %w",
			cfg.World.GroundOffset, cfg.World.Height, ErrInvalidConfig)
	}
	if lo, hi := cfg.Obstacles.GapRange(cfg.World.GroundY()); lo > hi {
		return fmt.Errorf("config: gap %v with min span %v does not fit above the ground: %w",
			cfg.Obstacles.GapHeight, cfg.Obstacles.MinSpan, ErrInvalidConfig)
	}
	// One frame must never move a layer by a full tile, or the single wrap per
	// frame would leave a hole.
	maxStep := cfg.Physics.WorldSpeed * cfg.World.MaxFrameMs
	if maxStep >= cfg.Scroll.GroundTileWidth || cfg.Physics.BackdropSpeed*cfg.World.MaxFrameMs >= cfg.Scroll.BackdropTileWidth {
		return fmt.Errorf("config: a %vms frame scrolls a full tile: %w", cfg.World.MaxFrameMs, ErrInvalidConfig)
	}

	for name, v := range map[string]string{
		"hud.score_justify": cfg.HUD.ScoreJustify,
		"hud.label_justify": cfg.HUD.LabelJustify,
	} {
		if _, err := core.ParseJustify(v); err != nil {
			return fmt.Errorf("config: %s: %w (%w)", name, err, ErrInvalidConfig)
		}
	}

	m := cfg.Medals
	if !(m.Bronze <= m.Silver && m.Silver <= m.Gold && m.Gold <= m.Platinum) {
		return fmt.Errorf("config: medal thresholds must be ascending: %w", ErrInvalidConfig)
	}
	return nil
}
