// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the flappy game.
package config

// FlappyConfig contains all tunables of the game. Distances are in world
// pixels, durations in milliseconds, speeds in pixels per millisecond.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Actor     FlappyActor     `yaml:"actor"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Scroll    FlappyScroll    `yaml:"scroll"`
	Timing    FlappyTiming    `yaml:"timing"`
	HUD       FlappyHUD       `yaml:"hud"`
	Medals    FlappyMedals    `yaml:"medals"`
	Audio     FlappyAudio     `yaml:"audio"`
}

// FlappyWorld defines the virtual viewport.
type FlappyWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // ground strip height below the play area
	MaxFrameMs   float64 `yaml:"max_frame_ms"`  // upper bound for a single frame's dt
}

// GroundY returns the elevation of the ground line.
func (w FlappyWorld) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`         // px/ms^2
	MaxVelocity    float64 `yaml:"max_velocity"`    // px/ms, symmetric cap
	JumpMultiplier float64 `yaml:"jump_multiplier"` // jump speed = multiplier * cap
	WorldSpeed     float64 `yaml:"world_speed"`     // obstacles and ground, px/ms
	BackdropSpeed  float64 `yaml:"backdrop_speed"`  // parallax backdrop, px/ms
}

// JumpSpeed returns the upward speed applied by a flap.
func (p FlappyPhysics) JumpSpeed() float64 {
	return p.JumpMultiplier * p.MaxVelocity
}

// FlappyActor defines the bird.
type FlappyActor struct {
	X             float64 `yaml:"x"`
	Width         int     `yaml:"width"`  // collision mask width
	Height        int     `yaml:"height"` // collision mask height
	TiltWindow    float64 `yaml:"tilt_window"`
	TiltUp        float64 `yaml:"tilt_up"`   // degrees at the flap elevation
	TiltDown      float64 `yaml:"tilt_down"` // degrees once tilt_window below it
	IdlePeriodMs  float64 `yaml:"idle_period_ms"`
	IdleAmplitude float64 `yaml:"idle_amplitude"`
	IdleTilt      float64 `yaml:"idle_tilt"`
	AnimationMs   float64 `yaml:"animation_ms"`
	Frames        int     `yaml:"frames"`
	Colors        int     `yaml:"colors"`
}

// FlappyObstacles defines pipe geometry and cadence.
type FlappyObstacles struct {
	Width     float64 `yaml:"width"`
	GapHeight float64 `yaml:"gap_height"`
	MinSpan   float64 `yaml:"min_span"` // shortest visible pipe
	Spacing   float64 `yaml:"spacing"`  // travel distance between pairs
}

// GapRange returns the inclusive bounds for a gap centre given the ground line.
func (o FlappyObstacles) GapRange(groundY float64) (lo, hi float64) {
	return o.GapHeight/2 + o.MinSpan, groundY - o.GapHeight/2 - o.MinSpan
}

// FlappyScroll defines the tiled layers.
type FlappyScroll struct {
	BackdropTileWidth float64 `yaml:"backdrop_tile_width"`
	BackdropHeight    float64 `yaml:"backdrop_height"`
	GroundTileWidth   float64 `yaml:"ground_tile_width"`
	Scenes            int     `yaml:"scenes"`
}

// FlappyTiming defines phase timers and fade rates (alpha units per ms, alpha in [0,255]).
type FlappyTiming struct {
	StartDelayMs    float64 `yaml:"start_delay_ms"`
	GetReadyDelayMs float64 `yaml:"get_ready_delay_ms"`
	SplashBeforeMs  float64 `yaml:"splash_before_ms"`
	SplashHoldMs    float64 `yaml:"splash_hold_ms"`
	SplashAfterMs   float64 `yaml:"splash_after_ms"`
	SplashFadeRate  float64 `yaml:"splash_fade_rate"`
	DimmerFadeRate  float64 `yaml:"dimmer_fade_rate"`
	DimmerMaxAlpha  float64 `yaml:"dimmer_max_alpha"`
	OverlayFadeRate float64 `yaml:"overlay_fade_rate"`
	BannerFadeRate  float64 `yaml:"banner_fade_rate"`
	PlaqueSlideMs   float64 `yaml:"plaque_slide_ms"`
	PlaqueCountMs   float64 `yaml:"plaque_count_ms"`
}

// FlappyHUD defines text placement.
type FlappyHUD struct {
	ScoreJustify string `yaml:"score_justify"`
	LabelJustify string `yaml:"label_justify"`
}

// FlappyMedals defines the minimum score for each medal.
type FlappyMedals struct {
	Bronze   int `yaml:"bronze"`
	Silver   int `yaml:"silver"`
	Gold     int `yaml:"gold"`
	Platinum int `yaml:"platinum"`
}

// FlappyAudio defines output levels in [0,1].
type FlappyAudio struct {
	Enabled bool    `yaml:"enabled"`
	Master  float64 `yaml:"master"`
	SFX     float64 `yaml:"sfx"`
	Music   float64 `yaml:"music"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
