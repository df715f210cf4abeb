package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration, tuned for a 480x720
// viewport at 60 frames per second.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:        480,
			Height:       720,
			GroundOffset: 100,
			MaxFrameMs:   100,
		},
		Physics: FlappyPhysics{
			Gravity:        0.0018,
			MaxVelocity:    0.54,
			JumpMultiplier: 2,
			WorldSpeed:     0.21,
			BackdropSpeed:  0.06,
		},
		Actor: FlappyActor{
			X:             150,
			Width:         51,
			Height:        36,
			TiltWindow:    150,
			TiltUp:        20,
			TiltDown:      -90,
			IdlePeriodMs:  3000,
			IdleAmplitude: 50,
			IdleTilt:      45,
			AnimationMs:   75,
			Frames:        3,
			Colors:        3,
		},
		Obstacles: FlappyObstacles{
			Width:     78,
			GapHeight: 180,
			MinSpan:   50,
			Spacing:   275,
		},
		Scroll: FlappyScroll{
			BackdropTileWidth: 240,
			BackdropHeight:    150,
			GroundTileWidth:   48,
			Scenes:            2,
		},
		Timing: FlappyTiming{
			StartDelayMs:    1500,
			GetReadyDelayMs: 1000,
			SplashBeforeMs:  2000,
			SplashHoldMs:    2000,
			SplashAfterMs:   0,
			SplashFadeRate:  0.6,
			DimmerFadeRate:  0.18,
			DimmerMaxAlpha:  100,
			OverlayFadeRate: 1.2,
			BannerFadeRate:  0.3,
			PlaqueSlideMs:   400,
			PlaqueCountMs:   50,
		},
		HUD: FlappyHUD{
			ScoreJustify: "center",
			LabelJustify: "center",
		},
		Medals: FlappyMedals{
			Bronze:   10,
			Silver:   20,
			Gold:     30,
			Platinum: 40,
		},
		Audio: FlappyAudio{
			Enabled: true,
			Master:  1,
			SFX:     1,
			Music:   0.5,
		},
	}
}
