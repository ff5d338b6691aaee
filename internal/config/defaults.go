package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappydof.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			HalfSize:  540,
			HalfWidth: 960,
		},
		Movement: MovementConfig{
			MaxSpeed: 2000,
			MinSpeed: 1500,
			Gravity:  6000,
		},
		Pillar: PillarConfig{
			Velocity: 1000,
			Span:     500,
			SpawnX:   960,
			ScaleX:   1,
			ScaleY:   1,
			Despawn:  true,
			DespawnX: -1100,
		},
		Spawn: SpawnConfig{
			Interval: Duration(2000 * time.Millisecond),
		},
		Player: PlayerConfig{
			StartPos:      540,
			StartVelocity: 0,
			SpriteWidth:   64,
			SpriteHeight:  64,
		},
		Timing: TimingConfig{
			TickRate:         64,
			FrameRate:        120,
			MaxTicksPerFrame: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
