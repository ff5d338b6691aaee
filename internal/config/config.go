// Package config provides YAML-based simulation configuration loading.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains every tunable of a simulation session.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Movement MovementConfig `yaml:"movement"`
	Pillar   PillarConfig   `yaml:"pillar"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Player   PlayerConfig   `yaml:"player"`
	Timing   TimingConfig   `yaml:"timing"`
}

// ScreenConfig defines the play-field extents in world units.
type ScreenConfig struct {
	HalfSize  float32 `yaml:"half_size"`  // Half the vertical extent (HALF_SCREEN_SIZE)
	HalfWidth float32 `yaml:"half_width"` // Half the horizontal extent, used by hosts
}

// MovementConfig defines the player's gravity and jump speeds.
type MovementConfig struct {
	MaxSpeed float32 `yaml:"max_speed"`
	MinSpeed float32 `yaml:"min_speed"`
	Gravity  float32 `yaml:"gravity"`
}

// PillarConfig defines how pillars scroll, spawn and leave play.
type PillarConfig struct {
	Velocity float32 `yaml:"velocity"`  // Scroll speed toward the player
	Span     float32 `yaml:"span"`      // Vertical half-gap between the two pillars of a pair
	SpawnX   float32 `yaml:"spawn_x"`   // Horizontal spawn position
	ScaleX   float32 `yaml:"scale_x"`   // Collision half-extent on x
	ScaleY   float32 `yaml:"scale_y"`   // Collision half-extent on y
	Despawn  bool    `yaml:"despawn"`   // Remove pillars once they pass DespawnX
	DespawnX float32 `yaml:"despawn_x"` // At most LatestDespawnX
}

// SpawnConfig defines the repeating spawn timer.
type SpawnConfig struct {
	Interval Duration `yaml:"interval"`
}

// PlayerConfig defines the player's initial state and sprite metadata.
type PlayerConfig struct {
	StartPos      float32 `yaml:"start_pos"`
	StartVelocity float32 `yaml:"start_velocity"`
	SpriteWidth   float32 `yaml:"sprite_width"`
	SpriteHeight  float32 `yaml:"sprite_height"`
}

// TimingConfig defines the fixed simulation rate and the display rate.
type TimingConfig struct {
	TickRate         int `yaml:"tick_rate"`           // Fixed ticks per second
	FrameRate        int `yaml:"frame_rate"`          // Display frames per second
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"` // Catch-up cap per frame
}

// FixedDelta returns the duration of one fixed tick.
func (t TimingConfig) FixedDelta() time.Duration {
	if t.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.TickRate)
}

// Duration is a time.Duration that reads and writes as a YAML string ("2s").
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("config: duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Validate checks the configuration for values the simulation cannot run with.
// Sprite dimensions of zero are allowed here; the simulation reports them as
// missing asset metadata.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.HalfSize <= 0 {
		errs = append(errs, fmt.Errorf("config: screen.half_size must be positive, got %v", c.Screen.HalfSize))
	}
	if c.Pillar.Span < 0 {
		errs = append(errs, fmt.Errorf("config: pillar.span must not be negative, got %v", c.Pillar.Span))
	}
	if c.Pillar.Span >= c.Screen.HalfSize {
		errs = append(errs, fmt.Errorf("config: pillar.span %v leaves no spawn range within half_size %v", c.Pillar.Span, c.Screen.HalfSize))
	}
	if c.Pillar.ScaleX < 0 || c.Pillar.ScaleY < 0 {
		errs = append(errs, errors.New("config: pillar scale must not be negative"))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("config: spawn.interval must be positive, got %v", c.Spawn.Interval.Std()))
	}
	if c.Player.SpriteWidth < 0 || c.Player.SpriteHeight < 0 {
		errs = append(errs, errors.New("config: player sprite dimensions must not be negative"))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.frame_rate must be positive, got %d", c.Timing.FrameRate))
	}
	if c.Pillar.Despawn && c.Pillar.Velocity > 0 {
		if limit := c.LatestDespawnX(); c.Pillar.DespawnX > limit {
			errs = append(errs, fmt.Errorf("config: pillar.despawn_x %v removes pillars before the next pair spawns; must be at most %v", c.Pillar.DespawnX, limit))
		}
	}
	if c.Timing.MaxTicksPerFrame < 0 {
		errs = append(errs, fmt.Errorf("config: timing.max_ticks_per_frame must not be negative, got %d", c.Timing.MaxTicksPerFrame))
	}

	return errors.Join(errs...)
}

// LatestDespawnX returns the largest despawn position that keeps a pillar pair
// live until the next pair spawns. The spawn timer fires on the first tick at
// or past the interval, so a pair travels for at most ceil(interval/dt) ticks.
func (c Config) LatestDespawnX() float32 {
	step := c.Timing.FixedDelta()
	interval := c.Spawn.Interval.Std()
	if step <= 0 || interval <= 0 {
		return c.Pillar.SpawnX
	}
	ticks := (interval + step - 1) / step
	travel := float64(c.Pillar.Velocity) * float64(ticks) * step.Seconds()
	return c.Pillar.SpawnX - float32(travel)
}

// SpriteSize reports the player sprite dimensions. ok is false when the
// metadata is absent.
func (c Config) SpriteSize() (w, h float32, ok bool) {
	if c.Player.SpriteWidth <= 0 || c.Player.SpriteHeight <= 0 {
		return 0, 0, false
	}
	return c.Player.SpriteWidth, c.Player.SpriteHeight, true
}
