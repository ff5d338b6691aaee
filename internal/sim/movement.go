package sim

import "github.com/vovakirdan/flappydof/internal/config"

// The explicit float32 conversions force rounding after each operation so
// results do not depend on whether the platform fuses multiply-add.

// IntegratePlayer applies gravity and then moves the player by its new
// velocity. There is no terminal velocity.
func IntegratePlayer(b *KinematicBody, gravity, dt float32) {
	b.Velocity -= float32(gravity * dt)
	b.Pos += float32(b.Velocity * dt)
}

// ScrollPillar moves a pillar toward the player at the configured speed.
func ScrollPillar(b *KinematicBody, velocity, dt float32) {
	b.Pos -= float32(velocity * dt)
}

// Jump applies the tiered jump impulse. Falling players get a fixed upward
// speed, players faster than MaxSpeed are clamped, everyone else gets an
// additive boost.
func Jump(b *KinematicBody, m config.MovementConfig) {
	switch {
	case b.Velocity < 0:
		b.Velocity = m.MinSpeed
	case b.Velocity > m.MaxSpeed:
		b.Velocity = m.MaxSpeed
	default:
		b.Velocity += m.MinSpeed
	}
}
