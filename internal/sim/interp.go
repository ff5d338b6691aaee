package sim

import "github.com/vovakirdan/flappydof/internal/core"

// Transform is the display position of a body for one frame. It is derived
// and never fed back into the simulation.
type Transform struct {
	Handle Handle
	Role   Role
	X, Y   float32
}

// Interpolate returns the body's position a fraction alpha of the way to
// where it will be after the next fixed tick of length dt.
func Interpolate(b KinematicBody, dt, alpha float32) float32 {
	future := b.Pos + float32(b.Velocity*dt)
	return core.Lerp(b.Pos, future, alpha)
}

// TransformOf maps a body to its display transform. The player moves on the
// vertical axis and pillars on the horizontal one.
func TransformOf(b *Body, dt, alpha float32) Transform {
	pos := Interpolate(b.Kinematic, dt, alpha)
	t := Transform{Handle: b.Handle, Role: b.Role}
	switch b.Role {
	case RolePlayer:
		t.X, t.Y = b.Cross, pos
	default:
		t.X, t.Y = pos, b.Cross
	}
	return t
}
