package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	const dt = float32(1.0 / 64.0)
	b := KinematicBody{Pos: 10, Velocity: 64}

	assert.Equal(t, float32(10), Interpolate(b, dt, 0), "alpha 0 is the authoritative position")
	assert.Equal(t, float32(10.5), Interpolate(b, dt, 0.5))
	assert.InDelta(t, 11, Interpolate(b, dt, 0.999), 0.01, "alpha near 1 approaches the next tick")
}

func TestTransformOfAxes(t *testing.T) {
	const dt = float32(1.0 / 64.0)

	player := &Body{Handle: 1, Role: RolePlayer, Kinematic: KinematicBody{Pos: 100, Velocity: -64}, Cross: 0}
	tr := TransformOf(player, dt, 0.5)
	assert.Equal(t, Transform{Handle: 1, Role: RolePlayer, X: 0, Y: 99.5}, tr)

	pillar := &Body{Handle: 2, Role: RolePillar, Kinematic: KinematicBody{Pos: 960, Velocity: -1000}, Cross: 480}
	tr = TransformOf(pillar, dt, 0.5)
	assert.Equal(t, Transform{Handle: 2, Role: RolePillar, X: 952.1875, Y: 480}, tr)
}
