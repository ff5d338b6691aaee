package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSpawnAndGet(t *testing.T) {
	s := NewStore()

	p := s.Spawn(RolePlayer, KinematicBody{Pos: 540}, 0)
	a := s.Spawn(RolePillar, KinematicBody{Pos: 960, Velocity: -1000}, 500)
	b := s.Spawn(RolePillar, KinematicBody{Pos: 960, Velocity: -1000}, -500)

	assert.NotEqual(t, Handle(0), p)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Count(RolePlayer))
	assert.Equal(t, 2, s.Count(RolePillar))

	body, ok := s.Get(b)
	require.True(t, ok)
	assert.Equal(t, RolePillar, body.Role)
	assert.Equal(t, float32(-500), body.Cross)

	body, ok = s.Get(a)
	require.True(t, ok)
	body.Kinematic.Pos = 100

	body, _ = s.Get(a)
	assert.Equal(t, float32(100), body.Kinematic.Pos, "Get should return a pointer into the store")
}

func TestStorePlayer(t *testing.T) {
	s := NewStore()

	_, err := s.Player()
	require.ErrorIs(t, err, ErrMissingEntity)

	h := s.Spawn(RolePlayer, KinematicBody{Pos: 1, Velocity: 2}, 0)
	p, err := s.Player()
	require.NoError(t, err)
	assert.Equal(t, h, p.Handle)

	s.Spawn(RolePlayer, KinematicBody{}, 0)
	_, err = s.Player()
	assert.ErrorIs(t, err, ErrMissingEntity, "two players violate the single-player invariant")
}

func TestStoreRemoveKeepsOrderAndHandles(t *testing.T) {
	s := NewStore()
	var handles []Handle
	for i := range 5 {
		handles = append(handles, s.Spawn(RolePillar, KinematicBody{Pos: float32(i)}, 0))
	}

	require.True(t, s.Remove(handles[1]))
	assert.False(t, s.Remove(handles[1]), "removing twice should report false")

	removed := s.RemoveFunc(func(b *Body) bool { return b.Kinematic.Pos == 3 })
	assert.Equal(t, 1, removed)

	var order []float32
	for b := range s.All() {
		order = append(order, b.Kinematic.Pos)
	}
	assert.Equal(t, []float32{0, 2, 4}, order)

	// Surviving handles still resolve after compaction
	body, ok := s.Get(handles[4])
	require.True(t, ok)
	assert.Equal(t, float32(4), body.Kinematic.Pos)

	_, ok = s.Get(handles[3])
	assert.False(t, ok)

	// Handles are never reused
	next := s.Spawn(RolePillar, KinematicBody{}, 0)
	for _, h := range handles {
		assert.NotEqual(t, h, next)
	}
}

func TestStoreWithRole(t *testing.T) {
	s := NewStore()
	s.Spawn(RolePillar, KinematicBody{Pos: 1}, 0)
	s.Spawn(RolePlayer, KinematicBody{Pos: 2}, 0)
	s.Spawn(RolePillar, KinematicBody{Pos: 3}, 0)

	var pillars []float32
	for b := range s.WithRole(RolePillar) {
		pillars = append(pillars, b.Kinematic.Pos)
	}
	assert.Equal(t, []float32{1, 3}, pillars)
}

func TestStoreRemovePlayerUpdatesCount(t *testing.T) {
	s := NewStore()
	s.Spawn(RolePlayer, KinematicBody{}, 0)

	s.RemoveFunc(func(b *Body) bool { return b.Role == RolePlayer })

	assert.Equal(t, 0, s.Count(RolePlayer))
	_, err := s.Player()
	assert.ErrorIs(t, err, ErrMissingEntity)
}
