package sim

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
)

// Handle identifies a body in a Store. Handles are never reused; the zero
// Handle is never issued.
type Handle uint32

// Role tags a body as the player or a pillar. It is fixed at creation.
type Role uint8

const (
	RolePlayer Role = iota + 1
	RolePillar
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RolePillar:
		return "pillar"
	default:
		return "unknown"
	}
}

// KinematicBody is the authoritative state of a body along its single
// simulated axis: vertical for the player, horizontal for pillars.
type KinematicBody struct {
	Pos      float32
	Velocity float32
}

// Body is a stored entity.
type Body struct {
	Handle    Handle
	Role      Role
	Kinematic KinematicBody
	// Cross is the fixed coordinate on the axis the body does not move along:
	// the player's x, or a pillar's vertical center.
	Cross float32
}

// Store is an arena of bodies addressed by stable handles. Iteration follows
// creation order.
type Store struct {
	bodies  []Body
	index   *intmap.Map[Handle, int]
	next    Handle
	players int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		bodies: make([]Body, 0, 16),
		index:  intmap.New[Handle, int](16),
	}
}

// Spawn adds a body and returns its handle.
func (s *Store) Spawn(role Role, kin KinematicBody, cross float32) Handle {
	s.next++
	h := s.next
	s.index.Put(h, len(s.bodies))
	s.bodies = append(s.bodies, Body{
		Handle:    h,
		Role:      role,
		Kinematic: kin,
		Cross:     cross,
	})
	if role == RolePlayer {
		s.players++
	}
	return h
}

// Get returns the body for h. The pointer is valid until the next Spawn or
// removal.
func (s *Store) Get(h Handle) (*Body, bool) {
	i, ok := s.index.Get(h)
	if !ok {
		return nil, false
	}
	return &s.bodies[i], true
}

// Player returns the single player body.
func (s *Store) Player() (*Body, error) {
	if s.players != 1 {
		if s.players == 0 {
			return nil, missingEntity("player")
		}
		return nil, fmt.Errorf("%w: expected exactly one player, found %d", ErrMissingEntity, s.players)
	}
	for i := range s.bodies {
		if s.bodies[i].Role == RolePlayer {
			return &s.bodies[i], nil
		}
	}
	return nil, missingEntity("player")
}

// Remove deletes the body for h. It reports whether the body existed.
func (s *Store) Remove(h Handle) bool {
	if _, ok := s.index.Get(h); !ok {
		return false
	}
	return s.RemoveFunc(func(b *Body) bool { return b.Handle == h }) == 1
}

// RemoveFunc deletes every body for which drop returns true, keeping the
// remaining bodies in creation order. It returns the number removed.
func (s *Store) RemoveFunc(drop func(*Body) bool) int {
	kept := s.bodies[:0]
	removed := 0
	for i := range s.bodies {
		b := s.bodies[i]
		if drop(&b) {
			s.index.Del(b.Handle)
			if b.Role == RolePlayer {
				s.players--
			}
			removed++
			continue
		}
		kept = append(kept, b)
	}
	clear(s.bodies[len(kept):])
	s.bodies = kept

	if removed > 0 {
		for i := range s.bodies {
			s.index.Put(s.bodies[i].Handle, i)
		}
	}
	return removed
}

// All iterates over every body in creation order.
func (s *Store) All() iter.Seq[*Body] {
	return func(yield func(*Body) bool) {
		for i := range s.bodies {
			if !yield(&s.bodies[i]) {
				return
			}
		}
	}
}

// WithRole iterates over the bodies tagged with role.
func (s *Store) WithRole(role Role) iter.Seq[*Body] {
	return func(yield func(*Body) bool) {
		for i := range s.bodies {
			if s.bodies[i].Role != role {
				continue
			}
			if !yield(&s.bodies[i]) {
				return
			}
		}
	}
}

// Len returns the number of live bodies.
func (s *Store) Len() int {
	return len(s.bodies)
}

// Count returns the number of live bodies tagged with role.
func (s *Store) Count(role Role) int {
	if role == RolePlayer {
		return s.players
	}
	n := 0
	for i := range s.bodies {
		if s.bodies[i].Role == role {
			n++
		}
	}
	return n
}
