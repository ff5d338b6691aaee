package sim

import (
	"github.com/vovakirdan/flappydof/internal/core"
)

// Reason explains why a session reached its terminal state.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonCollision
	ReasonOutOfBounds
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// AssetSource supplies the player sprite dimensions.
type AssetSource interface {
	SpriteSize() (w, h float32, ok bool)
}

// Detector tests the player against every pillar and the vertical bounds.
type Detector struct {
	Assets   AssetSource
	HalfSize float32 // Vertical bound; the interval [-HalfSize, HalfSize] is in-bounds
	ScaleX   float32 // Pillar collision half-extent on x
	ScaleY   float32 // Pillar collision half-extent on y
}

// InBounds reports whether pos lies within [-half, half].
func InBounds(pos, half float32) bool {
	return pos >= -half && pos <= half
}

// PlayerBox returns the player's collision box. Its half-extents are the full
// sprite dimensions.
func PlayerBox(b *Body, spriteW, spriteH float32) core.AABB {
	return core.NewAABB(b.Cross, b.Kinematic.Pos, spriteW, spriteH)
}

// PillarBox returns a pillar's collision box.
func PillarBox(b *Body, scaleX, scaleY float32) core.AABB {
	return core.NewAABB(b.Kinematic.Pos, b.Cross, scaleX, scaleY)
}

// Check evaluates termination for the current store contents. Termination is
// only evaluated against live pillars: with no pillars in play nothing ends
// the session. Out-of-bounds takes precedence over collision in the reported
// reason.
func (d Detector) Check(store *Store) (Reason, error) {
	if d.Assets == nil {
		return ReasonNone, ErrMissingAssetMetadata
	}
	w, h, ok := d.Assets.SpriteSize()
	if !ok {
		return ReasonNone, ErrMissingAssetMetadata
	}
	player, err := store.Player()
	if err != nil {
		return ReasonNone, err
	}

	playerBox := PlayerBox(player, w, h)
	outOfBounds := !InBounds(player.Kinematic.Pos, d.HalfSize)

	for pillar := range store.WithRole(RolePillar) {
		if outOfBounds {
			return ReasonOutOfBounds, nil
		}
		if playerBox.Intersects(PillarBox(pillar, d.ScaleX, d.ScaleY)) {
			return ReasonCollision, nil
		}
	}
	return ReasonNone, nil
}
