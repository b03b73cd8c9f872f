package powerup

import "github.com/go-gl/mathgl/mgl64"

type PickupID uint64

// Pickup is a live orb. It references, but does not own, its definition.
type Pickup struct {
	ID         PickupID
	Position   mgl64.Vec3
	Definition *Definition

	consumed bool
}

// Consume marks the pickup used and reports whether this call did it. Only
// the first call returns true.
func (p *Pickup) Consume() bool {
	if p == nil || p.consumed {
		return false
	}
	p.consumed = true
	return true
}

func (p *Pickup) Consumed() bool {
	return p != nil && p.consumed
}
