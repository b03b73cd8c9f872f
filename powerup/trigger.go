package powerup

import "log"

// BallTag is the contact tag carried by the ball and its clones.
const BallTag = "ball"

// Activator is the part of Controller a trigger needs.
type Activator interface {
	Activate(def *Definition)
}

// PickupRemover is the part of Spawner a trigger needs.
type PickupRemover interface {
	Remove(id PickupID) bool
}

// Trigger turns ball contacts into activations.
type Trigger struct {
	activator Activator
	remover   PickupRemover

	// OnCollected runs cosmetic side effects (particles, sound) for a
	// pickup that was just consumed.
	OnCollected func(p *Pickup)
}

func NewTrigger(activator Activator, remover PickupRemover) *Trigger {
	return &Trigger{activator: activator, remover: remover}
}

// Contact handles one contact event between pickup p and a shape tagged tag.
// It reports whether the contact activated the pickup; that happens at most
// once per pickup no matter how many contacts are reported.
func (t *Trigger) Contact(p *Pickup, tag string) bool {
	if p == nil || tag != BallTag {
		return false
	}
	if !p.Consume() {
		log.Printf("powerup: pickup %d ignored: %v", p.ID, ErrDoubleActivation)
		return false
	}

	if t.activator != nil {
		t.activator.Activate(p.Definition)
	}
	if t.OnCollected != nil {
		t.OnCollected(p)
	}
	if t.remover != nil {
		t.remover.Remove(p.ID)
	}
	return true
}
