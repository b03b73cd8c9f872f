package component

import "github.com/milk9111/pongchaos/powerup"

// Pickup links an orb entity to its power-up pickup and animates it.
type Pickup struct {
	Ref          *powerup.Pickup
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	SpinSpeed    float64
	Initialized  bool
}

var PickupComponent = NewComponent[Pickup]()
