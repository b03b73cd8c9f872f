package component

// Particle is a short-lived cosmetic sprite. It moves in field units per
// second and fades with its TTL.
type Particle struct {
	VX, VY    float64
	Drag      float64
	Lifetime  int
	StartSize float64
}

var ParticleComponent = NewComponent[Particle]()
