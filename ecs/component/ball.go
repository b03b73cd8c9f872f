package component

// Ball holds the speed rules for a ball. The velocity itself lives on the
// physics body.
type Ball struct {
	InitialSpeed   float64
	SpeedPerScore  float64
	MaxSpeed       float64
	MinPlaySpeed   float64
	Radius         float64
	CurrentSpeed   float64
	Boost          float64
	Active         bool
	StartX, StartY float64
}

var BallComponent = NewComponent[Ball]()
