package component

// Side identifies a half of the field.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

type Paddle struct {
	Side   Side
	Speed  float64
	YLimit float64
	MinX   float64
	MaxX   float64
	StartX float64
	StartY float64
	// Enabled is cleared while the paddle is frozen.
	Enabled bool
}

var PaddleComponent = NewComponent[Paddle]()

// AIPaddle drives a paddle from a tengo script.
type AIPaddle struct {
	Script   string
	Reaction float64
	// TargetY is the last target the script produced, for debug drawing.
	TargetY float64
}

var AIPaddleComponent = NewComponent[AIPaddle]()
