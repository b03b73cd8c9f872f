package powerup

import "fmt"

// UrgentThreshold is the remaining time under which displays pulse.
const UrgentThreshold = 2.0

// Status is a read-only snapshot of the controller for displays.
type Status struct {
	Active    bool
	Kind      Kind
	Name      string
	GlowColor string
	Remaining float64
	Duration  float64
}

// StatusSource is implemented by Controller; displays depend on this only.
type StatusSource interface {
	Status() Status
}

// Fraction is remaining/duration in [0, 1].
func (s Status) Fraction() float64 {
	if !s.Active || s.Duration <= 0 {
		return 0
	}
	f := s.Remaining / s.Duration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (s Status) Urgent() bool {
	return s.Active && s.Remaining < UrgentThreshold
}

func (s Status) TimerText() string {
	if !s.Active {
		return ""
	}
	return fmt.Sprintf("%.1fs", s.Remaining)
}
