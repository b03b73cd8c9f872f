package system

import "github.com/milk9111/pongchaos/powerup"

const defaultFrameDt = 1.0 / 60.0

// Clock is the simulation clock. Dt is real frame time and drives effect
// countdowns; ScaledDt is what the simulation advances by.
type Clock struct {
	frameDt float64
	scale   float64
	paused  bool
}

func NewClock() *Clock {
	return &Clock{frameDt: defaultFrameDt, scale: powerup.NominalTimeScale}
}

// SetFrameDt sets the seconds per Update, normally 1/TPS.
func (c *Clock) SetFrameDt(dt float64) {
	if dt > 0 {
		c.frameDt = dt
	}
}

func (c *Clock) TimeScale() float64 {
	return c.scale
}

func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

func (c *Clock) SetPaused(paused bool) {
	c.paused = paused
}

func (c *Clock) Paused() bool {
	return c.paused
}

// Dt is the unscaled frame time, zero while paused.
func (c *Clock) Dt() float64 {
	if c == nil || c.paused {
		return 0
	}
	return c.frameDt
}

// ScaledDt is the frame time after the time scale, zero while paused.
func (c *Clock) ScaledDt() float64 {
	if c == nil {
		return 0
	}
	return c.Dt() * c.scale
}
