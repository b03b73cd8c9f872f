package ui

import (
	"image/color"
	"math"

	"github.com/milk9111/pongchaos/powerup"
	"github.com/milk9111/pongchaos/prefabs"
)

// pulseHz is how fast the panel throbs in the last seconds of an effect.
const pulseHz = 2.5

// StatusView is what the status panel shows for one frame.
type StatusView struct {
	Visible bool
	Name    string
	Timer   string
	Fill    float64
	Tint    color.NRGBA
	// Pulse scales the fill bar; it stays at 1 until the effect is urgent.
	Pulse float64
}

// ViewOf maps a controller snapshot to panel contents. now is seconds of
// wall time and only drives the pulse.
func ViewOf(st powerup.Status, now float64) StatusView {
	if !st.Active {
		return StatusView{Pulse: 1}
	}
	v := StatusView{
		Visible: true,
		Name:    st.Name,
		Timer:   st.TimerText(),
		Fill:    st.Fraction(),
		Tint:    white,
		Pulse:   1,
	}
	if st.GlowColor != "" {
		if c, err := prefabs.ParseColor(st.GlowColor); err == nil {
			v.Tint = c
		}
	}
	if st.Urgent() {
		v.Pulse = 1 + 0.5*math.Abs(math.Sin(now*math.Pi*pulseHz))
	}
	return v
}
