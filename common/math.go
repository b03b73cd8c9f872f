package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit maps field units to screen pixels. The field is 32x18
	// units centred on the origin with +Y up.
	PixelsPerUnit = 40.0

	FieldHalfWidth  = BaseWidth / PixelsPerUnit / 2
	FieldHalfHeight = BaseHeight / PixelsPerUnit / 2
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves cur toward target by at most maxDelta.
func Approach(cur, target, maxDelta float64) float64 {
	d := target - cur
	if math.Abs(d) <= maxDelta {
		return target
	}
	return cur + math.Copysign(maxDelta, d)
}

// WorldToScreen converts field units to screen pixels.
func WorldToScreen(x, y float64) (float64, float64) {
	return BaseWidth/2 + x*PixelsPerUnit, BaseHeight/2 - y*PixelsPerUnit
}
