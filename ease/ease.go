// Package ease provides interpolation and easing curves for animation.
//
// Every function takes a progress value t and interpolates between start
// and end: t == 0 is all the way at start, t == 1 all the way at end.
// Values outside [0, 1] are accepted and extrapolate, which overshooting
// curves rely on. See https://easings.net for the curve shapes.
package ease

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp linearly interpolates between start and end.
func Lerp[F constraints.Float](t, start, end F) F {
	return start*(1-t) + end*t
}

// SineIn eases in along a quarter sine wave.
func SineIn[F constraints.Float](t, start, end F) F {
	return Lerp(1-F(math.Cos(float64(t)*math.Pi/2)), start, end)
}

// SineOut eases out along a quarter sine wave.
func SineOut[F constraints.Float](t, start, end F) F {
	return Lerp(F(math.Sin(float64(t)*math.Pi/2)), start, end)
}

// SineInOut eases in and out along a half sine wave.
func SineInOut[F constraints.Float](t, start, end F) F {
	return Lerp(-(F(math.Cos(float64(t)*math.Pi))-1)/2, start, end)
}

// QuadIn eases in quadratically.
func QuadIn[F constraints.Float](t, start, end F) F {
	return Lerp(t*t, start, end)
}

// QuadOut eases out quadratically.
func QuadOut[F constraints.Float](t, start, end F) F {
	return Lerp(1-(1-t)*(1-t), start, end)
}

// QuadInOut eases in then out quadratically.
func QuadInOut[F constraints.Float](t, start, end F) F {
	var shaped F
	if t < 0.5 {
		shaped = 2 * t * t
	} else {
		u := -2*t + 2
		shaped = 1 - u*u/2
	}
	return Lerp(shaped, start, end)
}

// CubicIn eases in cubically.
func CubicIn[F constraints.Float](t, start, end F) F {
	return Lerp(t*t*t, start, end)
}

// CubicOut eases out cubically.
func CubicOut[F constraints.Float](t, start, end F) F {
	u := 1 - t
	return Lerp(1-u*u*u, start, end)
}

// CubicInOut eases in then out cubically.
func CubicInOut[F constraints.Float](t, start, end F) F {
	var shaped F
	if t < 0.5 {
		shaped = 4 * t * t * t
	} else {
		u := -2*t + 2
		shaped = 1 - u*u*u/2
	}
	return Lerp(shaped, start, end)
}

// SmoothStep is the classic hermite 3t²-2t³ ease, clamped to [start, end].
func SmoothStep[F constraints.Float](t, start, end F) F {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return end
	}
	return Lerp(t*t*(3-2*t), start, end)
}
