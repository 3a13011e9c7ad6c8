package ease

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almost(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name       string
		t          float64
		start, end float64
		expected   float64
	}{
		{"at start", 0, 10, 20, 10},
		{"at end", 1, 10, 20, 20},
		{"midpoint", 0.5, 10, 20, 15},
		{"quarter", 0.25, 0, 100, 25},
		{"extrapolates past end", 2, 0, 10, 20},
		{"extrapolates before start", -1, 0, 10, -10},
		{"descending range", 0.5, 20, 10, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.t, tc.start, tc.end); !almost(got, tc.expected) {
				t.Errorf("Lerp(%v, %v, %v) = %v, expected %v",
					tc.t, tc.start, tc.end, got, tc.expected)
			}
		})
	}
}

func TestLerpFloat32(t *testing.T) {
	if got := Lerp(float32(0.5), float32(0), float32(8)); got != 4 {
		t.Errorf("Lerp[float32] = %v, expected 4", got)
	}
}

func TestCurveEndpoints(t *testing.T) {
	// Every curve must hit start at t=0 and end at t=1.
	curves := map[string]func(t, start, end float64) float64{
		"SineIn":     SineIn[float64],
		"SineOut":    SineOut[float64],
		"SineInOut":  SineInOut[float64],
		"QuadIn":     QuadIn[float64],
		"QuadOut":    QuadOut[float64],
		"QuadInOut":  QuadInOut[float64],
		"CubicIn":    CubicIn[float64],
		"CubicOut":   CubicOut[float64],
		"CubicInOut": CubicInOut[float64],
		"SmoothStep": SmoothStep[float64],
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			if got := curve(0, 3, 7); !almost(got, 3) {
				t.Errorf("%s(0, 3, 7) = %v, expected 3", name, got)
			}
			if got := curve(1, 3, 7); !almost(got, 7) {
				t.Errorf("%s(1, 3, 7) = %v, expected 7", name, got)
			}
		})
	}
}

func TestCurvesMonotonicOnUnitInterval(t *testing.T) {
	curves := map[string]func(t, start, end float64) float64{
		"SineInOut":  SineInOut[float64],
		"QuadInOut":  QuadInOut[float64],
		"CubicInOut": CubicInOut[float64],
		"SmoothStep": SmoothStep[float64],
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			prev := curve(0, 0, 1)
			for i := 1; i <= 100; i++ {
				v := curve(float64(i)/100, 0, 1)
				if v < prev-epsilon {
					t.Fatalf("%s not monotonic at t=%v: %v < %v", name, float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestInOutSymmetry(t *testing.T) {
	// In/out pairs mirror around the midpoint: out(t) == 1 - in(1-t).
	pairs := []struct {
		name    string
		in, out func(t, start, end float64) float64
	}{
		{"Sine", SineIn[float64], SineOut[float64]},
		{"Quad", QuadIn[float64], QuadOut[float64]},
		{"Cubic", CubicIn[float64], CubicOut[float64]},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for i := 0; i <= 10; i++ {
				tt := float64(i) / 10
				if got, want := p.out(tt, 0, 1), 1-p.in(1-tt, 0, 1); !almost(got, want) {
					t.Errorf("out(%v) = %v, expected %v", tt, got, want)
				}
			}
		})
	}
}

func TestQuadValues(t *testing.T) {
	if got := QuadIn(0.5, 0.0, 1.0); !almost(got, 0.25) {
		t.Errorf("QuadIn(0.5) = %v, expected 0.25", got)
	}
	if got := QuadOut(0.5, 0.0, 1.0); !almost(got, 0.75) {
		t.Errorf("QuadOut(0.5) = %v, expected 0.75", got)
	}
	if got := QuadInOut(0.5, 0.0, 1.0); !almost(got, 0.5) {
		t.Errorf("QuadInOut(0.5) = %v, expected 0.5", got)
	}
}

func TestSmoothStepClamps(t *testing.T) {
	if got := SmoothStep(-2.0, 5.0, 9.0); got != 5 {
		t.Errorf("SmoothStep below range = %v, expected 5", got)
	}
	if got := SmoothStep(3.0, 5.0, 9.0); got != 9 {
		t.Errorf("SmoothStep above range = %v, expected 9", got)
	}
}
