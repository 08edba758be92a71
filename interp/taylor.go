package interp

import "math"

// ComplexFunc is a complex-valued evaluator t → f(t).
type ComplexFunc func(t float64) complex128

// DefaultStep is the finite-difference step used when callers pass h ≤ 0.
const DefaultStep = 1e-6

// Derivatives estimates f′(t) and f″(t) by centered differences:
//
//	f′(t) ≈ [f(t+h) − f(t−h)] / 2h
//	f″(t) ≈ [f(t+h) − 2f(t) + f(t−h)] / h²
func Derivatives(f ComplexFunc, t, h float64) (d1, d2 complex128) {
	if h <= 0 {
		h = DefaultStep
	}

	plus := f(t + h)
	minus := f(t - h)
	d1 = (plus - minus) / complex(2*h, 0)
	d2 = (plus - 2*f(t) + minus) / complex(h*h, 0)

	return d1, d2
}

// TaylorAt expands f around t0 and evaluates at t:
// f(t0) + f′(t0)·dt (maxTerms ≥ 1) + f″(t0)·dt²/2 (maxTerms ≥ 2).
// Derivatives come from centered differences with DefaultStep.
func TaylorAt(f ComplexFunc, t0, t float64, maxTerms int) complex128 {
	dt := t - t0
	value := f(t0)
	d1, d2 := Derivatives(f, t0, DefaultStep)
	if maxTerms >= 1 {
		value += d1 * complex(dt, 0)
	}
	if maxTerms >= 2 {
		value += d2 * complex(dt*dt/2, 0)
	}

	return value
}

// Adaptive interpolates by stepwise Taylor refinement with automatic
// convergence control, falling back to linear interpolation between the
// two nearest grid points when the expansion does not settle.
type Adaptive struct {
	// Tol is the convergence threshold between successive expansions.
	Tol float64
}

// NewAdaptive returns an Adaptive with the given tolerance (≤ 0 → 1e-12).
func NewAdaptive(tol float64) Adaptive {
	if tol <= 0 {
		tol = 1e-12
	}

	return Adaptive{Tol: tol}
}

// Interpolate evaluates f near t using Taylor expansions around the nearest
// grid point, accepting the first expansion whose next refinement moves it
// by less than Tol. gridPoints and gridValues must have equal length ≥ 1.
func (a Adaptive) Interpolate(f ComplexFunc, gridPoints []float64, gridValues []complex128, t float64) complex128 {
	i0 := 0
	best := math.Abs(t - gridPoints[0])
	for i, gp := range gridPoints {
		if d := math.Abs(t - gp); d < best {
			best, i0 = d, i
		}
	}
	t0 := gridPoints[i0]

	for terms := 2; terms <= 5; terms++ {
		approx := TaylorAt(f, t0, t, terms-1)
		refined := TaylorAt(f, t0, t, terms)
		if abs(refined-approx) < a.Tol {
			return approx
		}
	}

	// Linear fallback between the two nearest grid values.
	if i0 < len(gridPoints)-1 {
		t1, t2 := gridPoints[i0], gridPoints[i0+1]
		v1, v2 := gridValues[i0], gridValues[i0+1]
		alpha := (t - t1) / (t2 - t1)

		return v1 + complex(alpha, 0)*(v2-v1)
	}

	return gridValues[i0]
}

// abs returns the modulus of a complex value.
func abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
