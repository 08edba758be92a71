package zeta

import (
	"errors"
	"math"
	"math/big"
	"math/cmplx"

	"github.com/zetaline/zetaline/bigcx"
)

// PoleTolerance is the numerical-equality tolerance around the pole s = 1.
const PoleTolerance = 1e-12

// ErrPole indicates an evaluation within PoleTolerance of the pole at s = 1.
var ErrPole = errors.New("zeta: evaluation at the pole s = 1")

// bernoulli holds B₂ₖ for k = 1..12 as exact rationals.
var bernoulli = []struct{ num, den int64 }{
	{1, 6}, {-1, 30}, {1, 42}, {-1, 30}, {5, 66}, {-691, 2730},
	{7, 6}, {-3617, 510}, {43867, 798}, {-174611, 330},
	{854513, 138}, {-236364091, 2730},
}

// Evaluate computes ζ(s) at the given working precision in decimal digits.
//
// Algorithm Outline (Euler–Maclaurin):
//  1. Pick a cut N ≥ max(precision, |Im s|) so the correction tail converges.
//  2. Partial sum Σ_{n=1}^{N−1} n^{−s}.
//  3. Boundary terms N^{1−s}/(s−1) + N^{−s}/2.
//  4. Correction Σ_{k=1}^{12} B₂ₖ/(2k)! · s(s+1)⋯(s+2k−2) · N^{−s−2k+1}.
//
// Returns ErrPole when s is within PoleTolerance of 1; otherwise total for
// any finite s. The result is downcast to complex128 at the boundary, so
// precision beyond ~17 digits serves only to control interior cancellation.
func Evaluate(s complex128, precision int) (complex128, error) {
	if cmplx.Abs(s-1) < PoleTolerance {
		return 0, ErrPole
	}

	digits := precision
	if digits < bigcx.MinDigits {
		digits = bigcx.MinDigits
	}
	prec := bigcx.Bits(digits)

	n := digits
	if im := int(math.Abs(imag(s))) + 10; im > n {
		n = im
	}
	if n < 20 {
		n = 20
	}

	sb := bigcx.New(real(s), imag(s), digits)
	negS := sb.Neg()
	sum := bigcx.Zero(digits)

	// Partial sum over n = 1..N−1.
	for k := 1; k < n; k++ {
		kf := new(big.Float).SetPrec(prec).SetInt64(int64(k))
		term, err := bigcx.PowReal(kf, negS)
		if err != nil {
			return 0, err
		}
		sum = sum.Add(term)
	}

	nf := new(big.Float).SetPrec(prec).SetInt64(int64(n))

	// Boundary term N^{1−s}/(s−1).
	oneMinusS := bigcx.New(1, 0, digits).Sub(sb)
	pow1, err := bigcx.PowReal(nf, oneMinusS)
	if err != nil {
		return 0, err
	}
	tail, err := pow1.Div(sb.Sub(bigcx.New(1, 0, digits)))
	if err != nil {
		return 0, err
	}
	sum = sum.Add(tail)

	// Boundary term N^{−s}/2.
	powNegS, err := bigcx.PowReal(nf, negS)
	if err != nil {
		return 0, err
	}
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	sum = sum.Add(powNegS.MulReal(half))

	// Bernoulli correction tail.
	rising := sb                // s(s+1)⋯(s+2k−2), extended incrementally
	power := powNegS            // N^{−s−2k+1}, maintained by dividing by N²
	invN := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), nf)
	power = power.MulReal(invN) // k = 1: N^{−s−1}
	invN2 := new(big.Float).SetPrec(prec).Mul(invN, invN)
	fact := new(big.Int).SetInt64(2) // (2k)!
	for k, b := range bernoulli {
		if k > 0 {
			// Extend the rising product by (s+2k−3)(s+2k−2) and step the power.
			rising = rising.Mul(sb.Add(bigcx.New(float64(2*k-1), 0, digits)))
			rising = rising.Mul(sb.Add(bigcx.New(float64(2*k), 0, digits)))
			power = power.MulReal(invN2)
			fact.Mul(fact, big.NewInt(int64((2*k+1)*(2*k+2))))
		}
		coeff := new(big.Float).SetPrec(prec).SetRat(new(big.Rat).SetFrac(
			big.NewInt(b.num),
			new(big.Int).Mul(big.NewInt(b.den), fact),
		))
		sum = sum.Add(rising.Mul(power).MulReal(coeff))
	}

	return sum.Complex128(), nil
}

// theta is the Riemann–Siegel phase θ(t) = (t/2)·ln(t/2π) − t/2 − π/8.
// Kept unexported here to avoid a cycle with package siegel, which owns the
// documented public form.
func theta(t float64) float64 {
	return t/2*math.Log(t/(2*math.Pi)) - t/2 - math.Pi/8
}

// Z computes the rotated real value Re[e^{iθ(t)}·ζ(1/2+it)] from the
// reference evaluator. It is the exact counterpart of the approximate
// Z-functions in packages siegel and odlyzko.
//
// The rotation sign matters: e^{iθ}ζ is real on the critical line (up to
// the truncated θ-series), while e^{−iθ}ζ picks up a cos(2θ) factor whose
// own sign changes would masquerade as zeros.
func Z(t float64, precision int) (float64, error) {
	v, err := Evaluate(complex(0.5, t), precision)
	if err != nil {
		return 0, err
	}

	return real(v * cmplx.Exp(complex(0, theta(t)))), nil
}
