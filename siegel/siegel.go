package siegel

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/ALTree/bigfloat"
	"github.com/zetaline/zetaline/bigcx"
	"github.com/zetaline/zetaline/rootfind"
	"github.com/zetaline/zetaline/zeta"
)

// DefaultPrecision is the working precision, in decimal digits, applied
// when Options.Precision is unset.
const DefaultPrecision = 50

// Options configures the Riemann–Siegel evaluators.
//
// Fields:
//   - Terms     — if > 0, skip the asymptotic approximation and delegate to
//     the reference evaluator at s = 1/2+it (correctness escape hatch).
//   - Precision — working precision in decimal digits for the main sum.
type Options struct {
	Terms     int
	Precision int
}

// DefaultOptions returns Options with the asymptotic path enabled at
// DefaultPrecision digits.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// normalize fills defaults for zero values.
func (o Options) normalize() Options {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}

	return o
}

// Theta computes the Riemann–Siegel phase function
// θ(t) = (t/2)·ln(t/2π) − t/2 − π/8, which rotates ζ(1/2+it) onto the
// real axis.
func Theta(t float64) float64 {
	return t/2*math.Log(t/(2*math.Pi)) - t/2 - math.Pi/8
}

// sumTerms returns the main-sum length N = ⌊√(t/2π)⌋.
func sumTerms(t float64) int {
	return int(math.Floor(math.Sqrt(t / (2 * math.Pi))))
}

// delegates reports whether evaluation at t must use the reference
// evaluator: forced by opts.Terms, or below t = 8π where the main sum has
// fewer than two terms and carries no sign information.
func delegates(t float64, opts Options) bool {
	return opts.Terms > 0 || sumTerms(t) < 2
}

// Zeta approximates ζ(1/2+it) by the Riemann–Siegel leading term
// e^{iθ(t)}·S(t) with S(t) = Σ_{n=1}^{N} n^{−1/2−it}, N = ⌊√(t/2π)⌋.
// With opts.Terms > 0, or on the direct-evaluation fallback below t = 8π,
// it instead delegates to zeta.Evaluate.
func Zeta(t float64, opts Options) (complex128, error) {
	opts = opts.normalize()

	if delegates(t, opts) {
		return zeta.Evaluate(complex(0.5, t), opts.Precision)
	}

	sum := mainSum(t, sumTerms(t), opts.Precision)
	prefactor := cmplx.Exp(complex(0, Theta(t)))

	return prefactor * sum, nil
}

// Z computes the real Riemann–Siegel Z-function. The rotation that lands
// ζ(1/2+it) on the real axis is e^{+iθ(t)}, so the delegated path uses
// zeta.Z directly; on the asymptotic path the approximation e^{iθ}S makes
// the rotations cancel, leaving Re S(t).
func Z(t float64, opts Options) (float64, error) {
	opts = opts.normalize()

	if delegates(t, opts) {
		return zeta.Z(t, opts.Precision)
	}

	return real(mainSum(t, sumTerms(t), opts.Precision)), nil
}

// refineTol is the absolute t-tolerance of bracket refinement.
const refineTol = 1e-8

// FindZeros scans Z over [tStart, tEnd] with the given step, refines every
// sign-changing bracket by bisection, and returns the ascending zero
// locations. Detection resolution is bounded by the step; see package
// rootfind for the aliasing caveat.
func FindZeros(tStart, tEnd, step float64, opts Options) ([]float64, error) {
	opts = opts.normalize()

	var evalErr error
	f := func(t float64) float64 {
		v, err := Z(t, opts)
		if err != nil && evalErr == nil {
			evalErr = err
		}

		return v
	}

	brackets, err := rootfind.Scan(tStart, tEnd, step, f)
	if err != nil {
		return nil, err
	}

	zeros := make([]float64, 0, len(brackets))
	for _, b := range brackets {
		root, err := rootfind.Bisect(b, refineTol, f)
		if err != nil {
			return nil, err
		}
		zeros = append(zeros, root)
	}
	// One check covers evaluator errors from both the scan and the
	// refinement passes.
	if evalErr != nil {
		return nil, evalErr
	}

	return zeros, nil
}

// mainSum evaluates S(t) = Σ_{n=1}^{N} n^{−1/2−it} at the given working
// precision: n^{−1/2−it} = n^{−1/2}·(cos(t·ln n) − i·sin(t·ln n)).
func mainSum(t float64, n, precision int) complex128 {
	prec := bigcx.Bits(precision)
	tf := new(big.Float).SetPrec(prec).SetFloat64(t)
	sumRe := new(big.Float).SetPrec(prec)
	sumIm := new(big.Float).SetPrec(prec)

	for k := 1; k <= n; k++ {
		kf := new(big.Float).SetPrec(prec).SetInt64(int64(k))
		angle := new(big.Float).SetPrec(prec).Mul(tf, bigfloat.Log(kf))
		invSqrt := new(big.Float).SetPrec(prec).Sqrt(kf)
		invSqrt.Quo(big.NewFloat(1).SetPrec(prec), invSqrt)

		sumRe.Add(sumRe, new(big.Float).SetPrec(prec).Mul(invSqrt, bigcx.Cos(angle)))
		sumIm.Sub(sumIm, new(big.Float).SetPrec(prec).Mul(invSqrt, bigcx.Sin(angle)))
	}

	re, _ := sumRe.Float64()
	im, _ := sumIm.Float64()

	return complex(re, im)
}
