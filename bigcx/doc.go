// Package bigcx implements fixed-precision complex arithmetic on top of
// math/big floating-point values.
//
// 🚀 What is bigcx?
//
//	A small arbitrary-precision complex layer used by the zeta evaluators:
//	  • Complex values carry a (re, im) pair of *big.Float
//	  • Precision is an explicit per-value parameter in decimal digits —
//	    never a process-wide global, so concurrent callers cannot interfere
//	  • Transcendentals (Exp, Log, Pow) for the real parts come from
//	    github.com/ALTree/bigfloat; Sin/Cos/Pi are provided here
//
// ✨ Why not complex128?
//
//	The Riemann–Siegel main sum and the Euler–Maclaurin tail accumulate
//	many oscillating terms; a caller-chosen working precision (often 30–50
//	decimal digits) keeps the cancellation error below the float64 output
//	resolution. Results are downcast to complex128 only at the boundary.
//
// ⚙️ Usage:
//
//	import "github.com/zetaline/zetaline/bigcx"
//
//	s := bigcx.New(0.5, 14.13, 30)     // 1/2 + 14.13i at 30 digits
//	e := s.Exp()                       // e^s
//	v := e.Complex128()                // downcast at the boundary
//
// Precision notes:
//
//   - MinDigits (15) is the working floor: requests below it are clamped,
//     keeping asymptotic corrections meaningful.
//   - Trigonometric range reduction uses a stored 200-digit π; precision
//     beyond ~180 digits degrades Sin/Cos for very large arguments.
package bigcx
