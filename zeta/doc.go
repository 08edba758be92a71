// Package zeta provides the reference arbitrary-precision evaluator for the
// Riemann zeta function ζ(s).
//
// 🚀 What is zeta?
//
//	The module's ground truth: a direct Euler–Maclaurin evaluation of ζ(s)
//	at a caller-chosen working precision in decimal digits. The fast
//	critical-line paths (package siegel, package odlyzko) are approximate;
//	this package is what they are tested against and what the
//	multi-evaluation engine falls back to when a scan finds no crossing.
//
// ✨ Key entry points:
//   - Evaluate(s, precision) — ζ(s) for any complex s away from the pole
//     at s = 1; evaluation within PoleTolerance of the pole returns ErrPole
//     rather than a silently substituted value.
//   - Z(t, precision) — the rotated real value Re[e^{+iθ(t)}·ζ(1/2+it)],
//     exact up to the working precision and the truncated θ-series.
//   - FirstZero(precision) — the height of the first nontrivial zero,
//     refined by bisection of Z over its known bracket.
//
// ⚙️ Usage:
//
//	v, err := zeta.Evaluate(complex(0.5, 14.1347), 30)
//	if err != nil {
//	  // only ErrPole is possible
//	}
//
// Accuracy is solely a function of the precision parameter; the package
// performs no internal validation that a requested accuracy is achievable.
package zeta
