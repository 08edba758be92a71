// Package siegel evaluates ζ(1/2+it) and the real Z-function via the
// leading term of the Riemann–Siegel asymptotic formula, and locates zeros
// on the critical line by sign-change scanning.
//
// 🚀 What is siegel?
//
//	The direct (non-multi-evaluation) zero-search strategy:
//	  • Theta — the Riemann–Siegel phase θ(t) = (t/2)·ln(t/2π) − t/2 − π/8
//	  • Zeta — ζ(1/2+it) ≈ e^{iθ(t)}·Σ_{n=1}^{N} n^{−1/2−it},
//	    N = ⌊√(t/2π)⌋; the main sum runs at the configured working
//	    precision and the result is downcast at the boundary
//	  • Z — the rotated real value whose sign changes mark critical-line
//	    zeros: Re S(t) on the asymptotic path (the e^{∓iθ} factors
//	    cancel), Re[e^{+iθ(t)}·ζ(1/2+it)] on the delegated path
//	  • FindZeros — stepped scan over an interval, refining every
//	    sign-changing bracket by bisection
//
// Only the leading main-sum term is used — no correction terms of the full
// asymptotic expansion. This is a deliberate simplification; setting
// Options.Terms > 0 bypasses the approximation entirely and delegates to
// the reference evaluator (package zeta), which is the escape hatch for
// correctness testing, not a performance path. Below t = 8π the main sum
// degenerates (fewer than two terms), so the same direct evaluation also
// serves as the low-height fallback.
//
// ⚙️ Usage:
//
//	opts := siegel.DefaultOptions()
//	zeros, err := siegel.FindZeros(14, 15, 0.1, opts)
//	// zeros[0] ≈ 14.13, the first nontrivial zero
//
// Behavior for t ≤ 0 is unspecified.
package siegel
