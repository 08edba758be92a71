// Package interp reconstructs values of uniformly sampled complex signals
// between their sample points.
//
// 🚀 What is interp?
//
//	Three interpolation tools of increasing fidelity:
//	  • Derivatives / TaylorAt — centered finite differences and a local
//	    Taylor expansion around the nearest sample
//	  • Adaptive — Taylor refinement with automatic convergence control and
//	    a linear fallback
//	  • BandLimited — Whittaker–Shannon style reconstruction: the sample
//	    spectrum is zero-padded to double length (2× oversampling) and
//	    transformed back, giving smooth values between samples
//
// ✨ FFT:
//
//	FFT and IFFT handle any length: power-of-two inputs take the iterative
//	radix-2 path, other lengths fall back to a direct O(n²) transform. The
//	grid sizes produced by the odlyzko engine are powers of two by
//	construction, so the fast path is the common one.
//
// ⚙️ Usage:
//
//	bl, err := interp.NewBandLimited(samples, delta, t0)
//	v := bl.At(t) // anywhere; outside the span extrapolates linearly
//
// BandLimited is independent of the grid-specific engine in package
// odlyzko and is reusable for any evenly sampled complex signal, e.g. the
// core-sum kernel at finer resolution than its native grid or the spectral
// signals in package spectral.
package interp
