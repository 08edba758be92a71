// Package zetaline locates zeros of the Riemann zeta function on the
// critical line — real heights t with ζ(1/2 + i·t) = 0 — over a
// caller-specified interval.
//
// 🚀 What is zetaline?
//
//	Two interchangeable search strategies behind one value interface:
//		• Riemann–Siegel path: a direct sign-change scan of the real
//		  Z-function driven by the leading asymptotic term (package siegel)
//		• Multi-evaluation path: a precomputed kernel grid with
//		  frequency-domain interpolation, amortizing per-point cost across
//		  the whole interval (package odlyzko)
//	Both refine detected crossings and return ascending zero heights; both
//	are deterministic for identical inputs.
//
// ✨ Why choose zetaline?
//
//   - Explicit precision – decimal digits threaded through every call,
//     never hidden global state
//   - Honest degeneracy – the fast path reports found / no-sign-change /
//     fallback-substituted outcomes instead of masking them
//   - Pure Go interiors – arbitrary-precision arithmetic on math/big
//
// Under the hood, everything is organized under small subpackages:
//
//	bigcx/    — fixed-precision complex arithmetic on big.Float
//	zeta/     — reference Euler–Maclaurin evaluator of ζ(s), pole-aware
//	rootfind/ — sign-change scanning & bisection refinement
//	siegel/   — Riemann–Siegel phase, Z(t) and the direct zero scan
//	interp/   — FFT, band-limited and Taylor interpolation of sampled signals
//	odlyzko/  — grid config, multi-evaluation engine, parallel driver
//	explicit/ — prime counting via the Riemann explicit formula
//	spectral/ — spectra of zero-spacing sequences
//
// Quick start:
//
//	zeros, err := zetaline.FindZerosRiemannSiegel(14, 15, 0.1, 30)
//	// zeros[0] ≈ 14.1347, the first nontrivial zero
//
// See examples/ for runnable scenarios and each subpackage's doc.go for
// contracts, invariants and caveats.
package zetaline
