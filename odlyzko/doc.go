// Package odlyzko implements the fast multi-evaluation zero search on the
// critical line, in the style of the Odlyzko–Schönhage algorithm.
//
// 🚀 What is odlyzko?
//
//	Instead of evaluating the Riemann–Siegel sum from scratch at every
//	query point, the Engine precomputes the partial-sum kernel
//
//	    F(t) = Σ_{k=k0}^{k1} k^{−1/2}·e^{−i·t·ln k}
//
//	on a uniform grid spanning the search interval, then serves
//	interpolated evaluations of F — and of the full Z(t), combined with
//	the Riemann–Siegel phase — at arbitrary t within the grid's span.
//	The per-point cost is amortized across the whole interval.
//
// ✨ Engine life cycle:
//
//	Unconfigured ──Precompute()──▶ Precomputed ──first evaluation──▶ Serving
//
//	Precompute is idempotent: repeated calls are no-ops once the grid is
//	materialized. Evaluations on an Unconfigured engine trigger the
//	transition themselves, so the lazy path is explicit and testable.
//
// ⚙️ Usage:
//
//	cfg, err := odlyzko.NewConfig(100, 110, odlyzko.DefaultOptions())
//	eng := odlyzko.NewEngine(cfg)
//	res, err := eng.FindZeros(0) // 0 → default step delta/10
//	switch res.Status {
//	case odlyzko.StatusFound:        // res.Zeros are refined crossings
//	case odlyzko.StatusFallbackZero: // no crossing; first known zero substituted
//	case odlyzko.StatusNoSignChange: // fallback disabled, nothing found
//	}
//
// Design notes:
//
//   - EvaluateF corrects off-grid queries with a first-order term from the
//     centered finite difference of neighboring grid values. The kernel
//     varies slowly across one grid spacing, so local linear correction
//     suffices here; signals needing true band-limited reconstruction use
//     interp.BandLimited instead.
//   - ComputeZ adds a named, swappable remainder heuristic (RemainderFunc)
//     standing in for the Riemann–Siegel correction series. Its error bound
//     is not formally derived; it is an approximation, not an exact term.
//   - The fast path is defined on the critical line only; evaluation off
//     the line is out of scope.
//   - A single grid's precomputation is sequential. FindZerosParallel
//     fans independent subinterval engines out across goroutines instead.
package odlyzko
