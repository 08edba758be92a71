// Package rootfind locates simple roots of real-valued functions by
// sign-change scanning and bisection refinement.
//
// 🚀 What is rootfind?
//
//	The root-finding protocol shared by both zero-search strategies:
//	  • Scan — a single linear pass over a stepped grid, reporting every
//	    pair of consecutive samples with strictly opposite signs as a
//	    Bracket
//	  • Bisect — binary search inside one Bracket down to an absolute
//	    tolerance, in O(log₂((right−left)/ε)) evaluations
//
// ⚙️ Usage:
//
//	brackets, err := rootfind.Scan(0, 2*math.Pi, 0.1, math.Cos)
//	for _, b := range brackets {
//	  root, _ := rootfind.Bisect(b, 1e-8, math.Cos)
//	  fmt.Println(root)
//	}
//
// Caveats:
//
//   - Scan resolves only what the step resolves: a step wider than half the
//     local root spacing aliases roots away. Choosing the step is the
//     caller's responsibility; it is not validated against the function.
//   - Samples that are exactly zero are not treated as crossings (the
//     product test is strictly negative). Both search strategies share this
//     behavior.
//   - Bisect assumes the bracket actually contains a sign change; passing a
//     non-bracketing interval is an unvalidated precondition and converges
//     to an arbitrary endpoint.
package rootfind
